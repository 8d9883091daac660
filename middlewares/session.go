package middlewares

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"munchking-store/services"
)

type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type ContextKey string

const sessionContextKey ContextKey = "session"

const cookieName = "mk_session"

// SessionMiddleware attaches the shopper's session to the request context.
// The cookie carries a signed token with the session id; a missing, invalid,
// or swept session silently gets a fresh one, since a guest cart is nothing
// worth refusing a request over.
func SessionMiddleware(store *services.SessionStore, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessionFromCookie(r, store, secret)
			if session == nil {
				session = store.Create()
				if err := setSessionCookie(w, session.ID, secret); err != nil {
					logrus.WithError(err).Error("failed to issue session cookie")
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the session placed on the context by the middleware.
func GetSession(r *http.Request) (*services.Session, error) {
	s, ok := r.Context().Value(sessionContextKey).(*services.Session)
	if !ok {
		return nil, errors.New("no session in context")
	}
	return s, nil
}

func sessionFromCookie(r *http.Request, store *services.SessionStore, secret []byte) *services.Session {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return nil
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return nil
	}
	return store.Get(claims.SessionID)
}

func setSessionCookie(w http.ResponseWriter, sessionID string, secret []byte) error {
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
