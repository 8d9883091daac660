package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"munchking-store/catalog"
	"munchking-store/config"
	"munchking-store/handlers"
	"munchking-store/payment"
	"munchking-store/server"
	"munchking-store/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	menu, err := catalog.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load menu catalog")
	}
	logrus.WithField("items", len(menu.Items())).Info("menu catalog loaded")

	gateway := payment.NewSimulator(cfg.Payment.SubmitLatency)
	store := services.NewSessionStore(cfg.Session, cfg.Discount, gateway)
	defer store.Close()

	api := handlers.New(menu, store)
	svr := server.SetupRoutes(api, store, []byte(cfg.Session.Secret))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.WithField("addr", cfg.HTTP.Addr).Info("storefront listening")
		if err := svr.Run(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	<-done
	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to shut down cleanly")
	}
}
