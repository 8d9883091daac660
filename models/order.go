package models

const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodCard || m == PaymentMethodCash
}

// DeliveryDetails is the checkout form: where the order goes and who takes it.
// Doubles as the billing details handed to the payment gateway for card orders.
type DeliveryDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
