package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// PaymentMethod is the customer's declared way of paying for the order.
// The core records it; settlement happens outside this system.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is payment in cash on delivery or at the counter.
	PaymentCash

	// PaymentCard is payment by debit or credit card.
	PaymentCard

	// PaymentPix is payment through the Pix instant transfer system.
	PaymentPix
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentCash: "cash",
		PaymentCard: "card",
		PaymentPix:  "pix",
	}
}

// PaymentMethodFromString parses a wire representation ("cash", "card", "pix").
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the PaymentMethod is one of the defined methods.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the wire name of the payment method.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}
