package checkout

import (
	"regexp"
	"strings"
)

// ValidationError is a user-correctable form error. Validation stops at the
// first failing rule and the message is surfaced to the customer verbatim.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

var (
	emailPattern      = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern      = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateShipping checks the required shipping fields in form order, then
// the email and phone shapes.
func ValidateShipping(in ShippingData) error {
	required := []struct {
		label string
		value string
	}{
		{"first name", in.FirstName},
		{"last name", in.LastName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"street", in.Street},
		{"city", in.City},
		{"state", in.State},
		{"zip code", in.ZipCode},
	}
	for _, f := range required {
		if f.value == "" {
			return ValidationError(f.label + " is required")
		}
	}

	if !emailPattern.MatchString(in.Email) {
		return ValidationError("Please enter a valid email address")
	}
	if !phonePattern.MatchString(in.Phone) {
		return ValidationError("Please enter a valid phone number")
	}
	return nil
}

// ValidatePayment checks card fields for card methods. Cash on delivery
// bypasses validation entirely; PayPal and digital wallets collect nothing
// at this stage.
func ValidatePayment(in PaymentData) error {
	if !in.Method.Card() {
		return nil
	}

	if in.CardNumber == "" || in.CardHolderName == "" ||
		in.ExpiryMonth == "" || in.ExpiryYear == "" || in.CVV == "" {
		return ValidationError("Please fill in all payment details")
	}
	if !cardNumberPattern.MatchString(stripSpaces(in.CardNumber)) {
		return ValidationError("Please enter a valid 16-digit card number")
	}
	if !cvvPattern.MatchString(in.CVV) {
		return ValidationError("Please enter a valid CVV")
	}
	return nil
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
