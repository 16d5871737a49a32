package checkout

import "sheshape-storefront/internal/domain"

// ShippingData is the shipping form as collected, kept only for the lifetime
// of the checkout session. Billing is collected separately when the customer
// unticks sameAsBilling; otherwise the shipping address is reused verbatim.
type ShippingData struct {
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Street          string          `json:"street"`
	ApartmentNumber string          `json:"apartmentNumber,omitempty"`
	City            string          `json:"city"`
	State           string          `json:"state"`
	ZipCode         string          `json:"zipCode"`
	Country         string          `json:"country"`
	SameAsBilling   bool            `json:"sameAsBilling"`
	Billing         *domain.Address `json:"billing,omitempty"`
}

// Address flattens the form into the submission shape. The apartment number
// is appended to the street line.
func (d ShippingData) Address() domain.Address {
	street := d.Street
	if d.ApartmentNumber != "" {
		street += ", " + d.ApartmentNumber
	}
	return domain.Address{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Street:    street,
		City:      d.City,
		State:     d.State,
		ZipCode:   d.ZipCode,
		Country:   d.Country,
	}
}

// PaymentData is the payment form. Card fields are collected only for card
// methods; the card number is held space-grouped for display and stripped on
// submission.
type PaymentData struct {
	Method         domain.PaymentMethod `json:"paymentMethod"`
	CardNumber     string               `json:"cardNumber,omitempty"`
	ExpiryMonth    string               `json:"expiryMonth,omitempty"`
	ExpiryYear     string               `json:"expiryYear,omitempty"`
	CVV            string               `json:"cvv,omitempty"`
	CardHolderName string               `json:"cardHolderName,omitempty"`
	SaveCard       bool                 `json:"saveCard"`
}
