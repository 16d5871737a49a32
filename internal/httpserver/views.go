package httpserver

import (
	"sheshape-storefront/internal/checkout"
	"sheshape-storefront/internal/domain"
)

// sessionView is the checkout session as the storefront pages consume it.
// Card details never leave the server; only the last four digits come back
// for the review panel.
type sessionView struct {
	ID             string                `json:"id"`
	Stage          string                `json:"stage"`
	CompletedSteps []string              `json:"completedSteps"`
	Sections       map[string]bool       `json:"sections"`
	Shipping       shippingView          `json:"shipping"`
	Payment        *paymentView          `json:"payment,omitempty"`
	Cart           cartView              `json:"cart"`
	Totals         checkout.Totals       `json:"totals"`
	Order          *domain.Order         `json:"order,omitempty"`
	Notice         string                `json:"notice,omitempty"`
}

type shippingView struct {
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

type paymentView struct {
	Method         domain.PaymentMethod `json:"paymentMethod"`
	CardHolderName string               `json:"cardHolderName,omitempty"`
	CardLast4      string               `json:"cardLast4,omitempty"`
	ExpiryMonth    string               `json:"expiryMonth,omitempty"`
	ExpiryYear     string               `json:"expiryYear,omitempty"`
	SaveCard       bool                 `json:"saveCard"`
}

type cartView struct {
	Items      []cartItemView `json:"items"`
	TotalItems int            `json:"totalItems"`
}

type cartItemView struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

func toSessionView(s *checkout.Session) sessionView {
	completed := make([]string, 0, len(s.Completed))
	for _, st := range s.Completed {
		completed = append(completed, st.String())
	}
	sections := make(map[string]bool, len(s.Expanded))
	for st, open := range s.Expanded {
		sections[st.String()] = open
	}

	items := make([]cartItemView, 0, len(s.Cart.Items))
	for _, it := range s.Cart.Items {
		items = append(items, cartItemView{
			ProductID: it.ProductID,
			Name:      it.DisplayName(),
			ImageURL:  it.ImageURL(),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.TotalPrice,
		})
	}

	view := sessionView{
		ID:             s.ID,
		Stage:          s.Stage.String(),
		CompletedSteps: completed,
		Sections:       sections,
		Shipping: shippingView{
			FirstName:       s.Shipping.FirstName,
			LastName:        s.Shipping.LastName,
			Email:           s.Shipping.Email,
			Phone:           s.Shipping.Phone,
			Street:          s.Shipping.Street,
			ApartmentNumber: s.Shipping.ApartmentNumber,
			City:            s.Shipping.City,
			State:           s.Shipping.State,
			ZipCode:         s.Shipping.ZipCode,
			Country:         s.Shipping.Country,
			SameAsBilling:   s.Shipping.SameAsBilling,
			Billing:         s.Shipping.Billing,
		},
		Cart: cartView{
			Items:      items,
			TotalItems: s.Cart.TotalItems,
		},
		Totals: checkout.ComputeTotals(s.Cart),
		Order:  s.Order,
	}

	if s.StageCompleted(checkout.StagePayment) {
		view.Payment = &paymentView{
			Method:         s.Payment.Method,
			CardHolderName: s.Payment.CardHolderName,
			CardLast4:      last4(s.Payment.CardNumber),
			ExpiryMonth:    s.Payment.ExpiryMonth,
			ExpiryYear:     s.Payment.ExpiryYear,
			SaveCard:       s.Payment.SaveCard,
		}
	}
	return view
}

func last4(cardNumber string) string {
	digits := make([]rune, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}
