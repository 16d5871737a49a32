package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusConfirmed      OrderStatus = "CONFIRMED"
	OrderStatusProcessing     OrderStatus = "PROCESSING"
	OrderStatusShipped        OrderStatus = "SHIPPED"
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusReturned       OrderStatus = "RETURNED"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard      PaymentMethod = "DEBIT_CARD"
	PaymentMethodPayPal         PaymentMethod = "PAYPAL"
	PaymentMethodDigitalWallet  PaymentMethod = "DIGITAL_WALLET"
	PaymentMethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

// Card reports whether the method collects card details at checkout.
func (m PaymentMethod) Card() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

// Known reports whether the method is part of the upstream contract.
func (m PaymentMethod) Known() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPayPal,
		PaymentMethodDigitalWallet, PaymentMethodCashOnDelivery:
		return true
	}
	return false
}

// Address is the submission shape for both shipping and billing.
type Address struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// PaymentDetails is attached to a checkout request for card methods only.
// The card number is digits-only on the wire.
type PaymentDetails struct {
	CardNumber     string `json:"cardNumber,omitempty"`
	CardHolderName string `json:"cardHolderName,omitempty"`
	ExpiryMonth    int    `json:"expiryMonth,omitempty"`
	ExpiryYear     int    `json:"expiryYear,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	PaypalEmail    string `json:"paypalEmail,omitempty"`
	WalletType     string `json:"walletType,omitempty"`
}

// CheckoutRequest is the order-creation payload.
type CheckoutRequest struct {
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	ShippingAddress Address         `json:"shippingAddress"`
	BillingAddress  Address         `json:"billingAddress"`
	Notes           string          `json:"notes"`
	PaymentDetails  *PaymentDetails `json:"paymentDetails,omitempty"`
}

type OrderItem struct {
	ID                 int64    `json:"id"`
	ProductID          int64    `json:"productId"`
	ProductName        string   `json:"productName"`
	ProductDescription string   `json:"productDescription,omitempty"`
	ProductCategory    string   `json:"productCategory,omitempty"`
	ProductImageURL    string   `json:"productImageUrl,omitempty"`
	Quantity           int      `json:"quantity"`
	Price              float64  `json:"price"`
	DiscountPrice      *float64 `json:"discountPrice,omitempty"`
	TotalPrice         float64  `json:"totalPrice"`
}

// Order is the result of a successful checkout. The upstream service stores
// addresses as formatted strings, not structured objects.
type Order struct {
	ID                    int64         `json:"id"`
	OrderNumber           string        `json:"orderNumber"`
	UserID                int64         `json:"userId"`
	UserEmail             string        `json:"userEmail,omitempty"`
	Status                OrderStatus   `json:"status"`
	PaymentStatus         PaymentStatus `json:"paymentStatus"`
	PaymentMethod         string        `json:"paymentMethod"`
	Items                 []OrderItem   `json:"items"`
	Subtotal              float64       `json:"subtotal"`
	TotalAmount           float64       `json:"totalAmount"`
	TaxAmount             float64       `json:"taxAmount"`
	ShippingAmount        float64       `json:"shippingAmount"`
	DiscountAmount        float64       `json:"discountAmount"`
	ShippingAddress       string        `json:"shippingAddress"`
	BillingAddress        string        `json:"billingAddress"`
	CustomerNotes         string        `json:"customerNotes,omitempty"`
	TrackingNumber        string        `json:"trackingNumber,omitempty"`
	EstimatedDeliveryDate string        `json:"estimatedDeliveryDate,omitempty"`
	CreatedAt             time.Time     `json:"createdAt"`
	UpdatedAt             time.Time     `json:"updatedAt"`
}

// OrderPage is the Spring-style page envelope the upstream listing endpoints
// return.
type OrderPage struct {
	Content       []Order `json:"content"`
	TotalPages    int     `json:"totalPages"`
	TotalElements int64   `json:"totalElements"`
	Size          int     `json:"size"`
	Number        int     `json:"number"`
	First         bool    `json:"first"`
	Last          bool    `json:"last"`
}
