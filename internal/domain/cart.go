package domain

import "time"

type Cart struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"userId"`
	Items          []CartItem `json:"items"`
	TotalItems     int        `json:"totalItems"`
	TotalPrice     float64    `json:"totalPrice"`
	Subtotal       float64    `json:"subtotal"`
	TaxAmount      *float64   `json:"taxAmount,omitempty"`
	ShippingAmount *float64   `json:"shippingAmount,omitempty"`
	DiscountAmount *float64   `json:"discountAmount,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID           int64        `json:"id"`
	ProductID    int64        `json:"productId"`
	ProductName  string       `json:"productName"`
	Quantity     int          `json:"quantity"`
	UnitPrice    float64      `json:"unitPrice"`
	TotalPrice   float64      `json:"totalPrice"`
	ProductImage string       `json:"productImage,omitempty"`
	ProductSKU   string       `json:"productSku,omitempty"`
	MaxQuantity  *int         `json:"maxQuantity,omitempty"`
	IsAvailable  bool         `json:"isAvailable"`
	Product      *CartProduct `json:"product,omitempty"`
}

// CartProduct is the optional nested product the cart endpoint may attach to
// a line for image resolution.
type CartProduct struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Images []ProductImage `json:"images"`
}

// Empty reports whether the cart has no purchasable lines.
func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

// ImageURL resolves the display image for a line: the direct productImage URL
// wins, then the nested product's main image, then its first image.
func (i CartItem) ImageURL() string {
	if i.ProductImage != "" {
		return i.ProductImage
	}
	if i.Product == nil {
		return ""
	}
	for _, img := range i.Product.Images {
		if img.IsMain {
			return img.ImageURL
		}
	}
	if len(i.Product.Images) > 0 {
		return i.Product.Images[0].ImageURL
	}
	return ""
}

// DisplayName resolves the line's product name, falling back to the nested
// product object when the denormalized name is missing.
func (i CartItem) DisplayName() string {
	if i.ProductName != "" {
		return i.ProductName
	}
	if i.Product != nil && i.Product.Name != "" {
		return i.Product.Name
	}
	return "Unknown Product"
}
