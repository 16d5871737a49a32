package domain

import "time"

type Product struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	DiscountPrice  *float64       `json:"discountPrice,omitempty"`
	InventoryCount int            `json:"inventoryCount"`
	IsActive       bool           `json:"isActive"`
	Categories     []string       `json:"categories"`
	Images         []ProductImage `json:"images"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type ProductImage struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	ImageURL  string    `json:"imageUrl"`
	FileKey   string    `json:"fileKey"`
	IsMain    bool      `json:"isMain"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductInput is the create/update payload for catalog management.
type ProductInput struct {
	Name           string              `json:"name"`
	Description    string              `json:"description,omitempty"`
	Price          float64             `json:"price"`
	DiscountPrice  *float64            `json:"discountPrice,omitempty"`
	InventoryCount int                 `json:"inventoryCount"`
	IsActive       bool                `json:"isActive"`
	Categories     []string            `json:"categories"`
	Images         []ProductImageInput `json:"images,omitempty"`
}

type ProductImageInput struct {
	ID       *int64 `json:"id,omitempty"`
	ImageURL string `json:"imageUrl"`
	FileKey  string `json:"fileKey"`
	IsMain   bool   `json:"isMain"`
	Position int    `json:"position"`
}

type ProductPage struct {
	Content       []Product `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	First         bool      `json:"first"`
	Last          bool      `json:"last"`
}
