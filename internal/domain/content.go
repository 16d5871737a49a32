package domain

import "time"

type BlogPost struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Category    string     `json:"category"`
	IsPublished bool       `json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
	AuthorID    int64      `json:"authorId"`
	Author      *User      `json:"author,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type BlogPostInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category"`
	IsPublished bool   `json:"isPublished"`
}

type BlogPostPage struct {
	Content       []BlogPost `json:"content"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
	Size          int        `json:"size"`
	Number        int        `json:"number"`
	First         bool       `json:"first"`
	Last          bool       `json:"last"`
}

type NutritionPlan struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	DurationDays   int       `json:"durationDays"`
	Price          float64   `json:"price"`
	IsActive       bool      `json:"isActive"`
	NutritionistID int64     `json:"nutritionistId"`
	Nutritionist   *User     `json:"nutritionist,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type NutritionPlanInput struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DurationDays int     `json:"durationDays"`
	Price        float64 `json:"price"`
	IsActive     bool    `json:"isActive"`
}

type UserNutritionPlan struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"userId"`
	PlanID       int64          `json:"planId"`
	PurchaseDate time.Time      `json:"purchaseDate"`
	ExpiryDate   time.Time      `json:"expiryDate"`
	Status       string         `json:"status"`
	User         *User          `json:"user,omitempty"`
	Plan         *NutritionPlan `json:"plan,omitempty"`
}

type GymProgram struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	DifficultyLevel string       `json:"difficultyLevel"`
	DurationDays    int          `json:"durationDays"`
	Price           float64      `json:"price"`
	IsActive        bool         `json:"isActive"`
	TrainerID       int64        `json:"trainerId"`
	Trainer         *User        `json:"trainer,omitempty"`
	Sessions        []GymSession `json:"sessions,omitempty"`
	TotalSessions   *int         `json:"totalSessions,omitempty"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

type GymSession struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	VideoURL        string    `json:"videoUrl,omitempty"`
	DurationMinutes *int      `json:"durationMinutes,omitempty"`
	SessionOrder    int       `json:"sessionOrder"`
	ProgramID       int64     `json:"programId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type UserGymProgram struct {
	ID           int64       `json:"id"`
	UserID       int64       `json:"userId"`
	ProgramID    int64       `json:"programId"`
	PurchaseDate time.Time   `json:"purchaseDate"`
	ExpiryDate   time.Time   `json:"expiryDate"`
	Status       string      `json:"status"`
	Program      *GymProgram `json:"program,omitempty"`
}

// ContactMessage is the storefront contact form payload.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
