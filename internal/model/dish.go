package model

// Dish is the domain model for a single menu entry.
type Dish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Course      Course  `json:"course"`
	Price       float64 `json:"price"`
}

// Draft carries raw add-dish form input before validation.
type Draft struct {
	Name        string
	Description string
	Course      string
	Price       string
}
