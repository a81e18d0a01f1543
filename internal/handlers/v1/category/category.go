package category

// Category is the API response model for a category.
type Category struct {
	ID        int64  `json:"id" doc:"Category id"`
	Name      string `json:"name" doc:"Category name"`
	Kind      string `json:"kind" doc:"Category kind: expense, income, or savings"`
	IsDefault bool   `json:"isDefault" doc:"Whether the category is a seeded default, protected from deletion"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}
