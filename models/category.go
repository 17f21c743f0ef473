package models

// CategoryCode identifies one of the store's fixed product categories.
type CategoryCode string

const (
	CategoryFiguras CategoryCode = "figuras"
	CategoryPoleras CategoryCode = "poleras"
	CategoryPosters CategoryCode = "posters"
)

// AllCategoryCodes returns the category codes in their canonical order.
func AllCategoryCodes() []CategoryCode {
	return []CategoryCode{CategoryFiguras, CategoryPoleras, CategoryPosters}
}

// Category represents a product category.
// It includes a unique code and a human-readable name.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex;not null"`
	Name string `gorm:"not null"`
}

func (c *Category) TableName() string {
	return "categories"
}

// DefaultCategories returns the fixed category set in canonical order.
func DefaultCategories() []Category {
	return []Category{
		{ID: 1, Code: string(CategoryFiguras), Name: "Figuras"},
		{ID: 2, Code: string(CategoryPoleras), Name: "Poleras"},
		{ID: 3, Code: string(CategoryPosters), Name: "Posters"},
	}
}
