package models

type MenuCategory string

const (
	CategoryBreakfast MenuCategory = "breakfast"
	CategoryLunch     MenuCategory = "lunch"
	CategoryDinner    MenuCategory = "dinner"
	CategoryBeverage  MenuCategory = "beverage"
	CategorySnack     MenuCategory = "snack"
)

type MenuItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       float64      `json:"price"`
	Category    MenuCategory `json:"category"`
	Available   bool         `json:"available"`
	Ingredients []string     `json:"ingredients"`
}

func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryBeverage, CategorySnack:
		return true
	}
	return false
}
