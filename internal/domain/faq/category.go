package faq

// Category is the browse label of a knowledge record.
type Category string

// Category constants.
const (
	Academic    Category = "academic"
	Immigration Category = "immigration"
	Housing     Category = "housing"
	Finance     Category = "finance"
	Health      Category = "health"
	Career      Category = "career"
	CampusLife  Category = "campus-life"
)

// AllCategories lists the supported categories in display order.
func AllCategories() []Category {
	return []Category{Academic, Immigration, Housing, Finance, Health, Career, CampusLife}
}

// IsValid checks if the category is one of the supported values.
func (c Category) IsValid() bool {
	switch c {
	case Academic, Immigration, Housing, Finance, Health, Career, CampusLife:
		return true
	}
	return false
}
