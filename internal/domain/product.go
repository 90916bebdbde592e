package domain

// ProductCategory identifies the regulatory pathway a label is evaluated under.
type ProductCategory string

const (
	CategoryDietarySupplement    ProductCategory = "DIETARY_SUPPLEMENT"
	CategoryConventionalFood     ProductCategory = "CONVENTIONAL_FOOD"
	CategoryAlcoholicBeverage    ProductCategory = "ALCOHOLIC_BEVERAGE"
	CategoryNonAlcoholicBeverage ProductCategory = "NON_ALCOHOLIC_BEVERAGE"
)

// Valid reports whether the category is one of the supported values.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryDietarySupplement, CategoryConventionalFood,
		CategoryAlcoholicBeverage, CategoryNonAlcoholicBeverage:
		return true
	}
	return false
}

// IsConventional reports whether the category follows the conventional
// food/beverage pathway (GRAS applies, NDI does not).
func (c ProductCategory) IsConventional() bool {
	switch c {
	case CategoryConventionalFood, CategoryAlcoholicBeverage, CategoryNonAlcoholicBeverage:
		return true
	}
	return false
}
