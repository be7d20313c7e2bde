package domain

type CatalogItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
}

func (c CatalogItem) RecordID() int64 { return c.ID }

// CatalogCategories is the fixed selector set; "Other" is the catch-all.
func CatalogCategories() []string {
	return []string{"Electronics", "Clothing", "Food", "Books", "Other"}
}
