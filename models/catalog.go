package models

// Catalog is an immutable snapshot of the product catalog, built once at
// startup and shared read-only afterwards. The cart resolves product IDs
// against it; IDs it does not know are simply not resolvable.
type Catalog struct {
	ordered []Product
	byID    map[uint]Product
}

// NewCatalog builds a snapshot from an ordered product sequence. If the same
// ID appears twice the first occurrence wins, preserving the input order.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		ordered: make([]Product, 0, len(products)),
		byID:    make(map[uint]Product, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.byID[p.ID] = p
		c.ordered = append(c.ordered, p)
	}
	return c
}

// Get returns the product with the given ID, if present.
func (c *Catalog) Get(id uint) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the snapshot's products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ByCategory returns the products of one category, in catalog order.
func (c *Catalog) ByCategory(code CategoryCode) []Product {
	var out []Product
	for _, p := range c.ordered {
		if p.Category.Code == string(code) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.ordered)
}
