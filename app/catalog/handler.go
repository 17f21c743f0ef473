package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frikimundo/go-store/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Product struct {
	ID       uint     `json:"id"`
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category Category `json:"category"`
}

// CatalogProvider reads from the immutable catalog snapshot.
type CatalogProvider interface {
	Products() []models.Product
	ByCategory(code models.CategoryCode) []models.Product
	Get(id uint) (models.Product, bool)
}

type CatalogHandler struct {
	catalog CatalogProvider
}

func NewCatalogHandler(c CatalogProvider) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	var res []models.Product
	if code := r.URL.Query().Get("category"); code != "" {
		res = h.catalog.ByCategory(models.CategoryCode(code))
	} else {
		res = h.catalog.Products()
	}

	products := make([]Product, len(res))
	for i, p := range res {
		products[i] = toProduct(p)
	}

	w.Header().Set("Content-Type", "application/json")
	response := Response{
		Total:    len(products),
		Products: products,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		writeError(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	product, ok := h.catalog.Get(uint(id))
	if !ok {
		writeError(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toProduct(product)); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

func toProduct(p models.Product) Product {
	return Product{
		ID:    p.ID,
		Code:  p.Code,
		Name:  p.Name,
		Price: p.Price.InexactFloat64(),
		Category: Category{
			Code: p.Category.Code,
			Name: p.Category.Name,
		},
	}
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
