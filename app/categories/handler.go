package categories

import (
	"encoding/json"
	"net/http"

	"github.com/frikimundo/go-store/models"
)

type CategoryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CategoryHandler lists the store's categories. The set is a closed enum, so
// the handler is read-only and takes the list at construction.
type CategoryHandler struct {
	categories []models.Category
}

func NewCategoryHandler(categories []models.Category) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	response := make([]CategoryResponse, len(h.categories))
	for i, c := range h.categories {
		response[i] = CategoryResponse{
			Code: c.Code,
			Name: c.Name,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
