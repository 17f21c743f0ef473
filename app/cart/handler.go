package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frikimundo/go-store/app/pricing"
	"github.com/frikimundo/go-store/models"
)

// CatalogProvider resolves product IDs against the loaded catalog snapshot.
type CatalogProvider interface {
	Get(id uint) (models.Product, bool)
}

// DiscountLineResponse is one applied promotion in the cart view.
type DiscountLineResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Response is the cart view handed to the rendering side: the pricing
// breakdown plus the item count for display.
type Response struct {
	ItemCount     int                    `json:"item_count"`
	Subtotal      float64                `json:"subtotal"`
	TotalDiscount float64                `json:"total_discount"`
	TotalPayable  float64                `json:"total_payable"`
	Discounts     []DiscountLineResponse `json:"discounts"`
}

// Handler exposes the cart over HTTP. Every mutation re-resolves the cart
// against the catalog and re-prices it from scratch before responding; there
// is no cached pricing state.
type Handler struct {
	store   *Store
	catalog CatalogProvider
	promos  pricing.PromotionTable
}

func NewHandler(store *Store, catalog CatalogProvider, promos pricing.PromotionTable) *Handler {
	return &Handler{
		store:   store,
		catalog: catalog,
		promos:  promos,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	h.respond(w)
}

func (h *Handler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	id, err := productIDFromPath(r)
	if err != nil {
		writeError(w, "Invalid product id", http.StatusBadRequest)
		return
	}
	h.store.AddOne(id)
	h.respond(w)
}

func (h *Handler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := productIDFromPath(r)
	if err != nil {
		writeError(w, "Invalid product id", http.StatusBadRequest)
		return
	}
	h.store.RemoveOne(id)
	h.respond(w)
}

func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	h.respond(w)
}

func productIDFromPath(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	return uint(id), err
}

// resolve joins the current entries with their catalog products. Entries
// whose product ID is unknown to the catalog are silently dropped; that is a
// filtering rule, not an error.
func (h *Handler) resolve() []pricing.LineItem {
	entries := h.store.Entries()
	items := make([]pricing.LineItem, 0, len(entries))
	for _, e := range entries {
		p, ok := h.catalog.Get(e.ProductID)
		if !ok {
			continue
		}
		items = append(items, pricing.LineItem{
			Category:  models.CategoryCode(p.Category.Code),
			UnitPrice: p.Price,
			Quantity:  e.Quantity,
		})
	}
	return items
}

func (h *Handler) respond(w http.ResponseWriter) {
	res := pricing.Price(h.resolve(), h.promos)

	discounts := make([]DiscountLineResponse, len(res.DiscountLines))
	for i, d := range res.DiscountLines {
		discounts[i] = DiscountLineResponse{
			Label:  d.Label,
			Amount: d.Amount.InexactFloat64(),
		}
	}

	response := Response{
		ItemCount:     h.store.ItemCount(),
		Subtotal:      res.Subtotal.InexactFloat64(),
		TotalDiscount: res.TotalDiscount.InexactFloat64(),
		TotalPayable:  res.TotalPayable.InexactFloat64(),
		Discounts:     discounts,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
