package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/frikimundo/go-store/app/pricing"
	"github.com/frikimundo/go-store/models"
)

// --- Mock Catalog ---

type MockCatalog struct {
	products map[uint]models.Product
}

func (m *MockCatalog) Get(id uint) (models.Product, bool) {
	p, ok := m.products[id]
	return p, ok
}

// --- Helpers ---

func newTestCatalog() *MockCatalog {
	return &MockCatalog{products: map[uint]models.Product{
		1: newTestProduct(1, "figuras", "Figuras", 60000),
		2: newTestProduct(2, "figuras", "Figuras", 50000),
		3: newTestProduct(3, "poleras", "Poleras", 15000),
	}}
}

func newTestProduct(id uint, categoryCode, categoryName string, price int64) models.Product {
	return models.Product{
		ID:    id,
		Price: decimal.NewFromInt(price),
		Category: models.Category{
			Code: categoryCode,
			Name: categoryName,
		},
	}
}

func figurasPromo(pairPrice int64) pricing.PromotionTable {
	return pricing.PromotionTable{
		{Category: models.CategoryFiguras, PairPrice: decimal.NewFromInt(pairPrice)},
	}
}

type step struct {
	method string
	target string
	id     string // path value, when the route carries one
}

func addItem(id uint) step {
	s := strconv.FormatUint(uint64(id), 10)
	return step{method: "POST", target: "/cart/items/" + s, id: s}
}

func removeItem(id uint) step {
	s := strconv.FormatUint(uint64(id), 10)
	return step{method: "DELETE", target: "/cart/items/" + s, id: s}
}

func run(t *testing.T, h *Handler, st step) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(st.method, st.target, nil)
	if st.id != "" {
		req.SetPathValue("id", st.id)
	}
	rec := httptest.NewRecorder()

	switch {
	case st.method == "POST":
		h.HandleAddItem(rec, req)
	case st.method == "DELETE" && st.id != "":
		h.HandleRemoveItem(rec, req)
	case st.method == "DELETE":
		h.HandleClear(rec, req)
	default:
		h.HandleGet(rec, req)
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// --- Tests ---

func TestCartPricingFlow(t *testing.T) {
	testCases := []struct {
		name          string
		promos        pricing.PromotionTable
		steps         []step
		checkResponse func(t *testing.T, resp Response)
	}{
		{
			name:   "Empty cart prices to zero",
			promos: figurasPromo(50000),
			steps:  []step{{method: "GET", target: "/cart"}},
			checkResponse: func(t *testing.T, resp Response) {
				assert.Equal(t, 0, resp.ItemCount)
				assert.Equal(t, 0.0, resp.Subtotal)
				assert.Equal(t, 0.0, resp.TotalDiscount)
				assert.Equal(t, 0.0, resp.TotalPayable)
				assert.Empty(t, resp.Discounts)
			},
		},
		{
			name:   "Single figura charges full price",
			promos: figurasPromo(50000),
			steps:  []step{addItem(1)},
			checkResponse: func(t *testing.T, resp Response) {
				assert.Equal(t, 1, resp.ItemCount)
				assert.Equal(t, 60000.0, resp.Subtotal)
				assert.Equal(t, 0.0, resp.TotalDiscount)
				assert.Equal(t, 60000.0, resp.TotalPayable)
				assert.Empty(t, resp.Discounts)
			},
		},
		{
			name:   "Two figuras of different price trigger the pair promotion",
			promos: figurasPromo(50000),
			steps:  []step{addItem(1), addItem(2)},
			checkResponse: func(t *testing.T, resp Response) {
				assert.Equal(t, 2, resp.ItemCount)
				assert.Equal(t, 110000.0, resp.Subtotal)
				assert.Equal(t, 60000.0, resp.TotalDiscount)
				assert.Equal(t, 50000.0, resp.TotalPayable)
				assert.Len(t, resp.Discounts, 1)
				assert.Equal(t, "figuras: 2 for $50000 (x1)", resp.Discounts[0].Label)
				assert.Equal(t, 60000.0, resp.Discounts[0].Amount)
			},
		},
		{
			name:   "Removing a unit drops the promotion again",
			promos: figurasPromo(50000),
			steps:  []step{addItem(1), addItem(2), removeItem(2)},
			checkResponse: func(t *testing.T, resp Response) {
				assert.Equal(t, 1, resp.ItemCount)
				assert.Equal(t, 60000.0, resp.Subtotal)
				assert.Equal(t, 0.0, resp.TotalDiscount)
				assert.Equal(t, 60000.0, resp.TotalPayable)
			},
		},
		{
			name:   "Unknown product ids count but never price",
			promos: figurasPromo(50000),
			steps:  []step{addItem(1), addItem(999)},
			checkResponse: func(t *testing.T, resp Response) {
				assert.Equal(t, 2, resp.ItemCount)
				assert.Equal(t, 60000.0, resp.Subtotal)
				assert.Equal(t, 60000.0, resp.TotalPayable)
			},
		},
		{
			name:   "Removing an absent product is a no-op",
			promos: figurasPromo(50000),
			steps:  []step{addItem(1), removeItem(999)},
			checkResponse: func(t *testing.T, resp Response) {
				assert.Equal(t, 1, resp.ItemCount)
				assert.Equal(t, 60000.0, resp.Subtotal)
			},
		},
		{
			name:   "Clear empties the cart",
			promos: figurasPromo(50000),
			steps:  []step{addItem(1), addItem(2), {method: "DELETE", target: "/cart"}},
			checkResponse: func(t *testing.T, resp Response) {
				assert.Equal(t, 0, resp.ItemCount)
				assert.Equal(t, 0.0, resp.Subtotal)
				assert.Equal(t, 0.0, resp.TotalPayable)
				assert.Empty(t, resp.Discounts)
			},
		},
		{
			name:   "Category outside the table never discounts",
			promos: figurasPromo(50000),
			steps:  []step{addItem(3), addItem(3)},
			checkResponse: func(t *testing.T, resp Response) {
				assert.Equal(t, 2, resp.ItemCount)
				assert.Equal(t, 30000.0, resp.Subtotal)
				assert.Equal(t, 0.0, resp.TotalDiscount)
				assert.Equal(t, 30000.0, resp.TotalPayable)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			handler := NewHandler(NewStore(), newTestCatalog(), tc.promos)

			// Act
			var last *httptest.ResponseRecorder
			for _, st := range tc.steps {
				last = run(t, handler, st)
			}

			// Assert
			assert.Equal(t, http.StatusOK, last.Code)
			tc.checkResponse(t, decode(t, last))
		})
	}
}

func TestCartHandlerInvalidProductID(t *testing.T) {
	handler := NewHandler(NewStore(), newTestCatalog(), figurasPromo(50000))

	for _, method := range []string{"POST", "DELETE"} {
		req := httptest.NewRequest(method, "/cart/items/abc", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()

		if method == "POST" {
			handler.HandleAddItem(rec, req)
		} else {
			handler.HandleRemoveItem(rec, req)
		}

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp map[string]string
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
		assert.Equal(t, "Invalid product id", errResp["error"])
	}

	// The malformed requests must not have touched the cart.
	rec := httptest.NewRecorder()
	handler.HandleGet(rec, httptest.NewRequest("GET", "/cart", nil))
	assert.Equal(t, 0, decode(t, rec).ItemCount)
}
