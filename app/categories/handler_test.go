package categories

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frikimundo/go-store/models"
)

func TestHandleGetAll(t *testing.T) {
	testCases := []struct {
		name          string
		categories    []models.Category
		checkResponse func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:       "Fixed category set",
			categories: models.DefaultCategories(),
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []CategoryResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 3)
				assert.Equal(t, "figuras", resp[0].Code)
				assert.Equal(t, "Figuras", resp[0].Name)
				assert.Equal(t, "poleras", resp[1].Code)
				assert.Equal(t, "posters", resp[2].Code)
			},
		},
		{
			name:       "Empty list",
			categories: []models.Category{},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []CategoryResponse
				err := json.NewDecoder(rec.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, 0)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			handler := NewCategoryHandler(tc.categories)
			req := httptest.NewRequest("GET", "/categories", nil)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetAll(rec, req)

			// Assert
			assert.Equal(t, http.StatusOK, rec.Code)
			tc.checkResponse(t, rec)
		})
	}
}
