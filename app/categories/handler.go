package categories

import (
	"net/http"

	"github.com/stocktally/inventory-api/app/api"
	"github.com/stocktally/inventory-api/models"
)

type ListResponse struct {
	Categories []string `json:"categories"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

// HandleGetAll lists category names. There is no create endpoint: categories
// come into existence when an item first references them.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	api.Respond(w, http.StatusOK, ListResponse{Categories: names})
}
