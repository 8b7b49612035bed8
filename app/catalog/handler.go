package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stocktally/inventory-api/app/api"
	"github.com/stocktally/inventory-api/models"
)

// Item is the JSON shape of an inventory item. The category is flattened to
// its name, matching what clients render.
type Item struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ListResponse struct {
	Items []Item `json:"items"`
}

type ItemProvider interface {
	CreateItem(input models.NewItem) (*models.Item, error)
	UpdateItem(id uint, update models.ItemUpdate) (*models.Item, error)
	DeleteItem(id uint) (*models.Item, error)
	GetItem(id uint) (*models.Item, error)
	ListItems(filters models.ItemFilters) ([]models.Item, error)
}

type CatalogHandler struct {
	repo ItemProvider
}

func NewCatalogHandler(r ItemProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filters := models.ItemFilters{
		Search:     r.URL.Query().Get("search"),
		Category:   r.URL.Query().Get("category"),
		StockLevel: r.URL.Query().Get("stock_level"),
	}

	res, err := h.repo.ListItems(filters)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to get items")
		return
	}

	items := make([]Item, len(res))
	for i, item := range res {
		items[i] = mapItem(&item)
	}
	api.Respond(w, http.StatusOK, ListResponse{Items: items})
}

func (h *CatalogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name        string   `json:"name"`
		SKU         string   `json:"sku"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Price       *float64 `json:"price"`
		Quantity    *int     `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if input.Name == "" || input.SKU == "" || input.Category == "" ||
		input.Price == nil || input.Quantity == nil {
		api.Error(w, http.StatusBadRequest, "Missing required field")
		return
	}

	item, err := h.repo.CreateItem(models.NewItem{
		Name:        input.Name,
		SKU:         input.SKU,
		Description: input.Description,
		Category:    input.Category,
		Price:       decimal.NewFromFloat(*input.Price),
		Quantity:    *input.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateSKU):
			api.Error(w, http.StatusConflict, "An item with this SKU already exists")
		case errors.Is(err, models.ErrInvalidInput):
			api.Error(w, http.StatusBadRequest, err.Error())
		default:
			api.Error(w, http.StatusInternalServerError, "failed to add item")
		}
		return
	}

	api.Respond(w, http.StatusCreated, map[string]any{
		"message": "Item added successfully",
		"item":    mapItem(item),
	})
}

func (h *CatalogHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, "Item not found")
		return
	}

	item, err := h.repo.GetItem(id)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			api.Error(w, http.StatusNotFound, "Item not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to get item")
		return
	}

	api.Respond(w, http.StatusOK, map[string]any{"item": mapItem(item)})
}

func (h *CatalogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, "Item not found")
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		SKU         *string  `json:"sku"`
		Description *string  `json:"description"`
		Category    *string  `json:"category"`
		Price       *float64 `json:"price"`
		Quantity    *int     `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	// Quantity is not editable here: stock changes must go through the
	// transaction ledger so they stay audited.
	if input.Quantity != nil {
		api.Error(w, http.StatusBadRequest,
			"Quantity cannot be updated directly; record a stock transaction instead")
		return
	}

	update := models.ItemUpdate{
		Name:        input.Name,
		SKU:         input.SKU,
		Description: input.Description,
		Category:    input.Category,
	}
	if input.Price != nil {
		price := decimal.NewFromFloat(*input.Price)
		update.Price = &price
	}

	item, err := h.repo.UpdateItem(id, update)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrItemNotFound):
			api.Error(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, models.ErrDuplicateSKU):
			api.Error(w, http.StatusConflict, "An item with this SKU already exists")
		case errors.Is(err, models.ErrInvalidInput):
			api.Error(w, http.StatusBadRequest, err.Error())
		default:
			api.Error(w, http.StatusInternalServerError, "failed to update item")
		}
		return
	}

	api.Respond(w, http.StatusOK, map[string]any{
		"message": "Item updated successfully",
		"item":    mapItem(item),
	})
}

func (h *CatalogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(r)
	if !ok {
		api.Error(w, http.StatusNotFound, "Item not found")
		return
	}

	if _, err := h.repo.DeleteItem(id); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			api.Error(w, http.StatusNotFound, "Item not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	api.Respond(w, http.StatusOK, map[string]string{
		"message": "Item deleted successfully",
	})
}

func itemID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func mapItem(item *models.Item) Item {
	return Item{
		ID:          item.ID,
		Name:        item.Name,
		SKU:         item.SKU,
		Description: item.Description,
		Category:    item.Category.Name,
		Price:       item.Price.InexactFloat64(),
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.Format(time.RFC3339),
	}
}
