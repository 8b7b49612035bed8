package ledger

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stocktally/inventory-api/app/api"
	"github.com/stocktally/inventory-api/models"
)

// Transaction is the JSON shape of a stock movement. Item name and SKU are
// denormalized so listings render without extra lookups; the user field is
// null for unattributed movements.
type Transaction struct {
	ID               uint    `json:"id"`
	ItemID           uint    `json:"item_id"`
	ItemName         string  `json:"item_name"`
	SKU              string  `json:"sku"`
	Type             string  `json:"type"`
	Quantity         int     `json:"quantity"`
	PreviousQuantity int     `json:"previous_quantity"`
	NewQuantity      int     `json:"new_quantity"`
	Notes            string  `json:"notes"`
	User             *string `json:"user"`
	Timestamp        string  `json:"timestamp"`
}

type ListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type TransactionProvider interface {
	Record(input models.NewTransaction) (*models.StockTransaction, error)
	List(itemID *uint) ([]models.StockTransaction, error)
}

type LedgerHandler struct {
	repo TransactionProvider
}

func NewLedgerHandler(r TransactionProvider) *LedgerHandler {
	return &LedgerHandler{
		repo: r,
	}
}

func (h *LedgerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ItemID   *uint  `json:"item_id"`
		Type     string `json:"type"`
		Quantity *int   `json:"quantity"`
		UserID   *uint  `json:"user_id"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if input.ItemID == nil || input.Type == "" || input.Quantity == nil {
		api.Error(w, http.StatusBadRequest, "Missing required field")
		return
	}

	record, err := h.repo.Record(models.NewTransaction{
		ItemID:   *input.ItemID,
		Type:     models.TransactionType(input.Type),
		Quantity: *input.Quantity,
		UserID:   input.UserID,
		Notes:    input.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrItemNotFound):
			api.Error(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, models.ErrInsufficientStock):
			api.Error(w, http.StatusBadRequest, "Not enough stock")
		case errors.Is(err, models.ErrInvalidInput):
			api.Error(w, http.StatusBadRequest, err.Error())
		default:
			api.Error(w, http.StatusInternalServerError, "failed to add transaction")
		}
		return
	}

	api.Respond(w, http.StatusCreated, map[string]any{
		"message":     "Transaction added successfully",
		"transaction": MapTransaction(record),
	})
}

func (h *LedgerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var itemID *uint
	if raw := r.URL.Query().Get("item_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			api.Error(w, http.StatusBadRequest, "Invalid item_id")
			return
		}
		id := uint(parsed)
		itemID = &id
	}

	res, err := h.repo.List(itemID)
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to get transactions")
		return
	}

	transactions := make([]Transaction, len(res))
	for i, record := range res {
		transactions[i] = MapTransaction(&record)
	}
	api.Respond(w, http.StatusOK, ListResponse{Transactions: transactions})
}

// MapTransaction converts a stored transaction to its JSON shape. Exported
// because the dashboard renders recent transactions with the same shape.
func MapTransaction(record *models.StockTransaction) Transaction {
	var user *string
	if record.User != nil {
		username := record.User.Username
		user = &username
	}
	return Transaction{
		ID:               record.ID,
		ItemID:           record.ItemID,
		ItemName:         record.Item.Name,
		SKU:              record.Item.SKU,
		Type:             string(record.Type),
		Quantity:         record.Quantity,
		PreviousQuantity: record.PreviousQuantity,
		NewQuantity:      record.NewQuantity,
		Notes:            record.Notes,
		User:             user,
		Timestamp:        record.CreatedAt.Format(time.RFC3339),
	}
}
