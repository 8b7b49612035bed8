package reports

import (
	"errors"
	"net/http"

	"github.com/stocktally/inventory-api/app/api"
	"github.com/stocktally/inventory-api/app/ledger"
	"github.com/stocktally/inventory-api/models"
)

type SummaryResponse struct {
	TotalItems           int64                `json:"total_items"`
	TotalValue           float64              `json:"total_value"`
	LowStockItems        int64                `json:"low_stock_items"`
	OutOfStockItems      int64                `json:"out_of_stock_items"`
	CategoryDistribution map[string]int64     `json:"category_distribution"`
	RecentTransactions   []ledger.Transaction `json:"recent_transactions"`
}

type ReportResponse struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type ReportProvider interface {
	Summary() (*models.Summary, error)
	Report(reportType string) (*models.ReportData, error)
}

type ReportsHandler struct {
	repo ReportProvider
}

func NewReportsHandler(r ReportProvider) *ReportsHandler {
	return &ReportsHandler{
		repo: r,
	}
}

func (h *ReportsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.repo.Summary()
	if err != nil {
		api.Error(w, http.StatusInternalServerError, "failed to get summary")
		return
	}

	recent := make([]ledger.Transaction, len(summary.RecentTransactions))
	for i, record := range summary.RecentTransactions {
		recent[i] = ledger.MapTransaction(&record)
	}

	api.Respond(w, http.StatusOK, SummaryResponse{
		TotalItems:           summary.TotalItems,
		TotalValue:           summary.TotalValue.InexactFloat64(),
		LowStockItems:        summary.LowStockCount,
		OutOfStockItems:      summary.OutOfStockCount,
		CategoryDistribution: summary.CategoryDistribution,
		RecentTransactions:   recent,
	})
}

func (h *ReportsHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.repo.Report(r.PathValue("type"))
	if err != nil {
		if errors.Is(err, models.ErrUnknownReportType) {
			api.Error(w, http.StatusBadRequest, "Invalid report type")
			return
		}
		api.Error(w, http.StatusInternalServerError, "failed to get report")
		return
	}

	api.Respond(w, http.StatusOK, ReportResponse{
		Labels: report.Labels,
		Data:   report.Data,
	})
}
