package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Report identifiers accepted by ReportsRepository.Report.
const (
	ReportInventoryValue     = "inventory_value"
	ReportStockLevels        = "stock_levels"
	ReportTransactionHistory = "transaction_history"
)

// Summary is the dashboard aggregate over the current inventory state.
type Summary struct {
	TotalItems           int64
	TotalValue           decimal.Decimal
	LowStockCount        int64
	OutOfStockCount      int64
	CategoryDistribution map[string]int64
	RecentTransactions   []StockTransaction
}

// ReportData is a chart-ready dataset of labels and matching values.
type ReportData struct {
	Labels []string
	Data   []float64
}

type ReportsRepository struct {
	db *gorm.DB
}

func NewReportsRepository(db *gorm.DB) *ReportsRepository {
	return &ReportsRepository{db: db}
}

// Summary aggregates the dashboard view: item counts, total stock value,
// stock-level buckets, per-category item counts and the five most recent
// movements. Categories without items are omitted from the distribution.
func (r *ReportsRepository) Summary() (*Summary, error) {
	summary := Summary{CategoryDistribution: map[string]int64{}}

	if err := r.db.Model(&Item{}).Count(&summary.TotalItems).Error; err != nil {
		return nil, err
	}

	var totalValue decimal.NullDecimal
	if err := r.db.Model(&Item{}).
		Select("SUM(price * quantity)").
		Scan(&totalValue).Error; err != nil {
		return nil, err
	}
	if totalValue.Valid {
		summary.TotalValue = totalValue.Decimal
	}

	if err := r.db.Model(&Item{}).
		Where("quantity > 0 AND quantity <= ?", LowStockThreshold).
		Count(&summary.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&Item{}).
		Where("quantity = 0").
		Count(&summary.OutOfStockCount).Error; err != nil {
		return nil, err
	}

	var distribution []struct {
		Name  string
		Count int64
	}
	if err := r.db.Model(&Item{}).
		Select("categories.name AS name, COUNT(items.id) AS count").
		Joins("JOIN categories ON categories.id = items.category_id").
		Group("categories.name").
		Scan(&distribution).Error; err != nil {
		return nil, err
	}
	for _, row := range distribution {
		summary.CategoryDistribution[row.Name] = row.Count
	}

	if err := r.db.
		Preload("Item").
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(5).
		Find(&summary.RecentTransactions).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}

// Report computes the dataset for the given report type.
func (r *ReportsRepository) Report(reportType string) (*ReportData, error) {
	switch reportType {
	case ReportInventoryValue:
		return r.inventoryValueReport()
	case ReportStockLevels:
		return r.stockLevelsReport()
	case ReportTransactionHistory:
		return r.transactionHistoryReport()
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
}

// inventoryValueReport sums price*quantity per category, skipping categories
// holding no value, ordered by category name.
func (r *ReportsRepository) inventoryValueReport() (*ReportData, error) {
	var rows []struct {
		Name  string
		Value decimal.Decimal
	}
	if err := r.db.Model(&Item{}).
		Select("categories.name AS name, SUM(items.price * items.quantity) AS value").
		Joins("JOIN categories ON categories.id = items.category_id").
		Group("categories.name").
		Having("SUM(items.price * items.quantity) > 0").
		Order("categories.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	report := &ReportData{Labels: []string{}, Data: []float64{}}
	for _, row := range rows {
		report.Labels = append(report.Labels, row.Name)
		report.Data = append(report.Data, row.Value.InexactFloat64())
	}
	return report, nil
}

// stockLevelsReport lists the ten items with the highest quantities.
func (r *ReportsRepository) stockLevelsReport() (*ReportData, error) {
	var items []Item
	if err := r.db.Order("quantity DESC").Limit(10).Find(&items).Error; err != nil {
		return nil, err
	}

	report := &ReportData{Labels: []string{}, Data: []float64{}}
	for _, item := range items {
		report.Labels = append(report.Labels, item.Name)
		report.Data = append(report.Data, float64(item.Quantity))
	}
	return report, nil
}

// transactionHistoryReport counts movements by direction.
func (r *ReportsRepository) transactionHistoryReport() (*ReportData, error) {
	var inCount, outCount int64
	if err := r.db.Model(&StockTransaction{}).
		Where("type = ?", TransactionIn).
		Count(&inCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&StockTransaction{}).
		Where("type = ?", TransactionOut).
		Count(&outCount).Error; err != nil {
		return nil, err
	}

	return &ReportData{
		Labels: []string{"Stock In", "Stock Out"},
		Data:   []float64{float64(inCount), float64(outCount)},
	}, nil
}
