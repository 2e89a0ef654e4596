package usecase

import (
	"context"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Products with stock below this count surface on the dashboard.
const lowStockThreshold = 10

// IReportUseCase derives dashboard figures from the order and product
// collections. An empty store is a valid zero-valued answer, never an error.

type IReportUseCase interface {
	DashboardStats(ctx context.Context) (entities.DashboardStats, error)
	StatusCount(ctx context.Context) ([]entities.StatusCount, error)
}

// ReportUseCase computes every figure fresh per call. The order and product
// reads are not wrapped in a shared transaction, so the numbers are advisory
// approximations of a moving store, not accounting-grade snapshots.
type ReportUseCase struct {
	orders   interfaces.IOrderRepository
	products interfaces.IProductRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(orders interfaces.IOrderRepository, products interfaces.IProductRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders, products: products}
}

func (u *ReportUseCase) DashboardStats(ctx context.Context) (entities.DashboardStats, error) {
	orders, err := u.allOrders(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	products, err := u.products.FindAll(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}

	stats := entities.DashboardStats{
		TotalRevenue:  decimal.Zero,
		AverageTicket: decimal.Zero,
	}
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusOpen:
			stats.OpenOrders++
		case entities.OrderStatusInProgress:
			stats.InProgressOrders++
		case entities.OrderStatusAwaitingPart:
			stats.AwaitingPartOrders++
		case entities.OrderStatusAwaitingApproval:
			stats.AwaitingApprovalOrders++
		case entities.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		case entities.OrderStatusCancelled:
			stats.CancelledOrders++
		}
	}

	if stats.CompletedOrders > 0 {
		stats.AverageTicket = stats.TotalRevenue.DivRound(decimal.NewFromInt(stats.CompletedOrders), 2)
	}

	for _, p := range products {
		if p.StockQuantity < lowStockThreshold {
			stats.LowStockProducts++
		}
	}
	return stats, nil
}

func (u *ReportUseCase) StatusCount(ctx context.Context) ([]entities.StatusCount, error) {
	orders, err := u.allOrders(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[entities.OrderStatus]int64, 6)
	for _, o := range orders {
		byStatus[o.Status]++
	}

	counts := make([]entities.StatusCount, 0, 6)
	for _, status := range entities.AllOrderStatuses() {
		counts = append(counts, entities.StatusCount{Status: status, Count: byStatus[status]})
	}
	return counts, nil
}

func (u *ReportUseCase) allOrders(ctx context.Context) ([]entities.Order, error) {
	return u.orders.ListAll(ctx)
}
