package usecase

import (
	"context"
	"errors"
	"testing"

	"sistemaos/internal/domain/entities"
	mock_interfaces "sistemaos/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestReportUseCase_DashboardStats(t *testing.T) {
	t.Run("empty store is a zero-valued answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewReportUseCase(orders, products)

		orders.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		products.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		stats, err := uc.DashboardStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.OpenOrders != 0 || stats.CompletedOrders != 0 {
			t.Fatalf("expected zero counts, got %+v", stats)
		}
		if !stats.TotalRevenue.Equal(decimal.Zero) || !stats.AverageTicket.Equal(decimal.Zero) {
			t.Fatalf("expected zero money figures, got %+v", stats)
		}
	})

	t.Run("counts, revenue and low stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewReportUseCase(orders, products)

		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
			{Status: entities.OrderStatusOpen},
			{Status: entities.OrderStatusOpen},
			{Status: entities.OrderStatusInProgress},
			{Status: entities.OrderStatusAwaitingPart},
			{Status: entities.OrderStatusAwaitingApproval},
			{Status: entities.OrderStatusCancelled},
			{Status: entities.OrderStatusCompleted, TotalAmount: decimal.RequireFromString("30.00")},
			{Status: entities.OrderStatusCompleted, TotalAmount: decimal.RequireFromString("10.00")},
			{Status: entities.OrderStatusCompleted, TotalAmount: decimal.RequireFromString("10.00")},
		}, nil)
		products.EXPECT().FindAll(gomock.Any()).Return([]entities.Product{
			{ID: "p-1", StockQuantity: 3},
			{ID: "p-2", StockQuantity: 9},
			{ID: "p-3", StockQuantity: 10},
			{ID: "p-4", StockQuantity: 50},
		}, nil)

		stats, err := uc.DashboardStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.OpenOrders != 2 || stats.InProgressOrders != 1 || stats.AwaitingPartOrders != 1 ||
			stats.AwaitingApprovalOrders != 1 || stats.CompletedOrders != 3 || stats.CancelledOrders != 1 {
			t.Fatalf("unexpected counts: %+v", stats)
		}
		if !stats.TotalRevenue.Equal(decimal.RequireFromString("50.00")) {
			t.Fatalf("expected revenue 50.00, got %s", stats.TotalRevenue)
		}
		// 50.00 / 3 rounded half up to 2 places.
		if !stats.AverageTicket.Equal(decimal.RequireFromString("16.67")) {
			t.Fatalf("expected average ticket 16.67, got %s", stats.AverageTicket)
		}
		if stats.LowStockProducts != 2 {
			t.Fatalf("expected 2 low-stock products, got %d", stats.LowStockProducts)
		}
	})

	t.Run("cancelled revenue not counted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewReportUseCase(orders, products)

		orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
			{Status: entities.OrderStatusCancelled, TotalAmount: decimal.RequireFromString("99.99")},
		}, nil)
		products.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		stats, err := uc.DashboardStats(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stats.TotalRevenue.Equal(decimal.Zero) {
			t.Fatalf("expected zero revenue, got %s", stats.TotalRevenue)
		}
	})

	t.Run("order repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewReportUseCase(orders, products)

		orders.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.DashboardStats(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestReportUseCase_StatusCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewReportUseCase(orders, nil)

	orders.EXPECT().ListAll(gomock.Any()).Return([]entities.Order{
		{Status: entities.OrderStatusOpen},
		{Status: entities.OrderStatusCompleted},
		{Status: entities.OrderStatusCompleted},
	}, nil)

	counts, err := uc.StatusCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(counts) != 6 {
		t.Fatalf("expected a row per status, got %d", len(counts))
	}

	byStatus := make(map[entities.OrderStatus]int64, len(counts))
	var total int64
	for _, c := range counts {
		byStatus[c.Status] = c.Count
		total += c.Count
	}
	if byStatus[entities.OrderStatusOpen] != 1 || byStatus[entities.OrderStatusCompleted] != 2 {
		t.Fatalf("unexpected counts: %+v", byStatus)
	}
	if byStatus[entities.OrderStatusCancelled] != 0 {
		t.Fatalf("expected zero row for CANCELLED, got %d", byStatus[entities.OrderStatusCancelled])
	}
	if total != 3 {
		t.Fatalf("expected counts to sum to order total, got %d", total)
	}
}
