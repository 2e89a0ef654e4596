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

func TestBillingEngine_ComputeUsage(t *testing.T) {
	t.Run("empty input yields zero total and no lines", func(t *testing.T) {
		engine := NewBillingEngine(nil)

		lines, total, err := engine.ComputeUsage(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 0 {
			t.Fatalf("expected no lines, got %d", len(lines))
		}
		if !total.Equal(decimal.Zero) {
			t.Fatalf("expected zero total, got %s", total)
		}
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		engine := NewBillingEngine(nil)

		for _, qty := range []int{0, -3} {
			_, _, err := engine.ComputeUsage(context.Background(), []UsageInput{{ProductID: "p-1", Quantity: qty}})
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Fatalf("expected ErrInvalidQuantity for qty %d, got %v", qty, err)
			}
		}
	})

	t.Run("unknown product rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		engine := NewBillingEngine(products)

		products.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Product{}, nil)

		_, _, err := engine.ComputeUsage(context.Background(), []UsageInput{{ProductID: "missing", Quantity: 1}})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		engine := NewBillingEngine(products)

		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{}, errors.New("db"))

		_, _, err := engine.ComputeUsage(context.Background(), []UsageInput{{ProductID: "p-1", Quantity: 1}})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("prices lines with exact decimal arithmetic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		engine := NewBillingEngine(products)

		products.EXPECT().GetByID(gomock.Any(), "p-a").Return(entities.Product{
			ID: "p-a", Name: "Oil filter", Price: decimal.RequireFromString("10.00"),
		}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p-b").Return(entities.Product{
			ID: "p-b", Name: "Gasket", Price: decimal.RequireFromString("5.50"),
		}, nil)

		lines, total, err := engine.ComputeUsage(context.Background(), []UsageInput{
			{ProductID: "p-a", Quantity: 2},
			{ProductID: "p-b", Quantity: 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if !lines[0].LineTotal.Equal(decimal.RequireFromString("20.00")) {
			t.Fatalf("unexpected first line total: %s", lines[0].LineTotal)
		}
		if lines[0].ProductName != "Oil filter" || lines[0].Quantity != 2 {
			t.Fatalf("unexpected first line: %+v", lines[0])
		}
		if !lines[1].UnitPrice.Equal(decimal.RequireFromString("5.50")) {
			t.Fatalf("unexpected second unit price: %s", lines[1].UnitPrice)
		}
		if !total.Equal(decimal.RequireFromString("25.50")) {
			t.Fatalf("expected total 25.50, got %s", total)
		}
	})

	t.Run("unit price is copied, not referenced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		engine := NewBillingEngine(products)

		products.EXPECT().GetByID(gomock.Any(), "p-a").Return(entities.Product{
			ID: "p-a", Name: "Oil filter", Price: decimal.RequireFromString("10.00"),
		}, nil)

		lines, _, err := engine.ComputeUsage(context.Background(), []UsageInput{{ProductID: "p-a", Quantity: 3}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !lines[0].UnitPrice.Equal(decimal.RequireFromString("10.00")) {
			t.Fatalf("expected snapshot price 10.00, got %s", lines[0].UnitPrice)
		}
		if !lines[0].LineTotal.Equal(decimal.RequireFromString("30.00")) {
			t.Fatalf("expected line total 30.00, got %s", lines[0].LineTotal)
		}
	})
}
