package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sistemaos/internal/adapter/http/handlers/mocks"
	"sistemaos/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/stats", h.Stats)

		uc.EXPECT().DashboardStats(gomock.Any()).Return(entities.DashboardStats{
			OpenOrders:       2,
			CompletedOrders:  3,
			TotalRevenue:     decimal.RequireFromString("50.00"),
			AverageTicket:    decimal.RequireFromString("16.67"),
			LowStockProducts: 1,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["average_ticket"] != "16.67" {
			t.Fatalf("unexpected average ticket: %v", resp["average_ticket"])
		}
		if resp["open_orders"] != float64(2) {
			t.Fatalf("unexpected open orders: %v", resp["open_orders"])
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/dashboard/stats", h.Stats)

		uc.EXPECT().DashboardStats(gomock.Any()).Return(entities.DashboardStats{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_StatusCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewDashboardHandler(uc)

	r := gin.New()
	r.GET("/v1/dashboard/status-count", h.StatusCount)

	uc.EXPECT().StatusCount(gomock.Any()).Return([]entities.StatusCount{
		{Status: entities.OrderStatusOpen, Count: 4},
		{Status: entities.OrderStatusCompleted, Count: 1},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/status-count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 || resp[0]["status"] != "OPEN" || resp[0]["count"] != float64(4) {
		t.Fatalf("unexpected body: %v", resp)
	}
}
