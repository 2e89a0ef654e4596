package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sistemaos/internal/adapter/http/handlers/mocks"
	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase"
	mock_interfaces "sistemaos/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown assignee maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrAssigneeNotFound)

		body := `{"client_name":"Carlos","assignee_id":"u-9","equipment":"Notebook","problem_description":"no boot"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.OrderCreateInput) (entities.Order, error) {
				if in.AssigneeID != "u-1" || len(in.UsageLines) != 1 || in.UsageLines[0].Quantity != 2 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Order{
					ID:          "os-1",
					Number:      "OS-000001",
					Status:      entities.OrderStatusOpen,
					TotalAmount: decimal.RequireFromString("20.00"),
				}, nil
			},
		)

		body := `{"client_name":"Carlos","assignee_id":"u-1","equipment":"Notebook","problem_description":"no boot","usage_lines":[{"product_id":"p-a","quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["number"] != "OS-000001" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestOrderHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("terminal transition maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).Return(usecase.OrderUpdateResult{}, entities.ErrInvalidStatusTransition)

		body := `{"client_name":"Carlos","equipment":"Notebook","problem_description":"no boot","status":"IN_PROGRESS"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/orders/os-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "INVALID_STATUS_TRANSITION" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})

	t.Run("missing usage_lines stays nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.OrderUpdateInput) (usecase.OrderUpdateResult, error) {
				if in.UsageLines != nil {
					t.Fatalf("expected nil usage lines, got %+v", in.UsageLines)
				}
				return usecase.OrderUpdateResult{Order: entities.Order{ID: "os-1", Status: in.Status}}, nil
			},
		)

		body := `{"client_name":"Carlos","equipment":"Notebook","problem_description":"no boot","status":"COMPLETED"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/orders/os-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty usage_lines arrives non-nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, in usecase.OrderUpdateInput) (usecase.OrderUpdateResult, error) {
				if in.UsageLines == nil || len(in.UsageLines) != 0 {
					t.Fatalf("expected empty non-nil usage lines, got %+v", in.UsageLines)
				}
				return usecase.OrderUpdateResult{Order: entities.Order{ID: "os-1"}}, nil
			},
		)

		body := `{"client_name":"Carlos","equipment":"Notebook","problem_description":"no boot","status":"OPEN","usage_lines":[]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/orders/os-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("render failure surfaces as warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.PUT("/v1/orders/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).Return(usecase.OrderUpdateResult{
			Order:       entities.Order{ID: "os-1", Status: entities.OrderStatusCompleted},
			RenderError: errors.New("fpdf"),
		}, nil)

		body := `{"client_name":"Carlos","equipment":"Notebook","problem_description":"no boot","status":"COMPLETED"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/orders/os-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 despite render failure, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["render_warning"] == nil || resp["render_warning"] == "" {
			t.Fatalf("expected render warning in body: %v", resp)
		}
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Report(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/orders/report", h.Report)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/report?start=2026-05&end=oops", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/orders/report", h.Report)

		start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().GenerateReport(gomock.Any(), start, end).Return(entities.Report{
			Start: start, End: end, TotalOrders: 2, TotalAmount: decimal.RequireFromString("51.00"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/report?start=2026-05-01T00:00:00Z&end=2026-05-31T00:00:00Z", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_RenderPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	h := NewOrderHandler(uc, renderer)

	r := gin.New()
	r.GET("/v1/orders/:id/pdf", h.RenderPDF)

	order := entities.Order{ID: "os-1", Number: "OS-000001"}
	uc.EXPECT().GetByID(gomock.Any(), "os-1").Return(order, nil)
	renderer.EXPECT().RenderOrder(gomock.Any(), order).Return([]byte("%PDF-1.4"), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/os-1/pdf", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected PDF payload")
	}
}
