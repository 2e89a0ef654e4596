package response

import (
	"sistemaos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DashboardStatsResponse struct {
	OpenOrders             int64           `json:"open_orders"`
	InProgressOrders       int64           `json:"in_progress_orders"`
	AwaitingPartOrders     int64           `json:"awaiting_part_orders"`
	AwaitingApprovalOrders int64           `json:"awaiting_approval_orders"`
	CompletedOrders        int64           `json:"completed_orders"`
	CancelledOrders        int64           `json:"cancelled_orders"`
	TotalRevenue           decimal.Decimal `json:"total_revenue"`
	AverageTicket          decimal.Decimal `json:"average_ticket"`
	LowStockProducts       int64           `json:"low_stock_products"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		OpenOrders:             s.OpenOrders,
		InProgressOrders:       s.InProgressOrders,
		AwaitingPartOrders:     s.AwaitingPartOrders,
		AwaitingApprovalOrders: s.AwaitingApprovalOrders,
		CompletedOrders:        s.CompletedOrders,
		CancelledOrders:        s.CancelledOrders,
		TotalRevenue:           s.TotalRevenue,
		AverageTicket:          s.AverageTicket,
		LowStockProducts:       s.LowStockProducts,
	}
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func FromStatusCounts(counts []entities.StatusCount) []StatusCountResponse {
	out := make([]StatusCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, StatusCountResponse{Status: string(c.Status), Count: c.Count})
	}
	return out
}
