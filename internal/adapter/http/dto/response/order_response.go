package response

import (
	"time"

	"sistemaos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type UsageLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type OrderResponse struct {
	ID                 string              `json:"id"`
	Number             string              `json:"number"`
	ClientName         string              `json:"client_name"`
	ClientDocument     string              `json:"client_document"`
	ClientPhone        string              `json:"client_phone"`
	ClientAddress      string              `json:"client_address"`
	AssigneeID         string              `json:"assignee_id"`
	AssigneeName       string              `json:"assignee_name"`
	Equipment          string              `json:"equipment"`
	Brand              string              `json:"brand"`
	Model              string              `json:"model"`
	SerialNumber       string              `json:"serial_number"`
	ProblemDescription string              `json:"problem_description"`
	Resolution         string              `json:"resolution,omitempty"`
	Status             string              `json:"status"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	UsageLines         []UsageLineResponse `json:"usage_lines"`
	OpenedAt           time.Time           `json:"opened_at"`
	ClosedAt           *time.Time          `json:"closed_at,omitempty"`

	// RenderWarning reports a non-fatal document render failure after a
	// completion; the status change itself has been persisted.
	RenderWarning string `json:"render_warning,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	lines := make([]UsageLineResponse, 0, len(o.UsageLines))
	for _, l := range o.UsageLines {
		lines = append(lines, UsageLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		})
	}

	return OrderResponse{
		ID:                 o.ID,
		Number:             o.Number,
		ClientName:         o.ClientName,
		ClientDocument:     o.ClientDocument,
		ClientPhone:        o.ClientPhone,
		ClientAddress:      o.ClientAddress,
		AssigneeID:         o.AssigneeID,
		AssigneeName:       o.AssigneeName,
		Equipment:          o.Equipment,
		Brand:              o.Brand,
		Model:              o.Model,
		SerialNumber:       o.SerialNumber,
		ProblemDescription: o.ProblemDescription,
		Resolution:         o.Resolution,
		Status:             string(o.Status),
		TotalAmount:        o.TotalAmount,
		UsageLines:         lines,
		OpenedAt:           o.OpenedAt,
		ClosedAt:           o.ClosedAt,
	}
}

type OrderPageResponse struct {
	Items      []OrderResponse `json:"items"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalItems int64           `json:"total_items"`
	TotalPages int64           `json:"total_pages"`
}

func FromOrderPage(p entities.OrderPage) OrderPageResponse {
	items := make([]OrderResponse, 0, len(p.Items))
	for _, o := range p.Items {
		items = append(items, FromOrder(o))
	}
	return OrderPageResponse{
		Items:      items,
		Page:       p.Page,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

type ReportResponse struct {
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	TotalOrders int64           `json:"total_orders"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Orders      []OrderResponse `json:"orders"`
}

func FromReport(r entities.Report) ReportResponse {
	orders := make([]OrderResponse, 0, len(r.Orders))
	for _, o := range r.Orders {
		orders = append(orders, FromOrder(o))
	}
	return ReportResponse{
		Start:       r.Start,
		End:         r.End,
		TotalOrders: r.TotalOrders,
		TotalAmount: r.TotalAmount,
		Orders:      orders,
	}
}
