package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a service order.
//
// Domain notes:
//   - COMPLETED and CANCELLED are terminal: once an order reaches either,
//     no further status change is accepted.
//   - Any transition between non-terminal statuses is allowed, including
//     closing an OPEN order directly.

type OrderStatus string

const (
	OrderStatusOpen             OrderStatus = "OPEN"
	OrderStatusInProgress       OrderStatus = "IN_PROGRESS"
	OrderStatusAwaitingPart     OrderStatus = "AWAITING_PART"
	OrderStatusAwaitingApproval OrderStatus = "AWAITING_APPROVAL"
	OrderStatusCompleted        OrderStatus = "COMPLETED"
	OrderStatusCancelled        OrderStatus = "CANCELLED"
)

var ErrInvalidStatusTransition = errors.New("invalid status transition")

// AllOrderStatuses lists every valid status, in lifecycle order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusOpen,
		OrderStatusInProgress,
		OrderStatusAwaitingPart,
		OrderStatusAwaitingApproval,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusInProgress, OrderStatusAwaitingPart,
		OrderStatusAwaitingApproval, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// ValidateTransition checks whether an order may move from one status to
// another. Keeping the same status is always allowed; leaving a terminal
// status is not.
func ValidateTransition(from, to OrderStatus) error {
	if !to.Valid() {
		return ErrInvalidStatusTransition
	}
	if from.IsTerminal() && from != to {
		return ErrInvalidStatusTransition
	}
	return nil
}

// UsageLine records one product consumed by a service order.
//
// UnitPrice is a copy of the product price at the moment the line was added;
// later catalog price changes never alter existing orders. Lines are owned by
// their order and replaced as a whole, never merged.
type UsageLine struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Order is the service-order aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - usage lines stored embedded in the order item
//
// Client fields are a snapshot captured at creation time, not a reference to
// the client record. TotalAmount is always derived from the usage lines and
// never settable by callers. ClosedAt is set exactly when the order enters
// COMPLETED and is present if and only if the status is COMPLETED.
type Order struct {
	ID                 string          `json:"id"`
	Number             string          `json:"number"`
	ClientName         string          `json:"client_name"`
	ClientDocument     string          `json:"client_document"`
	ClientPhone        string          `json:"client_phone"`
	ClientAddress      string          `json:"client_address"`
	AssigneeID         string          `json:"assignee_id"`
	AssigneeName       string          `json:"assignee_name"`
	Equipment          string          `json:"equipment"`
	Brand              string          `json:"brand"`
	Model              string          `json:"model"`
	SerialNumber       string          `json:"serial_number"`
	ProblemDescription string          `json:"problem_description"`
	Resolution         string          `json:"resolution"`
	Status             OrderStatus     `json:"status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	UsageLines         []UsageLine     `json:"usage_lines"`
	OpenedAt           time.Time       `json:"opened_at"`
	ClosedAt           *time.Time      `json:"closed_at,omitempty"`
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Items      []Order `json:"items"`
	Page       int     `json:"page"`
	Size       int     `json:"size"`
	TotalItems int64   `json:"total_items"`
	TotalPages int64   `json:"total_pages"`
}

// Report aggregates the orders opened inside a period.
type Report struct {
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	TotalOrders int64           `json:"total_orders"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Orders      []Order         `json:"orders"`
}

// DashboardStats is the advisory snapshot shown on the dashboard. Figures are
// computed fresh per call over the current store contents; reads are not
// wrapped in a shared transaction.
type DashboardStats struct {
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

// StatusCount is one row of the per-status order count listing.
type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int64       `json:"count"`
}
