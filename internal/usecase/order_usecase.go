package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound             = errors.New("order not found")
	ErrAssigneeNotFound          = errors.New("assignee not found")
	ErrInvalidOrderID            = errors.New("invalid order id")
	ErrInvalidAssigneeID         = errors.New("invalid assignee id")
	ErrMissingProblemDescription = errors.New("missing problem description")
	ErrInvalidPeriod             = errors.New("invalid report period")
)

// OrderCreateInput carries everything needed to open a service order. Client
// fields are snapshotted into the order as-is.
type OrderCreateInput struct {
	ClientName         string
	ClientDocument     string
	ClientPhone        string
	ClientAddress      string
	AssigneeID         string
	Equipment          string
	Brand              string
	Model              string
	SerialNumber       string
	ProblemDescription string
	UsageLines         []UsageInput
}

// OrderUpdateInput is the complete desired state of an order. Scalar fields
// overwrite unconditionally; callers must resend full state. UsageLines, when
// non-nil, replaces the whole prior usage list; nil leaves lines and total
// untouched.
type OrderUpdateInput struct {
	ClientName         string
	ClientDocument     string
	ClientPhone        string
	ClientAddress      string
	Equipment          string
	Brand              string
	Model              string
	SerialNumber       string
	ProblemDescription string
	Resolution         string
	Status             entities.OrderStatus
	UsageLines         []UsageInput
}

// OrderUpdateResult pairs the persisted order with a non-fatal render
// failure, if completion rendering was attempted and failed.
type OrderUpdateResult struct {
	Order       entities.Order
	RenderError error
}

// IOrderUseCase exposes the service-order lifecycle operations.

type IOrderUseCase interface {
	Create(ctx context.Context, in OrderCreateInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListAll(ctx context.Context, page, size int) (entities.OrderPage, error)
	ListByAssignee(ctx context.Context, assigneeID string, page, size int) (entities.OrderPage, error)
	Update(ctx context.Context, id string, in OrderUpdateInput) (OrderUpdateResult, error)
	GenerateReport(ctx context.Context, start, end time.Time) (entities.Report, error)
}

// OrderUseCase owns the order state machine and orchestrates creation and
// mutation against the billing engine, the catalog and the order repository.
type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	users    interfaces.IUserRepository
	billing  IBillingEngine
	renderer interfaces.IDocumentRenderer
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	users interfaces.IUserRepository,
	billing IBillingEngine,
	renderer interfaces.IDocumentRenderer,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, billing: billing, renderer: renderer}
}

func (u *OrderUseCase) Create(ctx context.Context, in OrderCreateInput) (entities.Order, error) {
	assigneeID := strings.TrimSpace(in.AssigneeID)
	if assigneeID == "" {
		return entities.Order{}, ErrInvalidAssigneeID
	}
	if strings.TrimSpace(in.ProblemDescription) == "" {
		return entities.Order{}, ErrMissingProblemDescription
	}

	assignee, err := u.users.GetByID(ctx, assigneeID)
	if err != nil {
		return entities.Order{}, err
	}
	if assignee.ID == "" {
		return entities.Order{}, ErrAssigneeNotFound
	}

	// Price the usage list before generating the number so a billing failure
	// leaves no trace, neither an order nor a burned sequence value.
	lines, total, err := u.billing.ComputeUsage(ctx, in.UsageLines)
	if err != nil {
		return entities.Order{}, err
	}

	seq, err := u.orders.NextOrderNumber(ctx)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ID:                 uuid.NewString(),
		Number:             formatOrderNumber(seq),
		ClientName:         in.ClientName,
		ClientDocument:     in.ClientDocument,
		ClientPhone:        in.ClientPhone,
		ClientAddress:      in.ClientAddress,
		AssigneeID:         assignee.ID,
		AssigneeName:       assignee.Name,
		Equipment:          in.Equipment,
		Brand:              in.Brand,
		Model:              in.Model,
		SerialNumber:       in.SerialNumber,
		ProblemDescription: in.ProblemDescription,
		Status:             entities.OrderStatusOpen,
		TotalAmount:        total,
		UsageLines:         lines,
		OpenedAt:           time.Now().UTC(),
	}
	return u.orders.Save(ctx, order)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) ListAll(ctx context.Context, page, size int) (entities.OrderPage, error) {
	return u.orders.FindAll(ctx, page, size)
}

func (u *OrderUseCase) ListByAssignee(ctx context.Context, assigneeID string, page, size int) (entities.OrderPage, error) {
	assigneeID = strings.TrimSpace(assigneeID)
	if assigneeID == "" {
		return entities.OrderPage{}, ErrInvalidAssigneeID
	}

	assignee, err := u.users.GetByID(ctx, assigneeID)
	if err != nil {
		return entities.OrderPage{}, err
	}
	if assignee.ID == "" {
		return entities.OrderPage{}, ErrAssigneeNotFound
	}
	return u.orders.FindByAssignee(ctx, assigneeID, page, size)
}

// Update replaces the order's mutable state with the given full-state input.
// Entering COMPLETED stamps the close timestamp and triggers document
// rendering after the save; a renderer failure is reported in the result but
// never rolls the transition back.
func (u *OrderUseCase) Update(ctx context.Context, id string, in OrderUpdateInput) (OrderUpdateResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return OrderUpdateResult{}, ErrInvalidOrderID
	}
	if strings.TrimSpace(in.ProblemDescription) == "" {
		return OrderUpdateResult{}, ErrMissingProblemDescription
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return OrderUpdateResult{}, err
	}
	if order.ID == "" {
		return OrderUpdateResult{}, ErrOrderNotFound
	}

	if err := entities.ValidateTransition(order.Status, in.Status); err != nil {
		return OrderUpdateResult{}, err
	}

	completing := in.Status == entities.OrderStatusCompleted && order.Status != entities.OrderStatusCompleted

	order.ClientName = in.ClientName
	order.ClientDocument = in.ClientDocument
	order.ClientPhone = in.ClientPhone
	order.ClientAddress = in.ClientAddress
	order.Equipment = in.Equipment
	order.Brand = in.Brand
	order.Model = in.Model
	order.SerialNumber = in.SerialNumber
	order.ProblemDescription = in.ProblemDescription
	order.Resolution = in.Resolution
	order.Status = in.Status

	if in.UsageLines != nil {
		lines, total, err := u.billing.ComputeUsage(ctx, in.UsageLines)
		if err != nil {
			return OrderUpdateResult{}, err
		}
		order.UsageLines = lines
		order.TotalAmount = total
	}

	if completing {
		now := time.Now().UTC()
		order.ClosedAt = &now
	}

	saved, err := u.orders.Save(ctx, order)
	if err != nil {
		return OrderUpdateResult{}, err
	}

	result := OrderUpdateResult{Order: saved}
	if completing && u.renderer != nil {
		if _, err := u.renderer.RenderOrder(ctx, saved); err != nil {
			log.Printf("[order][usecase] document render failed order_id=%s number=%s err=%v", saved.ID, saved.Number, err)
			result.RenderError = err
		}
	}
	return result, nil
}

func (u *OrderUseCase) GenerateReport(ctx context.Context, start, end time.Time) (entities.Report, error) {
	if end.Before(start) {
		return entities.Report{}, ErrInvalidPeriod
	}

	orders, err := u.orders.FindByOpenDateRange(ctx, start, end)
	if err != nil {
		return entities.Report{}, err
	}

	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}

	return entities.Report{
		Start:       start,
		End:         end,
		TotalOrders: int64(len(orders)),
		TotalAmount: total,
		Orders:      orders,
	}, nil
}

func formatOrderNumber(seq int64) string {
	return fmt.Sprintf("OS-%06d", seq)
}
