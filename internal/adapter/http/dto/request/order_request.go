package request

import (
	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase"
)

// UsageLineRequest is one requested product consumption. Quantities are
// validated by the billing engine; prices are never accepted from callers.
type UsageLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// OrderCreateRequest opens a service order. Client fields are free-form
// snapshot values captured into the order.
type OrderCreateRequest struct {
	ClientName         string             `json:"client_name" binding:"required"`
	ClientDocument     string             `json:"client_document"`
	ClientPhone        string             `json:"client_phone"`
	ClientAddress      string             `json:"client_address"`
	AssigneeID         string             `json:"assignee_id" binding:"required"`
	Equipment          string             `json:"equipment" binding:"required"`
	Brand              string             `json:"brand"`
	Model              string             `json:"model"`
	SerialNumber       string             `json:"serial_number"`
	ProblemDescription string             `json:"problem_description" binding:"required"`
	UsageLines         []UsageLineRequest `json:"usage_lines"`
}

func (r OrderCreateRequest) ToInput() usecase.OrderCreateInput {
	return usecase.OrderCreateInput{
		ClientName:         r.ClientName,
		ClientDocument:     r.ClientDocument,
		ClientPhone:        r.ClientPhone,
		ClientAddress:      r.ClientAddress,
		AssigneeID:         r.AssigneeID,
		Equipment:          r.Equipment,
		Brand:              r.Brand,
		Model:              r.Model,
		SerialNumber:       r.SerialNumber,
		ProblemDescription: r.ProblemDescription,
		UsageLines:         toUsageInputs(r.UsageLines),
	}
}

// OrderUpdateRequest carries the complete desired state of an order; omitted
// scalar fields overwrite with their zero value. A missing usage_lines field
// leaves the current lines in place, while a present list (empty included)
// replaces them wholesale.
type OrderUpdateRequest struct {
	ClientName         string              `json:"client_name" binding:"required"`
	ClientDocument     string              `json:"client_document"`
	ClientPhone        string              `json:"client_phone"`
	ClientAddress      string              `json:"client_address"`
	Equipment          string              `json:"equipment" binding:"required"`
	Brand              string              `json:"brand"`
	Model              string              `json:"model"`
	SerialNumber       string              `json:"serial_number"`
	ProblemDescription string              `json:"problem_description" binding:"required"`
	Resolution         string              `json:"resolution"`
	Status             string              `json:"status" binding:"required"`
	UsageLines         *[]UsageLineRequest `json:"usage_lines"`
}

func (r OrderUpdateRequest) ToInput() usecase.OrderUpdateInput {
	in := usecase.OrderUpdateInput{
		ClientName:         r.ClientName,
		ClientDocument:     r.ClientDocument,
		ClientPhone:        r.ClientPhone,
		ClientAddress:      r.ClientAddress,
		Equipment:          r.Equipment,
		Brand:              r.Brand,
		Model:              r.Model,
		SerialNumber:       r.SerialNumber,
		ProblemDescription: r.ProblemDescription,
		Resolution:         r.Resolution,
		Status:             entities.OrderStatus(r.Status),
	}
	if r.UsageLines != nil {
		lines := toUsageInputs(*r.UsageLines)
		if lines == nil {
			lines = []usecase.UsageInput{}
		}
		in.UsageLines = lines
	}
	return in
}

func toUsageInputs(lines []UsageLineRequest) []usecase.UsageInput {
	if lines == nil {
		return nil
	}
	inputs := make([]usecase.UsageInput, 0, len(lines))
	for _, l := range lines {
		inputs = append(inputs, usecase.UsageInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return inputs
}
