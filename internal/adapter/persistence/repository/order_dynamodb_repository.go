package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"sistemaos/internal/domain/entities"
	"sistemaos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName   = "service_orders"
	defaultCountersTableName = "counters"
	orderNumberCounterID     = "service_order_number"

	defaultPageSize = 10
)

var errMissingCounterAttribute = errors.New("order number counter attribute missing")

type usageLineItem struct {
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	LineTotal   string `dynamodbav:"line_total"`
}

type orderItem struct {
	ID                 string          `dynamodbav:"id"`
	Number             string          `dynamodbav:"number"`
	ClientName         string          `dynamodbav:"client_name"`
	ClientDocument     string          `dynamodbav:"client_document"`
	ClientPhone        string          `dynamodbav:"client_phone"`
	ClientAddress      string          `dynamodbav:"client_address"`
	AssigneeID         string          `dynamodbav:"assignee_id"`
	AssigneeName       string          `dynamodbav:"assignee_name"`
	Equipment          string          `dynamodbav:"equipment"`
	Brand              string          `dynamodbav:"brand"`
	Model              string          `dynamodbav:"model"`
	SerialNumber       string          `dynamodbav:"serial_number"`
	ProblemDescription string          `dynamodbav:"problem_description"`
	Resolution         string          `dynamodbav:"resolution"`
	Status             string          `dynamodbav:"status"`
	TotalAmount        string          `dynamodbav:"total_amount"`
	UsageLines         []usageLineItem `dynamodbav:"usage_lines"`
	OpenedAt           string          `dynamodbav:"opened_at"`
	ClosedAt           string          `dynamodbav:"closed_at,omitempty"`
}

// OrderDynamoRepository persists service orders in DynamoDB.
//
// Table requirements:
//   - orders table, PK: id (string); usage lines live embedded in the order
//     item, so replacing the item replaces the lines atomically with the save.
//   - counters table, PK: id (string), holding the order-number sequence item.
//
// Listings Scan the table and page in memory, newest-open first. Fine at
// workshop scale and keeps page ordering stable for a fixed snapshot.

type OrderDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("SERVICE_ORDERS_TABLE", defaultOrdersTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *OrderDynamoRepository) Save(ctx context.Context, order entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(order))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) FindAll(ctx context.Context, page, size int) (entities.OrderPage, error) {
	orders, err := r.ListAll(ctx)
	if err != nil {
		return entities.OrderPage{}, err
	}
	return paginateOrders(orders, page, size), nil
}

func (r *OrderDynamoRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	return r.scan(ctx, nil)
}

func (r *OrderDynamoRepository) FindByAssignee(ctx context.Context, assigneeID string, page, size int) (entities.OrderPage, error) {
	orders, err := r.scan(ctx, func(o entities.Order) bool {
		return o.AssigneeID == assigneeID
	})
	if err != nil {
		return entities.OrderPage{}, err
	}
	return paginateOrders(orders, page, size), nil
}

func (r *OrderDynamoRepository) FindByOpenDateRange(ctx context.Context, start, end time.Time) ([]entities.Order, error) {
	return r.scan(ctx, func(o entities.Order) bool {
		return !o.OpenedAt.Before(start) && !o.OpenedAt.After(end)
	})
}

func (r *OrderDynamoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		count += int64(out.Count)
	}
	return count, nil
}

// NextOrderNumber increments the dedicated sequence item atomically. Two
// concurrent creations can never observe the same value, which is what keeps
// order numbers unique without a wall-clock heuristic.
func (r *OrderDynamoRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderNumberCounterID},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounterAttribute
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *OrderDynamoRepository) scan(ctx context.Context, keep func(entities.Order) bool) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		var items []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			o := fromOrderItem(it)
			if keep == nil || keep(o) {
				orders = append(orders, o)
			}
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].OpenedAt.Equal(orders[j].OpenedAt) {
			return orders[i].Number > orders[j].Number
		}
		return orders[i].OpenedAt.After(orders[j].OpenedAt)
	})
	return orders, nil
}

func paginateOrders(orders []entities.Order, page, size int) entities.OrderPage {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}

	total := int64(len(orders))
	totalPages := (total + int64(size) - 1) / int64(size)

	lo := (page - 1) * size
	if lo > len(orders) {
		lo = len(orders)
	}
	hi := lo + size
	if hi > len(orders) {
		hi = len(orders)
	}

	return entities.OrderPage{
		Items:      orders[lo:hi],
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]usageLineItem, 0, len(o.UsageLines))
	for _, l := range o.UsageLines {
		lines = append(lines, usageLineItem{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   decimalToString(l.UnitPrice),
			LineTotal:   decimalToString(l.LineTotal),
		})
	}

	it := orderItem{
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
		TotalAmount:        decimalToString(o.TotalAmount),
		UsageLines:         lines,
		OpenedAt:           timeToString(o.OpenedAt),
	}
	if o.ClosedAt != nil {
		it.ClosedAt = timeToString(*o.ClosedAt)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.UsageLine, 0, len(it.UsageLines))
	for _, l := range it.UsageLines {
		lines = append(lines, entities.UsageLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   decimalFromString(l.UnitPrice),
			LineTotal:   decimalFromString(l.LineTotal),
		})
	}

	o := entities.Order{
		ID:                 it.ID,
		Number:             it.Number,
		ClientName:         it.ClientName,
		ClientDocument:     it.ClientDocument,
		ClientPhone:        it.ClientPhone,
		ClientAddress:      it.ClientAddress,
		AssigneeID:         it.AssigneeID,
		AssigneeName:       it.AssigneeName,
		Equipment:          it.Equipment,
		Brand:              it.Brand,
		Model:              it.Model,
		SerialNumber:       it.SerialNumber,
		ProblemDescription: it.ProblemDescription,
		Resolution:         it.Resolution,
		Status:             entities.OrderStatus(it.Status),
		TotalAmount:        decimalFromString(it.TotalAmount),
		UsageLines:         lines,
		OpenedAt:           timeFromString(it.OpenedAt),
	}
	if it.ClosedAt != "" {
		closed := timeFromString(it.ClosedAt)
		o.ClosedAt = &closed
	}
	return o
}
