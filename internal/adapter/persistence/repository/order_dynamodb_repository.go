package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItemRow struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	Phone         string  `dynamodbav:"phone"`
	Address       string  `dynamodbav:"address"`
	City          string  `dynamodbav:"city,omitempty"`
	Zip           string  `dynamodbav:"zip,omitempty"`
	Items         string  `dynamodbav:"items"`
	Total         float64 `dynamodbav:"total"`
	Status        string  `dynamodbav:"status"`
	PaymentStatus string  `dynamodbav:"payment_status"`
	TransactionID string  `dynamodbav:"transaction_id,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The item snapshot is stored as a JSON string: it is written once at
// validation time and never mutated, so there is nothing to query inside it.
//
// MarkPaid is the idempotency pivot of the whole payment flow. It relies on a
// ConditionExpression instead of read-then-write, so two racing deliveries
// for the same order resolve to exactly one applied write regardless of
// interleaving.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Insert(ctx context.Context, o entities.Order) (entities.Order, error) {
	it, err := toOrderItemRow(o)
	if err != nil {
		return entities.Order{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return o, nil
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

	var it orderItemRow
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItemRow(it)
}

func (r *OrderDynamoRepository) ListVisible(ctx context.Context) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#st <> :pending"),
			ExpressionAttributeNames: map[string]string{
				"#st": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pending": &types.AttributeValueMemberS{Value: string(entities.OrderStatusPendingPayment)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItemRow
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			o, err := fromOrderItemRow(it)
			if err != nil {
				return nil, err
			}
			orders = append(orders, o)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, id, transactionID string) (entities.Order, bool, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #st = :new, payment_status = :paid, transaction_id = :txn"),
		ConditionExpression: aws.String("attribute_exists(#id) AND payment_status <> :paid"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new":  &types.AttributeValueMemberS{Value: string(entities.OrderStatusNew)},
			":paid": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
			":txn":  &types.AttributeValueMemberS{Value: transactionID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		// Already paid (or gone): the write did not apply. Hand back the
		// current row so the caller can acknowledge idempotently.
		current, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return entities.Order{}, false, getErr
		}
		return current, false, nil
	}
	if err != nil {
		return entities.Order{}, false, err
	}

	var it orderItemRow
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, false, err
	}
	o, err := fromOrderItemRow(it)
	return o, true, err
}

func (r *OrderDynamoRepository) MarkFailed(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		// A late failure notification must not clobber a confirmed payment.
		UpdateExpression:    aws.String("SET payment_status = :failed"),
		ConditionExpression: aws.String("attribute_exists(#id) AND payment_status <> :paid"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":failed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
			":paid":   &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		return r.GetByID(ctx, id)
	}
	if err != nil {
		return entities.Order{}, err
	}

	var it orderItemRow
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItemRow(it)
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.ID == "" {
		return entities.Order{}, nil
	}
	if !entities.CanTransition(current.Status, status) {
		return entities.Order{}, entities.ErrInvalidStatusTransition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET #st = :to"),
		// Re-checked at write time so a concurrent transition cannot sneak a
		// backward hop past the read above.
		ConditionExpression: aws.String("#st = :from"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: string(status)},
			":from": &types.AttributeValueMemberS{Value: string(current.Status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionalCheckFailed(err) {
		return entities.Order{}, entities.ErrInvalidStatusTransition
	}
	if err != nil {
		return entities.Order{}, err
	}

	var it orderItemRow
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItemRow(it)
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *OrderDynamoRepository) DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	cutoffStr := cutoff.UTC().Format(createdAtLayout)
	deleted := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#st = :completed AND created_at < :cutoff"),
			ProjectionExpression: aws.String("#id"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
				"#st": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":completed": &types.AttributeValueMemberS{Value: string(entities.OrderStatusCompleted)},
				":cutoff":    &types.AttributeValueMemberS{Value: cutoffStr},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return deleted, err
		}
		for _, raw := range out.Items {
			var it struct {
				ID string `dynamodbav:"id"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return deleted, err
			}
			if err := r.Delete(ctx, it.ID); err != nil {
				return deleted, err
			}
			deleted++
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return deleted, nil
}

func toOrderItemRow(o entities.Order) (orderItemRow, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return orderItemRow{}, err
	}
	return orderItemRow{
		ID:            o.ID,
		Name:          o.Name,
		Phone:         o.Phone,
		Address:       o.Address,
		City:          o.City,
		Zip:           o.Zip,
		Items:         string(items),
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt.UTC().Format(createdAtLayout),
	}, nil
}

func fromOrderItemRow(it orderItemRow) (entities.Order, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var items []entities.OrderItem
	if it.Items != "" && it.Items != "null" {
		if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
			return entities.Order{}, err
		}
	}
	return entities.Order{
		ID:            it.ID,
		Name:          it.Name,
		Phone:         it.Phone,
		Address:       it.Address,
		City:          it.City,
		Zip:           it.Zip,
		Items:         items,
		Total:         it.Total,
		Status:        entities.OrderStatus(it.Status),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		TransactionID: it.TransactionID,
		CreatedAt:     createdAt,
	}, nil
}
