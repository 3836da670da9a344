package repository

import (
	"context"
	"encoding/json"
	"time"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description,omitempty"`
	Price       float64 `dynamodbav:"price"`
	Category    string  `dynamodbav:"category,omitempty"`
	Qty         int     `dynamodbav:"qty"`
	Image       string  `dynamodbav:"image,omitempty"`
	Images      string  `dynamodbav:"images,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Images is stored as a JSON string so the item shape stays wire-compatible
// with the relational backends that keep the gallery as a serialized column.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	products := make([]entities.Product, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return products, nil
}

func (r *ProductDynamoRepository) Put(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) DecrementQty(ctx context.Context, id string, qty int) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET qty = qty - :q"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberN{Value: itoa(qty)},
		},
	})
	if isConditionalCheckFailed(err) {
		// Product deleted since the order snapshot was taken; nothing to adjust.
		return nil
	}
	return err
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProductItem(p entities.Product) productItem {
	images := "[]"
	if b, err := json.Marshal(p.Images); err == nil {
		images = string(b)
	}
	return productItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Qty:         p.Qty,
		Image:       p.Image,
		Images:      images,
		CreatedAt:   p.CreatedAt.UTC().Format(createdAtLayout),
	}
}

func fromProductItem(it productItem) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var images []string
	if it.Images != "" && it.Images != "null" {
		_ = json.Unmarshal([]byte(it.Images), &images)
	}
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		Category:    it.Category,
		Qty:         it.Qty,
		Image:       it.Image,
		Images:      images,
		CreatedAt:   createdAt,
	}
}
