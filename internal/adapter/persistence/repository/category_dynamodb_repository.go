package repository

import (
	"context"
	"sort"

	"plantcart/internal/domain/entities"
	"plantcart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCategoriesTableName = "categories"

type categoryItem struct {
	ID    int    `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Slug  string `dynamodbav:"slug"`
	Image string `dynamodbav:"image,omitempty"`
}

// CategoryDynamoRepository persists Category entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)

type CategoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb *dynamodb.Client) *CategoryDynamoRepository {
	return &CategoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATEGORIES_TABLE", defaultCategoriesTableName),
	}
}

func (r *CategoryDynamoRepository) List(ctx context.Context) ([]entities.Category, error) {
	categories := make([]entities.Category, 0)
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
			var it categoryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			categories = append(categories, entities.Category(it))
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *CategoryDynamoRepository) Count(ctx context.Context) (int, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *CategoryDynamoRepository) Put(ctx context.Context, c entities.Category) error {
	av, err := attributevalue.MarshalMap(categoryItem(c))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
