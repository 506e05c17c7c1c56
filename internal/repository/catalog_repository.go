package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/johncrouse123/cloud-portfolio/internal/domain"
	pkgconfig "github.com/johncrouse123/cloud-portfolio/pkg/config"
)

// DynamoAPI is the subset of the DynamoDB client the catalog uses.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type CatalogRepository struct {
	client    DynamoAPI
	tableName string
}

func NewDynamoDBClient(cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	if cfg.DynamoDBEndpoint != "" {
		return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}), nil
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

func NewCatalogRepository(client DynamoAPI, tableName string) *CatalogRepository {
	return &CatalogRepository{
		client:    client,
		tableName: tableName,
	}
}

// List returns one scan page of the catalog table. There is no
// pagination loop: a table larger than one page returns a partial
// result.
func (r *CatalogRepository) List(ctx context.Context) ([]map[string]interface{}, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, &domain.StoreError{Op: "scan products", Err: err}
	}

	items := make([]map[string]interface{}, 0, len(out.Items))
	for _, av := range out.Items {
		var item map[string]interface{}
		if err := attributevalue.UnmarshalMap(av, &item); err != nil {
			return nil, &domain.StoreError{Op: "unmarshal product", Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *CatalogRepository) Get(ctx context.Context, id string) (map[string]interface{}, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, &domain.StoreError{Op: "get product", Err: err}
	}
	if len(out.Item) == 0 {
		return nil, domain.ErrProductNotFound
	}

	var item map[string]interface{}
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, &domain.StoreError{Op: "unmarshal product", Err: err}
	}
	return item, nil
}

// Create writes the full item, replacing any existing item with the
// same product_id. Upsert semantics, not insert-only.
func (r *CatalogRepository) Create(ctx context.Context, item map[string]interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return &domain.StoreError{Op: "marshal product", Err: err}
	}

	// price and stock go out as exact-decimal N attributes rather than
	// whatever the marshaler made of them.
	for _, k := range []string{"price", "stock"} {
		if d, ok := item[k].(decimal.Decimal); ok {
			av[k] = &types.AttributeValueMemberN{Value: d.String()}
		}
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return &domain.StoreError{Op: "put product", Err: err}
	}
	return nil
}

// Update overwrites exactly name, price and stock. Zero-value inputs
// are written as-is, so fields the caller omitted get ""/0/0.
func (r *CatalogRepository) Update(ctx context.Context, id string, req domain.UpdateProductRequest) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:         aws.String("SET #n = :n, price = :p, stock = :s"),
		ExpressionAttributeNames: map[string]string{"#n": "name"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: req.Name},
			":p": &types.AttributeValueMemberN{Value: req.Price.String()},
			":s": &types.AttributeValueMemberN{Value: req.Stock.String()},
		},
	})
	if err != nil {
		return &domain.StoreError{Op: "update product", Err: err}
	}
	return nil
}

// Delete removes the item unconditionally. Deleting an absent key is
// not an error.
func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return &domain.StoreError{Op: "delete product", Err: err}
	}
	return nil
}
