package repository

import (
	"context"
	"time"

	"piecework_tracker/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "piecework_kv"

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// dynamoKV is the part of *dynamodb.Client the store needs.
type dynamoKV interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// KeyValueDynamoRepository stores JSON blobs in a single DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// Each persisted state key (ordersData, notifications, sentReports) is one
// item; a write replaces the whole item.

type KeyValueDynamoRepository struct {
	ddb       dynamoKV
	tableName string
}

var _ interfaces.IKeyValueStore = (*KeyValueDynamoRepository)(nil)

func NewKeyValueDynamoRepository(ddb *dynamodb.Client) *KeyValueDynamoRepository {
	return newKeyValueDynamoRepository(ddb, getenvDefault("KV_TABLE", defaultKVTableName))
}

// TableName is the table the repository reads and writes.
func (r *KeyValueDynamoRepository) TableName() string {
	return r.tableName
}

func newKeyValueDynamoRepository(ddb dynamoKV, tableName string) *KeyValueDynamoRepository {
	return &KeyValueDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *KeyValueDynamoRepository) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Value), nil
}

func (r *KeyValueDynamoRepository) Put(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
