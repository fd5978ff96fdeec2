package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"pharma_fieldops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "fieldops_kv"

// maxItemValueBytes keeps an item under DynamoDB's 400 KB item limit, leaving
// room for the key, the timestamp and the attribute names.
const maxItemValueBytes = 400*1024 - 1024

var ErrValueTooLarge = errors.New("value exceeds the DynamoDB item size limit")

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// dynamoKVAPI is the subset of *dynamodb.Client used by the store.
type dynamoKVAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// DynamoKeyValueStore persists record lists in a single DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// Each item holds one whole JSON list in "value". Multi-key writes go through
// TransactWriteItems so they land together or not at all.
//
// An item is capped at 400 KB, so a list (in practice "visits") stops
// fitting after a few thousand records. Oversized writes fail with
// ErrValueTooLarge before reaching DynamoDB; larger deployments should use
// the redis or mongo backend.

type DynamoKeyValueStore struct {
	ddb       dynamoKVAPI
	tableName string
}

var _ interfaces.IKeyValueStore = (*DynamoKeyValueStore)(nil)

func NewDynamoKeyValueStore(ddb *dynamodb.Client, tableName string) *DynamoKeyValueStore {
	return newDynamoKeyValueStore(ddb, tableName)
}

func newDynamoKeyValueStore(ddb dynamoKVAPI, tableName string) *DynamoKeyValueStore {
	if tableName == "" {
		tableName = defaultKVTableName
	}
	return &DynamoKeyValueStore{ddb: ddb, tableName: tableName}
}

func (r *DynamoKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

func checkItemSize(key, value string) error {
	if len(value) > maxItemValueBytes {
		return fmt.Errorf("%w: key=%s size=%d", ErrValueTooLarge, key, len(value))
	}
	return nil
}

func (r *DynamoKeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := checkItemSize(key, value); err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(kvItem{Key: key, Value: value, UpdatedAt: nowRFC3339()})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DynamoKeyValueStore) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := nowRFC3339()
	items := make([]types.TransactWriteItem, 0, len(keys))
	for _, k := range keys {
		if err := checkItemSize(k, values[k]); err != nil {
			return err
		}
		av, err := attributevalue.MarshalMap(kvItem{Key: k, Value: values[k], UpdatedAt: now})
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.tableName), Item: av},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}
