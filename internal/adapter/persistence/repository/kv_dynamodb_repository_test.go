package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	err    error
	tables []string
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, *in.TableName)
	key := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tables = append(f.tables, *in.TableName)
	key := in.Item["key"].(*types.AttributeValueMemberS).Value
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestKeyValueDynamoRepository(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
	repo := newKeyValueDynamoRepository(fake, "kv_test")

	missing, err := repo.Get(ctx, KeyOrdersData)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Put(ctx, KeyOrdersData, []byte(`{"orders":[]}`)))
	got, err := repo.Get(ctx, KeyOrdersData)
	require.NoError(t, err)
	assert.Equal(t, `{"orders":[]}`, string(got))

	_, ok := fake.items[KeyOrdersData]["updated_at"]
	assert.True(t, ok)
	for _, table := range fake.tables {
		assert.Equal(t, "kv_test", table)
	}
}

func TestKeyValueDynamoRepository_Errors(t *testing.T) {
	repo := newKeyValueDynamoRepository(&fakeDynamo{err: errors.New("throttled")}, "kv_test")

	_, err := repo.Get(context.Background(), "k")
	assert.EqualError(t, err, "throttled")
	assert.EqualError(t, repo.Put(context.Background(), "k", []byte("v")), "throttled")
}
