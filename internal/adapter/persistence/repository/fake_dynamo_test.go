package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory single-table DynamoAPI keyed by one string
// attribute.
type fakeDynamo struct {
	mu      sync.Mutex
	keyAttr string
	items   map[string]map[string]types.AttributeValue
	err     error
}

func newFakeDynamo(keyAttr string) *fakeDynamo {
	return &fakeDynamo{keyAttr: keyAttr, items: map[string]map[string]types.AttributeValue{}}
}

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.GetItemOutput{Item: f.items[stringAttr(in.Key[f.keyAttr])]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	key := stringAttr(in.Item[f.keyAttr])
	if in.ConditionExpression != nil && strings.HasPrefix(*in.ConditionExpression, "attribute_not_exists") {
		if _, ok := f.items[key]; ok {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	delete(f.items, stringAttr(in.Key[f.keyAttr]))
	return &dynamodb.DeleteItemOutput{}, nil
}

// Query supports a single "attr = :placeholder" key condition.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	parts := strings.Fields(*in.KeyConditionExpression)
	if len(parts) != 3 || parts[1] != "=" {
		return nil, errors.New("unsupported key condition")
	}
	attr, want := parts[0], stringAttr(in.ExpressionAttributeValues[parts[2]])

	out := &dynamodb.QueryOutput{}
	for _, item := range f.items {
		if stringAttr(item[attr]) == want {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}
