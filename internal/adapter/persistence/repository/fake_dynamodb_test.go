package repository

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoDBAPI keyed by the "id" attribute.
//
// Queries support a single equality key condition. Scans ignore filters.
type fakeDynamo struct {
	mu           sync.Mutex
	tables       map[string]map[string]map[string]types.AttributeValue
	transactions [][]types.TransactWriteItem
	putCalls     int
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[name])
}

func keyOf(key map[string]types.AttributeValue) string {
	return itemID(key)
}

// conditionHolds evaluates the attribute_(not_)exists(#id) conditions used by
// the repositories.
func conditionHolds(cond *string, exists bool) bool {
	if cond == nil {
		return true
	}
	switch {
	case strings.HasPrefix(*cond, "attribute_not_exists"):
		return !exists
	case strings.HasPrefix(*cond, "attribute_exists"):
		return exists
	}
	return true
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putCalls++
	t := f.table(aws.ToString(in.TableName))
	id := itemID(in.Item)
	_, exists := t[id]
	if !conditionHolds(in.ConditionExpression, exists) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

// UpdateItem only supports the "ADD #value :one" counter update.
func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	id := keyOf(in.Key)
	item, ok := t[id]
	if !ok {
		item = map[string]types.AttributeValue{attrID: &types.AttributeValueMemberS{Value: id}}
	}
	var current int64
	if n, ok := item["value"].(*types.AttributeValueMemberN); ok {
		current, _ = strconv.ParseInt(n.Value, 10, 64)
	}
	step, _ := strconv.ParseInt(in.ExpressionAttributeValues[":one"].(*types.AttributeValueMemberN).Value, 10, 64)
	next := &types.AttributeValueMemberN{Value: strconv.FormatInt(current+step, 10)}
	item["value"] = next
	t[id] = item
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{"value": next}}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.table(aws.ToString(in.TableName)), keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var attr string
	for _, name := range in.ExpressionAttributeNames {
		attr = name
	}
	var want types.AttributeValue
	for _, v := range in.ExpressionAttributeValues {
		want = v
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.table(aws.ToString(in.TableName)) {
		if attrEqual(item[attr], want) {
			items = append(items, item)
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var items []map[string]types.AttributeValue
	for _, item := range f.table(aws.ToString(in.TableName)) {
		items = append(items, item)
	}
	return &dynamodb.ScanOutput{Items: items}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions = append(f.transactions, in.TransactItems)

	for _, it := range in.TransactItems {
		if it.Put == nil {
			continue
		}
		_, exists := f.table(aws.ToString(it.Put.TableName))[itemID(it.Put.Item)]
		if !conditionHolds(it.Put.ConditionExpression, exists) {
			return nil, &types.TransactionCanceledException{Message: aws.String("Transaction cancelled, please refer cancellation reasons for specific reasons [ConditionalCheckFailed]")}
		}
	}
	for _, it := range in.TransactItems {
		switch {
		case it.Put != nil:
			f.table(aws.ToString(it.Put.TableName))[itemID(it.Put.Item)] = it.Put.Item
		case it.Delete != nil:
			delete(f.table(aws.ToString(it.Delete.TableName)), keyOf(it.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}
