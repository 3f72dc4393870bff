package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"concessionaria_xpto/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

var (
	ErrItemAlreadyExists = errors.New("item already exists")
	ErrItemNotFound      = errors.New("item not found")
)

const (
	attrID         = "id"
	attrProposalID = "proposal_id"

	proposalIDIndex = "proposal_id-index"
)

type writeMode int

const (
	// writeCreate requires the item to be absent.
	writeCreate writeMode = iota
	// writeReplace requires the item to exist and overwrites it.
	writeReplace
)

// dynamoTable is a single-table accessor keyed by the string attribute "id".
//
// When ctx carries a unit of work, writes are buffered in it and reads overlay
// the buffered writes. Otherwise every call hits DynamoDB directly.
type dynamoTable struct {
	ddb  DynamoDBAPI
	name string
}

// newDynamoTable resolves the table name from envKey, falling back to def.
func newDynamoTable(ddb DynamoDBAPI, envKey, def string) dynamoTable {
	return dynamoTable{ddb: ddb, name: database.GetenvDefault(envKey, def)}
}

func (t dynamoTable) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrID: &types.AttributeValueMemberS{Value: id},
	}
}

func (t dynamoTable) get(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	if tx := txFromContext(ctx); tx != nil {
		if item, ok := tx.lookup(t.name, id); ok {
			return item, nil
		}
	}

	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            t.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func (t dynamoTable) put(ctx context.Context, id string, item map[string]types.AttributeValue, mode writeMode) error {
	if tx := txFromContext(ctx); tx != nil {
		return tx.put(t.name, id, item, mode)
	}

	cond := "attribute_not_exists(#id)"
	if mode == writeReplace {
		cond = "attribute_exists(#id)"
	}
	_, err := t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.name),
		Item:                item,
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#id": attrID,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if mode == writeCreate {
				return fmt.Errorf("%s/%s: %w", t.name, id, ErrItemAlreadyExists)
			}
			return fmt.Errorf("%s/%s: %w", t.name, id, ErrItemNotFound)
		}
		return err
	}
	return nil
}

func (t dynamoTable) delete(ctx context.Context, id string) error {
	if tx := txFromContext(ctx); tx != nil {
		tx.delete(t.name, id)
		return nil
	}

	_, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(t.name),
		Key:       t.key(id),
	})
	return err
}

// queryEq lists the items whose attr equals value through the GSI index.
// Results are ordered by id.
func (t dynamoTable) queryEq(ctx context.Context, index, attr string, value any) ([]map[string]types.AttributeValue, error) {
	keyCond := expression.Key(attr).Equal(expression.Value(value))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, err
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewQueryPaginator(t.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(t.name),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}

	if tx := txFromContext(ctx); tx != nil {
		want, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, err
		}
		items = tx.overlay(t.name, items, attr, want)
	}
	sortByID(items)
	return items, nil
}

// scan lists every item matching cond. A nil cond scans the whole table.
// Scans never see the writes buffered in a unit of work.
func (t dynamoTable) scan(ctx context.Context, cond *expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(t.name)}
	if cond != nil {
		expr, err := expression.NewBuilder().WithFilter(*cond).Build()
		if err != nil {
			return nil, err
		}
		in.FilterExpression = expr.Filter()
		in.ExpressionAttributeNames = expr.Names()
		in.ExpressionAttributeValues = expr.Values()
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(t.ddb, in)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	sortByID(items)
	return items, nil
}

func itemID(item map[string]types.AttributeValue) string {
	if s, ok := item[attrID].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func sortByID(items []map[string]types.AttributeValue) {
	sort.SliceStable(items, func(i, j int) bool {
		return itemID(items[i]) < itemID(items[j])
	})
}

// attrEqual compares two scalar attribute values.
func attrEqual(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	}
	return false
}

func unmarshalAll[I any](raw []map[string]types.AttributeValue) ([]I, error) {
	out := make([]I, 0, len(raw))
	for _, av := range raw {
		var it I
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}
