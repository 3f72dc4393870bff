package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"concessionaria_xpto/internal/infrastructure/logger"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// maxTransactItems is the DynamoDB TransactWriteItems limit.
const maxTransactItems = 100

var ErrTransactionTooLarge = errors.New("unit of work exceeds the DynamoDB transaction limit")

type txKey struct{}

type opKind int

const (
	opPut opKind = iota
	opDelete
)

type pendingOp struct {
	kind  opKind
	mode  writeMode
	table string
	id    string
	item  map[string]types.AttributeValue
}

// dynamoTx buffers the writes of one unit of work.
//
// Writes to the same table/id are coalesced into a single operation so the
// whole unit commits as one TransactWriteItems call.
type dynamoTx struct {
	mu    sync.Mutex
	ops   map[string]*pendingOp
	order []string
}

func newDynamoTx() *dynamoTx {
	return &dynamoTx{ops: map[string]*pendingOp{}}
}

func txFromContext(ctx context.Context) *dynamoTx {
	tx, _ := ctx.Value(txKey{}).(*dynamoTx)
	return tx
}

func opKey(table, id string) string {
	return table + "\x00" + id
}

func (tx *dynamoTx) lookup(table, id string) (map[string]types.AttributeValue, bool) {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	op, ok := tx.ops[opKey(table, id)]
	if !ok {
		return nil, false
	}
	if op.kind == opDelete {
		return nil, true
	}
	return op.item, true
}

func (tx *dynamoTx) put(table, id string, item map[string]types.AttributeValue, mode writeMode) error {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	k := opKey(table, id)
	prev, ok := tx.ops[k]
	if !ok {
		tx.ops[k] = &pendingOp{kind: opPut, mode: mode, table: table, id: id, item: item}
		tx.order = append(tx.order, k)
		return nil
	}

	switch {
	case prev.kind == opDelete && mode == writeCreate:
		// deleted then recreated: the stored row still exists
		prev.kind, prev.mode, prev.item = opPut, writeReplace, item
	case prev.kind == opDelete:
		return fmt.Errorf("%s/%s: %w", table, id, ErrItemNotFound)
	case mode == writeCreate:
		return fmt.Errorf("%s/%s: %w", table, id, ErrItemAlreadyExists)
	default:
		prev.item = item
	}
	return nil
}

func (tx *dynamoTx) delete(table, id string) {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	k := opKey(table, id)
	prev, ok := tx.ops[k]
	if !ok {
		tx.ops[k] = &pendingOp{kind: opDelete, table: table, id: id}
		tx.order = append(tx.order, k)
		return
	}
	if prev.kind == opPut && prev.mode == writeCreate {
		delete(tx.ops, k)
		return
	}
	prev.kind, prev.item = opDelete, nil
}

// overlay applies the buffered writes of table to query results matching attr = want.
func (tx *dynamoTx) overlay(table string, items []map[string]types.AttributeValue, attr string, want types.AttributeValue) []map[string]types.AttributeValue {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	out := make([]map[string]types.AttributeValue, 0, len(items))
	for _, item := range items {
		if _, pending := tx.ops[opKey(table, itemID(item))]; pending {
			continue
		}
		out = append(out, item)
	}
	for _, k := range tx.order {
		op, ok := tx.ops[k]
		if !ok || op.table != table || op.kind != opPut {
			continue
		}
		if attrEqual(op.item[attr], want) {
			out = append(out, op.item)
		}
	}
	return out
}

func (tx *dynamoTx) transactItems() []types.TransactWriteItem {
	tx.mu.Lock()
	defer tx.mu.Unlock()

	items := make([]types.TransactWriteItem, 0, len(tx.ops))
	for _, k := range tx.order {
		op, ok := tx.ops[k]
		if !ok {
			continue
		}
		if op.kind == opDelete {
			items = append(items, types.TransactWriteItem{
				Delete: &types.Delete{
					TableName: aws.String(op.table),
					Key: map[string]types.AttributeValue{
						attrID: &types.AttributeValueMemberS{Value: op.id},
					},
				},
			})
			continue
		}
		cond := "attribute_not_exists(#id)"
		if op.mode == writeReplace {
			cond = "attribute_exists(#id)"
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(op.table),
				Item:                op.item,
				ConditionExpression: aws.String(cond),
				ExpressionAttributeNames: map[string]string{
					"#id": attrID,
				},
			},
		})
	}
	return items
}

// DynamoUnitOfWork commits every write of a unit of work in one DynamoDB transaction.
type DynamoUnitOfWork struct {
	ddb DynamoDBAPI
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoDBAPI) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb}
}

func (u *DynamoUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx := newDynamoTx()
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		logger.L().Debug("[uow][dynamodb] rollback", zap.Int("discarded_ops", len(tx.ops)), zap.Error(err))
		return err
	}

	items := tx.transactItems()
	if len(items) == 0 {
		return nil
	}
	if len(items) > maxTransactItems {
		return fmt.Errorf("%w: %d items", ErrTransactionTooLarge, len(items))
	}

	_, err := u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			logger.L().Warn("[uow][dynamodb] transaction canceled", zap.Int("items", len(items)), zap.Error(err))
		}
		return fmt.Errorf("commit unit of work: %w", err)
	}
	logger.L().Debug("[uow][dynamodb] commit", zap.Int("items", len(items)))
	return nil
}
