package repository

import (
	"context"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultSalesOrdersTableName = "sales_orders"

type salesOrderItem struct {
	ID             string `dynamodbav:"id"`
	ProposalID     string `dynamodbav:"proposal_id"`
	Status         string `dynamodbav:"status"`
	Classification string `dynamodbav:"classification,omitempty"`
	OwnerUserID    string `dynamodbav:"owner_user_id"`
	IssueKey       string `dynamodbav:"issue_key,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// SalesOrderDynamoRepository persists sales orders.
//
// Table requirements:
//   - PK: id (string)
//   - GSI proposal_id-index: proposal_id (string)
type SalesOrderDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.ISalesOrderRepository = (*SalesOrderDynamoRepository)(nil)

func NewSalesOrderDynamoRepository(ddb DynamoDBAPI) *SalesOrderDynamoRepository {
	return &SalesOrderDynamoRepository{
		table: newDynamoTable(ddb, "SALES_ORDERS_TABLE", defaultSalesOrdersTableName),
	}
}

func (r *SalesOrderDynamoRepository) Create(ctx context.Context, o entities.SalesOrder) (entities.SalesOrder, error) {
	return o, r.save(ctx, o, writeCreate)
}

func (r *SalesOrderDynamoRepository) Update(ctx context.Context, o entities.SalesOrder) (entities.SalesOrder, error) {
	return o, r.save(ctx, o, writeReplace)
}

func (r *SalesOrderDynamoRepository) save(ctx context.Context, o entities.SalesOrder, mode writeMode) error {
	av, err := attributevalue.MarshalMap(toSalesOrderItem(o))
	if err != nil {
		return err
	}
	return r.table.put(ctx, o.ID, av, mode)
}

func (r *SalesOrderDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.SalesOrder, error) {
	raw, err := r.table.queryEq(ctx, proposalIDIndex, attrProposalID, proposalID)
	if err != nil || len(raw) == 0 {
		return entities.SalesOrder{}, err
	}
	var it salesOrderItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.SalesOrder{}, err
	}
	return fromSalesOrderItem(it), nil
}

func toSalesOrderItem(o entities.SalesOrder) salesOrderItem {
	return salesOrderItem{
		ID:             o.ID,
		ProposalID:     o.ProposalID,
		Status:         string(o.Status),
		Classification: o.Classification,
		OwnerUserID:    o.OwnerUserID,
		IssueKey:       o.IssueKey,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
}

func fromSalesOrderItem(it salesOrderItem) entities.SalesOrder {
	return entities.SalesOrder{
		ID:             it.ID,
		ProposalID:     it.ProposalID,
		Status:         entities.SalesOrderStatus(it.Status),
		Classification: it.Classification,
		OwnerUserID:    it.OwnerUserID,
		IssueKey:       it.IssueKey,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
