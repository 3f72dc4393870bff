package repository

import (
	"context"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName = "proposals"
	proposalsStatusIndex      = "status-index"
	proposalsNumIndex         = "num-index"
)

type proposalItem struct {
	ID                string `dynamodbav:"id"`
	LeadID            string `dynamodbav:"lead_id,omitempty"`
	Status            string `dynamodbav:"status"`
	Num               int64  `dynamodbav:"num"`
	Cod               string `dynamodbav:"cod"`
	ProposalNumber    string `dynamodbav:"proposal_number"`
	Version           int    `dynamodbav:"version"`
	ValidityDate      string `dynamodbav:"validity_date,omitempty"`
	ImmediateDelivery bool   `dynamodbav:"immediate_delivery"`
	CreatedBy         string `dynamodbav:"created_by"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
	DeletedAt         string `dynamodbav:"deleted_at,omitempty"`
}

// ProposalDynamoRepository persists proposal roots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: status (string)
//   - GSI num-index: num (number)
type ProposalDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb DynamoDBAPI) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		table: newDynamoTable(ddb, "PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	return r.save(ctx, p, writeCreate)
}

func (r *ProposalDynamoRepository) Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	return r.save(ctx, p, writeReplace)
}

func (r *ProposalDynamoRepository) save(ctx context.Context, p entities.Proposal, mode writeMode) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := r.table.put(ctx, p.ID, av, mode); err != nil {
		return entities.Proposal{}, err
	}
	return p.Root(), nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	raw, err := r.table.get(ctx, id)
	if err != nil || raw == nil {
		return entities.Proposal{}, err
	}
	var it proposalItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByNum(ctx context.Context, num int64) ([]entities.Proposal, error) {
	raw, err := r.table.queryEq(ctx, proposalsNumIndex, "num", num)
	if err != nil {
		return nil, err
	}
	return proposalsFromRaw(raw)
}

func (r *ProposalDynamoRepository) ListByStatus(ctx context.Context, status entities.ProposalStatus) ([]entities.Proposal, error) {
	raw, err := r.table.queryEq(ctx, proposalsStatusIndex, "status", string(status))
	if err != nil {
		return nil, err
	}
	return proposalsFromRaw(raw)
}

// Search scans the table with the non-empty root filters. SellerID lives on
// the detail and is not applied here.
func (r *ProposalDynamoRepository) Search(ctx context.Context, filter entities.ProposalFilter) ([]entities.Proposal, error) {
	var conds []expression.ConditionBuilder
	if filter.Status != "" {
		conds = append(conds, expression.Name("status").Equal(expression.Value(string(filter.Status))))
	}
	if filter.LeadID != "" {
		conds = append(conds, expression.Name("lead_id").Equal(expression.Value(filter.LeadID)))
	}
	if filter.ProposalNumber != "" {
		conds = append(conds, expression.Name("proposal_number").Equal(expression.Value(filter.ProposalNumber)))
	}

	var cond *expression.ConditionBuilder
	for i := range conds {
		if cond == nil {
			c := conds[i]
			cond = &c
			continue
		}
		c := cond.And(conds[i])
		cond = &c
	}

	raw, err := r.table.scan(ctx, cond)
	if err != nil {
		return nil, err
	}
	return proposalsFromRaw(raw)
}

func proposalsFromRaw(raw []map[string]types.AttributeValue) ([]entities.Proposal, error) {
	items, err := unmarshalAll[proposalItem](raw)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Proposal, 0, len(items))
	for _, it := range items {
		out = append(out, fromProposalItem(it))
	}
	return out, nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:                p.ID,
		LeadID:            p.LeadID,
		Status:            string(p.Status),
		Num:               p.Num,
		Cod:               p.Cod,
		ProposalNumber:    p.ProposalNumber,
		Version:           p.Version,
		ValidityDate:      formatTimePtr(p.ValidityDate),
		ImmediateDelivery: p.ImmediateDelivery,
		CreatedBy:         p.CreatedBy,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
		DeletedAt:         formatTimePtr(p.DeletedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:                it.ID,
		LeadID:            it.LeadID,
		Status:            entities.ProposalStatus(it.Status),
		Num:               it.Num,
		Cod:               it.Cod,
		ProposalNumber:    it.ProposalNumber,
		Version:           it.Version,
		ValidityDate:      parseTimePtr(it.ValidityDate),
		ImmediateDelivery: it.ImmediateDelivery,
		CreatedBy:         it.CreatedBy,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
		DeletedAt:         parseTimePtr(it.DeletedAt),
	}
}
