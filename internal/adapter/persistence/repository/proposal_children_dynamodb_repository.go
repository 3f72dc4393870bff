package repository

import (
	"context"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// Child collection tables all share the same layout:
//   - PK: id (string), the child's Key()
//   - GSI proposal_id-index: proposal_id (string)
const (
	defaultProposalItemsTableName       = "proposal_items"
	defaultProposalPaymentsTableName    = "proposal_payments"
	defaultProposalCommissionsTableName = "proposal_commissions"
	defaultProposalPersonsTableName     = "proposal_persons"
	defaultProposalDocumentsTableName   = "proposal_documents"
)

// ChildDynamoRepository persists one proposal child collection. T is the
// entity and I its DynamoDB item shape.
type ChildDynamoRepository[T any, I any] struct {
	table    dynamoTable
	key      func(T) string
	toItem   func(T) I
	fromItem func(I) T
}

func (r *ChildDynamoRepository[T, I]) ListByProposalID(ctx context.Context, proposalID string) ([]T, error) {
	raw, err := r.table.queryEq(ctx, proposalIDIndex, attrProposalID, proposalID)
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll[I](raw)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, r.fromItem(it))
	}
	return out, nil
}

func (r *ChildDynamoRepository[T, I]) Create(ctx context.Context, item T) error {
	return r.save(ctx, item, writeCreate)
}

func (r *ChildDynamoRepository[T, I]) Update(ctx context.Context, item T) error {
	return r.save(ctx, item, writeReplace)
}

func (r *ChildDynamoRepository[T, I]) Delete(ctx context.Context, item T) error {
	return r.table.delete(ctx, r.key(item))
}

func (r *ChildDynamoRepository[T, I]) save(ctx context.Context, item T, mode writeMode) error {
	av, err := attributevalue.MarshalMap(r.toItem(item))
	if err != nil {
		return err
	}
	return r.table.put(ctx, r.key(item), av, mode)
}

type proposalItemItem struct {
	ID              string `dynamodbav:"id"`
	ProposalID      string `dynamodbav:"proposal_id"`
	DetailVehicleID string `dynamodbav:"detail_vehicle_id"`
	ItemID          string `dynamodbav:"item_id"`
	Amount          string `dynamodbav:"amount"`
	AmountDiscount  string `dynamodbav:"amount_discount"`
}

func NewProposalItemDynamoRepository(ddb DynamoDBAPI) *ChildDynamoRepository[entities.ProposalDetailVehicleItem, proposalItemItem] {
	return &ChildDynamoRepository[entities.ProposalDetailVehicleItem, proposalItemItem]{
		table: newDynamoTable(ddb, "PROPOSAL_ITEMS_TABLE", defaultProposalItemsTableName),
		key:   entities.ProposalDetailVehicleItem.Key,
		toItem: func(i entities.ProposalDetailVehicleItem) proposalItemItem {
			return proposalItemItem{
				ID:              i.Key(),
				ProposalID:      i.ProposalID,
				DetailVehicleID: i.DetailVehicleID,
				ItemID:          i.ItemID,
				Amount:          i.Amount.String(),
				AmountDiscount:  i.AmountDiscount.String(),
			}
		},
		fromItem: func(it proposalItemItem) entities.ProposalDetailVehicleItem {
			return entities.ProposalDetailVehicleItem{
				ProposalID:      it.ProposalID,
				DetailVehicleID: it.DetailVehicleID,
				ItemID:          it.ItemID,
				Amount:          parseDecimal(it.Amount),
				AmountDiscount:  parseDecimal(it.AmountDiscount),
			}
		},
	}
}

type proposalPaymentItem struct {
	ID                string `dynamodbav:"id"`
	ProposalID        string `dynamodbav:"proposal_id"`
	DetailID          string `dynamodbav:"detail_id"`
	PaymentMethodID   string `dynamodbav:"payment_method_id"`
	PaymentRuleID     string `dynamodbav:"payment_rule_id,omitempty"`
	Amount            string `dynamodbav:"amount"`
	PreApproved       bool   `dynamodbav:"pre_approved"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
}

func NewProposalPaymentDynamoRepository(ddb DynamoDBAPI) *ChildDynamoRepository[entities.ProposalPayment, proposalPaymentItem] {
	return &ChildDynamoRepository[entities.ProposalPayment, proposalPaymentItem]{
		table: newDynamoTable(ddb, "PROPOSAL_PAYMENTS_TABLE", defaultProposalPaymentsTableName),
		key:   entities.ProposalPayment.Key,
		toItem: func(p entities.ProposalPayment) proposalPaymentItem {
			return proposalPaymentItem{
				ID:                p.Key(),
				ProposalID:        p.ProposalID,
				DetailID:          p.DetailID,
				PaymentMethodID:   p.PaymentMethodID,
				PaymentRuleID:     p.PaymentRuleID,
				Amount:            p.Amount.String(),
				PreApproved:       p.PreApproved,
				ProviderPaymentID: p.ProviderPaymentID,
			}
		},
		fromItem: func(it proposalPaymentItem) entities.ProposalPayment {
			return entities.ProposalPayment{
				ProposalID:        it.ProposalID,
				DetailID:          it.DetailID,
				PaymentMethodID:   it.PaymentMethodID,
				PaymentRuleID:     it.PaymentRuleID,
				Amount:            parseDecimal(it.Amount),
				PreApproved:       it.PreApproved,
				ProviderPaymentID: it.ProviderPaymentID,
			}
		},
	}
}

type proposalCommissionItem struct {
	ID              string `dynamodbav:"id"`
	ProposalID      string `dynamodbav:"proposal_id"`
	DetailID        string `dynamodbav:"detail_id"`
	PartnerPersonID string `dynamodbav:"partner_person_id"`
	Amount          string `dynamodbav:"amount"`
}

func NewProposalCommissionDynamoRepository(ddb DynamoDBAPI) *ChildDynamoRepository[entities.ProposalCommission, proposalCommissionItem] {
	return &ChildDynamoRepository[entities.ProposalCommission, proposalCommissionItem]{
		table: newDynamoTable(ddb, "PROPOSAL_COMMISSIONS_TABLE", defaultProposalCommissionsTableName),
		key:   entities.ProposalCommission.Key,
		toItem: func(c entities.ProposalCommission) proposalCommissionItem {
			return proposalCommissionItem{
				ID:              c.Key(),
				ProposalID:      c.ProposalID,
				DetailID:        c.DetailID,
				PartnerPersonID: c.PartnerPersonID,
				Amount:          c.Amount.String(),
			}
		},
		fromItem: func(it proposalCommissionItem) entities.ProposalCommission {
			return entities.ProposalCommission{
				ProposalID:      it.ProposalID,
				DetailID:        it.DetailID,
				PartnerPersonID: it.PartnerPersonID,
				Amount:          parseDecimal(it.Amount),
			}
		},
	}
}

type proposalPersonItem struct {
	ID         string `dynamodbav:"id"`
	ProposalID string `dynamodbav:"proposal_id"`
	PersonID   string `dynamodbav:"person_id"`
	Role       string `dynamodbav:"role"`
}

func NewProposalPersonDynamoRepository(ddb DynamoDBAPI) *ChildDynamoRepository[entities.ProposalPerson, proposalPersonItem] {
	return &ChildDynamoRepository[entities.ProposalPerson, proposalPersonItem]{
		table: newDynamoTable(ddb, "PROPOSAL_PERSONS_TABLE", defaultProposalPersonsTableName),
		key:   entities.ProposalPerson.Key,
		toItem: func(p entities.ProposalPerson) proposalPersonItem {
			return proposalPersonItem{
				ID:         p.Key(),
				ProposalID: p.ProposalID,
				PersonID:   p.PersonID,
				Role:       string(p.Role),
			}
		},
		fromItem: func(it proposalPersonItem) entities.ProposalPerson {
			return entities.ProposalPerson{
				ProposalID: it.ProposalID,
				PersonID:   it.PersonID,
				Role:       entities.ProposalPersonRole(it.Role),
			}
		},
	}
}

type proposalDocumentItem struct {
	ID         string `dynamodbav:"id"`
	ProposalID string `dynamodbav:"proposal_id"`
	DocumentID string `dynamodbav:"document_id"`
	Name       string `dynamodbav:"name,omitempty"`
}

func NewProposalDocumentDynamoRepository(ddb DynamoDBAPI) *ChildDynamoRepository[entities.ProposalDocument, proposalDocumentItem] {
	return &ChildDynamoRepository[entities.ProposalDocument, proposalDocumentItem]{
		table: newDynamoTable(ddb, "PROPOSAL_DOCUMENTS_TABLE", defaultProposalDocumentsTableName),
		key:   entities.ProposalDocument.Key,
		toItem: func(d entities.ProposalDocument) proposalDocumentItem {
			return proposalDocumentItem{
				ID:         d.Key(),
				ProposalID: d.ProposalID,
				DocumentID: d.DocumentID,
				Name:       d.Name,
			}
		},
		fromItem: func(it proposalDocumentItem) entities.ProposalDocument {
			return entities.ProposalDocument{
				ProposalID: it.ProposalID,
				DocumentID: it.DocumentID,
				Name:       it.Name,
			}
		},
	}
}

var (
	_ interfaces.IProposalItemRepository       = (*ChildDynamoRepository[entities.ProposalDetailVehicleItem, proposalItemItem])(nil)
	_ interfaces.IProposalPaymentRepository    = (*ChildDynamoRepository[entities.ProposalPayment, proposalPaymentItem])(nil)
	_ interfaces.IProposalCommissionRepository = (*ChildDynamoRepository[entities.ProposalCommission, proposalCommissionItem])(nil)
	_ interfaces.IProposalPersonRepository     = (*ChildDynamoRepository[entities.ProposalPerson, proposalPersonItem])(nil)
	_ interfaces.IProposalDocumentRepository   = (*ChildDynamoRepository[entities.ProposalDocument, proposalDocumentItem])(nil)
)
