package repository

import (
	"context"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/shopspring/decimal"
)

const (
	defaultProposalDetailsTableName        = "proposal_details"
	defaultProposalDetailVehiclesTableName = "proposal_detail_vehicles"
)

type proposalDetailItem struct {
	ID             string `dynamodbav:"id"`
	ProposalID     string `dynamodbav:"proposal_id"`
	ChannelID      string `dynamodbav:"channel_id"`
	SellerID       string `dynamodbav:"seller_id"`
	InternSellerID string `dynamodbav:"intern_seller_id,omitempty"`
}

// ProposalDetailDynamoRepository persists proposal details.
//
// Table requirements:
//   - PK: id (string)
//   - GSI proposal_id-index: proposal_id (string)
type ProposalDetailDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IProposalDetailRepository = (*ProposalDetailDynamoRepository)(nil)

func NewProposalDetailDynamoRepository(ddb DynamoDBAPI) *ProposalDetailDynamoRepository {
	return &ProposalDetailDynamoRepository{
		table: newDynamoTable(ddb, "PROPOSAL_DETAILS_TABLE", defaultProposalDetailsTableName),
	}
}

func (r *ProposalDetailDynamoRepository) Create(ctx context.Context, d entities.ProposalDetail) (entities.ProposalDetail, error) {
	return d, r.save(ctx, d, writeCreate)
}

func (r *ProposalDetailDynamoRepository) Update(ctx context.Context, d entities.ProposalDetail) (entities.ProposalDetail, error) {
	return d, r.save(ctx, d, writeReplace)
}

func (r *ProposalDetailDynamoRepository) save(ctx context.Context, d entities.ProposalDetail, mode writeMode) error {
	av, err := attributevalue.MarshalMap(proposalDetailItem(d))
	if err != nil {
		return err
	}
	return r.table.put(ctx, d.ID, av, mode)
}

func (r *ProposalDetailDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.ProposalDetail, error) {
	raw, err := r.table.queryEq(ctx, proposalIDIndex, attrProposalID, proposalID)
	if err != nil || len(raw) == 0 {
		return entities.ProposalDetail{}, err
	}
	var it proposalDetailItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.ProposalDetail{}, err
	}
	return entities.ProposalDetail(it), nil
}

type proposalDetailVehicleItem struct {
	ID                    string `dynamodbav:"id"`
	ProposalID            string `dynamodbav:"proposal_id"`
	DetailID              string `dynamodbav:"detail_id"`
	VehicleID             string `dynamodbav:"vehicle_id,omitempty"`
	FutureDelivery        bool   `dynamodbav:"future_delivery"`
	ProductPriceID        string `dynamodbav:"product_price_id"`
	ProductPrice          string `dynamodbav:"product_price"`
	OverPrice             string `dynamodbav:"over_price"`
	PriceDiscountAmount   string `dynamodbav:"price_discount_amount"`
	ProductAmountDiscount string `dynamodbav:"product_amount_discount"`
	AgreedTermDays        int    `dynamodbav:"agreed_term_days"`
}

// ProposalDetailVehicleDynamoRepository persists the vehicle terms of proposals.
//
// Table requirements:
//   - PK: id (string)
//   - GSI proposal_id-index: proposal_id (string)
type ProposalDetailVehicleDynamoRepository struct {
	table dynamoTable
}

var _ interfaces.IProposalDetailVehicleRepository = (*ProposalDetailVehicleDynamoRepository)(nil)

func NewProposalDetailVehicleDynamoRepository(ddb DynamoDBAPI) *ProposalDetailVehicleDynamoRepository {
	return &ProposalDetailVehicleDynamoRepository{
		table: newDynamoTable(ddb, "PROPOSAL_DETAIL_VEHICLES_TABLE", defaultProposalDetailVehiclesTableName),
	}
}

func (r *ProposalDetailVehicleDynamoRepository) Create(ctx context.Context, v entities.ProposalDetailVehicle) (entities.ProposalDetailVehicle, error) {
	return v, r.save(ctx, v, writeCreate)
}

func (r *ProposalDetailVehicleDynamoRepository) Update(ctx context.Context, v entities.ProposalDetailVehicle) (entities.ProposalDetailVehicle, error) {
	return v, r.save(ctx, v, writeReplace)
}

func (r *ProposalDetailVehicleDynamoRepository) save(ctx context.Context, v entities.ProposalDetailVehicle, mode writeMode) error {
	av, err := attributevalue.MarshalMap(toProposalDetailVehicleItem(v))
	if err != nil {
		return err
	}
	return r.table.put(ctx, v.ID, av, mode)
}

func (r *ProposalDetailVehicleDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.ProposalDetailVehicle, error) {
	raw, err := r.table.queryEq(ctx, proposalIDIndex, attrProposalID, proposalID)
	if err != nil || len(raw) == 0 {
		return entities.ProposalDetailVehicle{}, err
	}
	var it proposalDetailVehicleItem
	if err := attributevalue.UnmarshalMap(raw[0], &it); err != nil {
		return entities.ProposalDetailVehicle{}, err
	}
	return fromProposalDetailVehicleItem(it), nil
}

func toProposalDetailVehicleItem(v entities.ProposalDetailVehicle) proposalDetailVehicleItem {
	return proposalDetailVehicleItem{
		ID:                    v.ID,
		ProposalID:            v.ProposalID,
		DetailID:              v.DetailID,
		VehicleID:             v.VehicleID,
		FutureDelivery:        v.FutureDelivery,
		ProductPriceID:        v.ProductPriceID,
		ProductPrice:          v.ProductPrice.String(),
		OverPrice:             v.OverPrice.String(),
		PriceDiscountAmount:   v.PriceDiscountAmount.String(),
		ProductAmountDiscount: v.ProductAmountDiscount.String(),
		AgreedTermDays:        v.AgreedTermDays,
	}
}

func fromProposalDetailVehicleItem(it proposalDetailVehicleItem) entities.ProposalDetailVehicle {
	return entities.ProposalDetailVehicle{
		ID:                    it.ID,
		ProposalID:            it.ProposalID,
		DetailID:              it.DetailID,
		VehicleID:             it.VehicleID,
		FutureDelivery:        it.FutureDelivery,
		ProductPriceID:        it.ProductPriceID,
		ProductPrice:          parseDecimal(it.ProductPrice),
		OverPrice:             parseDecimal(it.OverPrice),
		PriceDiscountAmount:   parseDecimal(it.PriceDiscountAmount),
		ProductAmountDiscount: parseDecimal(it.ProductAmountDiscount),
		AgreedTermDays:        it.AgreedTermDays,
	}
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
