package entities

import "github.com/shopspring/decimal"

// ProposalDetail holds the commercial context of a proposal.
// There is exactly one detail per saved proposal.
type ProposalDetail struct {
	ID             string `json:"id"`
	ProposalID     string `json:"proposal_id"`
	ChannelID      string `json:"channel_id"`
	SellerID       string `json:"seller_id"`
	InternSellerID string `json:"intern_seller_id,omitempty"`
}

// ProposalDetailVehicle holds the vehicle being sold and its price/discount terms.
//
// VehicleID is empty when FutureDelivery is true (vehicle not yet allocated).
type ProposalDetailVehicle struct {
	ID                    string          `json:"id"`
	ProposalID            string          `json:"proposal_id"`
	DetailID              string          `json:"detail_id"`
	VehicleID             string          `json:"vehicle_id,omitempty"`
	FutureDelivery        bool            `json:"future_delivery"`
	ProductPriceID        string          `json:"product_price_id"`
	ProductPrice          decimal.Decimal `json:"product_price"`
	OverPrice             decimal.Decimal `json:"over_price"`
	PriceDiscountAmount   decimal.Decimal `json:"price_discount_amount"`
	ProductAmountDiscount decimal.Decimal `json:"product_amount_discount"`
	AgreedTermDays        int             `json:"agreed_term_days"`
}
