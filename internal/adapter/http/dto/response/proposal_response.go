package response

import (
	"time"

	"concessionaria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ProposalDetailResponse struct {
	ID             string `json:"id"`
	ChannelID      string `json:"channel_id"`
	SellerID       string `json:"seller_id"`
	InternSellerID string `json:"intern_seller_id,omitempty"`
}

type ProposalDetailVehicleResponse struct {
	ID                    string          `json:"id"`
	VehicleID             string          `json:"vehicle_id,omitempty"`
	FutureDelivery        bool            `json:"future_delivery"`
	ProductPriceID        string          `json:"product_price_id"`
	ProductPrice          decimal.Decimal `json:"product_price"`
	OverPrice             decimal.Decimal `json:"over_price"`
	PriceDiscountAmount   decimal.Decimal `json:"price_discount_amount"`
	ProductAmountDiscount decimal.Decimal `json:"product_amount_discount"`
	AgreedTermDays        int             `json:"agreed_term_days"`
}

type ProposalItemResponse struct {
	ItemID         string          `json:"item_id"`
	Amount         decimal.Decimal `json:"amount"`
	AmountDiscount decimal.Decimal `json:"amount_discount"`
}

type ProposalPaymentResponse struct {
	PaymentMethodID   string          `json:"payment_method_id"`
	PaymentRuleID     string          `json:"payment_rule_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	PreApproved       bool            `json:"pre_approved"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
}

type ProposalCommissionResponse struct {
	PartnerPersonID string          `json:"partner_person_id"`
	Amount          decimal.Decimal `json:"amount"`
}

type ProposalPersonResponse struct {
	PersonID string           `json:"person_id"`
	Role     string           `json:"role"`
	Person   *entities.Person `json:"person,omitempty"`
}

type ProposalDocumentResponse struct {
	DocumentID string `json:"document_id"`
	Name       string `json:"name,omitempty"`
}

type SalesOrderResponse struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	Classification string `json:"classification,omitempty"`
	IssueKey       string `json:"issue_key,omitempty"`
}

type ProposalResponse struct {
	ID                string                         `json:"id"`
	LeadID            string                         `json:"lead_id,omitempty"`
	Status            string                         `json:"status"`
	Num               int64                          `json:"num"`
	Cod               string                         `json:"cod"`
	ProposalNumber    string                         `json:"proposal_number"`
	Version           int                            `json:"version"`
	ValidityDate      *time.Time                     `json:"validity_date,omitempty"`
	ImmediateDelivery bool                           `json:"immediate_delivery"`
	CreatedBy         string                         `json:"created_by"`
	CreatedAt         time.Time                      `json:"created_at"`
	UpdatedAt         time.Time                      `json:"updated_at"`
	Detail            *ProposalDetailResponse        `json:"detail,omitempty"`
	DetailVehicle     *ProposalDetailVehicleResponse `json:"detail_vehicle,omitempty"`
	Items             []ProposalItemResponse         `json:"items"`
	Payments          []ProposalPaymentResponse      `json:"payments"`
	Commissions       []ProposalCommissionResponse   `json:"commissions"`
	Persons           []ProposalPersonResponse       `json:"persons"`
	Documents         []ProposalDocumentResponse     `json:"documents"`
	SalesOrder        *SalesOrderResponse            `json:"sales_order,omitempty"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	res := ProposalResponse{
		ID:                p.ID,
		LeadID:            p.LeadID,
		Status:            string(p.Status),
		Num:               p.Num,
		Cod:               p.Cod,
		ProposalNumber:    p.ProposalNumber,
		Version:           p.Version,
		ValidityDate:      p.ValidityDate,
		ImmediateDelivery: p.ImmediateDelivery,
		CreatedBy:         p.CreatedBy,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		Items:             make([]ProposalItemResponse, 0, len(p.Items)),
		Payments:          make([]ProposalPaymentResponse, 0, len(p.Payments)),
		Commissions:       make([]ProposalCommissionResponse, 0, len(p.Commissions)),
		Persons:           make([]ProposalPersonResponse, 0, len(p.Persons)),
		Documents:         make([]ProposalDocumentResponse, 0, len(p.Documents)),
	}
	if d := p.Detail; d != nil {
		res.Detail = &ProposalDetailResponse{
			ID:             d.ID,
			ChannelID:      d.ChannelID,
			SellerID:       d.SellerID,
			InternSellerID: d.InternSellerID,
		}
	}
	if v := p.DetailVehicle; v != nil {
		res.DetailVehicle = &ProposalDetailVehicleResponse{
			ID:                    v.ID,
			VehicleID:             v.VehicleID,
			FutureDelivery:        v.FutureDelivery,
			ProductPriceID:        v.ProductPriceID,
			ProductPrice:          v.ProductPrice,
			OverPrice:             v.OverPrice,
			PriceDiscountAmount:   v.PriceDiscountAmount,
			ProductAmountDiscount: v.ProductAmountDiscount,
			AgreedTermDays:        v.AgreedTermDays,
		}
	}
	for _, it := range p.Items {
		res.Items = append(res.Items, ProposalItemResponse{ItemID: it.ItemID, Amount: it.Amount, AmountDiscount: it.AmountDiscount})
	}
	for _, pay := range p.Payments {
		res.Payments = append(res.Payments, ProposalPaymentResponse{
			PaymentMethodID:   pay.PaymentMethodID,
			PaymentRuleID:     pay.PaymentRuleID,
			Amount:            pay.Amount,
			PreApproved:       pay.PreApproved,
			ProviderPaymentID: pay.ProviderPaymentID,
		})
	}
	for _, c := range p.Commissions {
		res.Commissions = append(res.Commissions, ProposalCommissionResponse{PartnerPersonID: c.PartnerPersonID, Amount: c.Amount})
	}
	for _, link := range p.Persons {
		res.Persons = append(res.Persons, ProposalPersonResponse{PersonID: link.PersonID, Role: string(link.Role), Person: link.Person})
	}
	for _, d := range p.Documents {
		res.Documents = append(res.Documents, ProposalDocumentResponse{DocumentID: d.DocumentID, Name: d.Name})
	}
	if o := p.SalesOrder; o != nil {
		res.SalesOrder = &SalesOrderResponse{
			ID:             o.ID,
			Status:         string(o.Status),
			Classification: o.Classification,
			IssueKey:       o.IssueKey,
		}
	}
	return res
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}

type ProposalApprovalResponse struct {
	ProposalID       string          `json:"proposal_id"`
	ProposalNumber   string          `json:"proposal_number"`
	Status           string          `json:"status"`
	SellerID         string          `json:"seller_id"`
	Discount         decimal.Decimal `json:"discount"`
	RequiresApproval bool            `json:"requires_approval"`
	ValidityDate     *time.Time      `json:"validity_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

func FromProposalApprovals(views []entities.ProposalApproval) []ProposalApprovalResponse {
	out := make([]ProposalApprovalResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ProposalApprovalResponse{
			ProposalID:       v.ProposalID,
			ProposalNumber:   v.ProposalNumber,
			Status:           string(v.Status),
			SellerID:         v.SellerID,
			Discount:         v.Discount,
			RequiresApproval: v.RequiresApproval,
			ValidityDate:     v.ValidityDate,
			CreatedAt:        v.CreatedAt,
		})
	}
	return out
}
