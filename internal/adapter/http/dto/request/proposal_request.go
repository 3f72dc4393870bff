package request

import (
	"errors"
	"strings"

	"concessionaria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
	ErrInvalidPersonRole     = errors.New("invalid person role")
)

type ProposalDetailRequest struct {
	ChannelID      string `json:"channel_id" binding:"required"`
	SellerID       string `json:"seller_id" binding:"required"`
	InternSellerID string `json:"intern_seller_id"`
}

type ProposalDetailVehicleRequest struct {
	VehicleID             string          `json:"vehicle_id"`
	FutureDelivery        bool            `json:"future_delivery"`
	ProductPriceID        string          `json:"product_price_id" binding:"required"`
	ProductPrice          decimal.Decimal `json:"product_price"`
	OverPrice             decimal.Decimal `json:"over_price"`
	PriceDiscountAmount   decimal.Decimal `json:"price_discount_amount"`
	ProductAmountDiscount decimal.Decimal `json:"product_amount_discount"`
	AgreedTermDays        int             `json:"agreed_term_days"`
}

type ProposalItemRequest struct {
	ItemID         string          `json:"item_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	AmountDiscount decimal.Decimal `json:"amount_discount"`
}

type ProposalPaymentRequest struct {
	PaymentMethodID   string          `json:"payment_method_id" binding:"required"`
	PaymentRuleID     string          `json:"payment_rule_id"`
	Amount            decimal.Decimal `json:"amount"`
	PreApproved       bool            `json:"pre_approved"`
	ProviderPaymentID string          `json:"provider_payment_id"`
}

type ProposalCommissionRequest struct {
	PartnerPersonID string          `json:"partner_person_id" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
}

type AddressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

type PersonRequest struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Classification string          `json:"classification"`
	CPF            *string         `json:"cpf"`
	CNPJ           *string         `json:"cnpj"`
	Address        *AddressRequest `json:"address"`
}

// ProposalPersonRequest links a person to the proposal. Either PersonID or a
// Person payload must be sent; the payload is saved before the link.
type ProposalPersonRequest struct {
	PersonID string         `json:"person_id"`
	Role     string         `json:"role" binding:"required"`
	Person   *PersonRequest `json:"person"`
}

type ProposalDocumentRequest struct {
	DocumentID string `json:"document_id" binding:"required"`
	Name       string `json:"name"`
}

type SalesOrderRequest struct {
	Classification string `json:"classification"`
}

// ProposalRequest is the full aggregate submitted on create and update.
//
// Num and Version are only meaningful on create, to open a new version of an
// existing proposal number. Status is only meaningful on update.
type ProposalRequest struct {
	LeadID            string                       `json:"lead_id"`
	Status            string                       `json:"status"`
	Num               int64                        `json:"num"`
	Version           int                          `json:"version"`
	ImmediateDelivery bool                         `json:"immediate_delivery"`
	Detail            ProposalDetailRequest        `json:"detail"`
	DetailVehicle     ProposalDetailVehicleRequest `json:"detail_vehicle"`
	Items             []ProposalItemRequest        `json:"items" binding:"dive"`
	Payments          []ProposalPaymentRequest     `json:"payments" binding:"dive"`
	Commissions       []ProposalCommissionRequest  `json:"commissions" binding:"dive"`
	Persons           []ProposalPersonRequest      `json:"persons" binding:"dive"`
	Documents         []ProposalDocumentRequest    `json:"documents" binding:"dive"`
	SalesOrder        *SalesOrderRequest           `json:"sales_order"`
}

// ToEntity maps the request into a proposal aggregate. Ownership ids are left
// empty; the use case wires them.
func (r ProposalRequest) ToEntity() (entities.Proposal, error) {
	status := entities.ProposalStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
	if status != "" && !status.IsValid() {
		return entities.Proposal{}, ErrInvalidProposalStatus
	}

	p := entities.Proposal{
		LeadID:            strings.TrimSpace(r.LeadID),
		Status:            status,
		Num:               r.Num,
		Version:           r.Version,
		ImmediateDelivery: r.ImmediateDelivery,
		Detail: &entities.ProposalDetail{
			ChannelID:      strings.TrimSpace(r.Detail.ChannelID),
			SellerID:       strings.TrimSpace(r.Detail.SellerID),
			InternSellerID: strings.TrimSpace(r.Detail.InternSellerID),
		},
		DetailVehicle: &entities.ProposalDetailVehicle{
			VehicleID:             strings.TrimSpace(r.DetailVehicle.VehicleID),
			FutureDelivery:        r.DetailVehicle.FutureDelivery,
			ProductPriceID:        strings.TrimSpace(r.DetailVehicle.ProductPriceID),
			ProductPrice:          r.DetailVehicle.ProductPrice,
			OverPrice:             r.DetailVehicle.OverPrice,
			PriceDiscountAmount:   r.DetailVehicle.PriceDiscountAmount,
			ProductAmountDiscount: r.DetailVehicle.ProductAmountDiscount,
			AgreedTermDays:        r.DetailVehicle.AgreedTermDays,
		},
	}

	for _, it := range r.Items {
		p.Items = append(p.Items, entities.ProposalDetailVehicleItem{
			ItemID:         strings.TrimSpace(it.ItemID),
			Amount:         it.Amount,
			AmountDiscount: it.AmountDiscount,
		})
	}
	for _, pay := range r.Payments {
		p.Payments = append(p.Payments, entities.ProposalPayment{
			PaymentMethodID:   strings.TrimSpace(pay.PaymentMethodID),
			PaymentRuleID:     strings.TrimSpace(pay.PaymentRuleID),
			Amount:            pay.Amount,
			PreApproved:       pay.PreApproved,
			ProviderPaymentID: strings.TrimSpace(pay.ProviderPaymentID),
		})
	}
	for _, c := range r.Commissions {
		p.Commissions = append(p.Commissions, entities.ProposalCommission{
			PartnerPersonID: strings.TrimSpace(c.PartnerPersonID),
			Amount:          c.Amount,
		})
	}
	for _, link := range r.Persons {
		role := entities.ProposalPersonRole(strings.ToUpper(strings.TrimSpace(link.Role)))
		if role != entities.ProposalPersonRoleClient && role != entities.ProposalPersonRoleRelated {
			return entities.Proposal{}, ErrInvalidPersonRole
		}
		pp := entities.ProposalPerson{PersonID: strings.TrimSpace(link.PersonID), Role: role}
		if link.Person != nil {
			person := link.Person.toEntity()
			if person.ID == "" {
				person.ID = pp.PersonID
			}
			pp.Person = &person
		}
		p.Persons = append(p.Persons, pp)
	}
	for _, d := range r.Documents {
		p.Documents = append(p.Documents, entities.ProposalDocument{
			DocumentID: strings.TrimSpace(d.DocumentID),
			Name:       d.Name,
		})
	}
	if r.SalesOrder != nil {
		p.SalesOrder = &entities.SalesOrder{Classification: strings.TrimSpace(r.SalesOrder.Classification)}
	}
	return p, nil
}

func (r PersonRequest) toEntity() entities.Person {
	p := entities.Person{
		ID:             strings.TrimSpace(r.ID),
		Name:           r.Name,
		Classification: entities.PersonClassification(strings.ToUpper(strings.TrimSpace(r.Classification))),
		CPF:            r.CPF,
		CNPJ:           r.CNPJ,
	}
	if r.Address != nil {
		a := entities.Address(*r.Address)
		p.Address = &a
	}
	return p
}

// ProposalSearchRequest is bound from the query string of the listing route.
type ProposalSearchRequest struct {
	Status         string `form:"status"`
	SellerID       string `form:"seller_id"`
	LeadID         string `form:"lead_id"`
	ProposalNumber string `form:"proposal_number"`
}

func (r ProposalSearchRequest) ToFilter() (entities.ProposalFilter, error) {
	status := entities.ProposalStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
	if status != "" && !status.IsValid() {
		return entities.ProposalFilter{}, ErrInvalidProposalStatus
	}
	return entities.ProposalFilter{
		Status:         status,
		SellerID:       strings.TrimSpace(r.SellerID),
		LeadID:         strings.TrimSpace(r.LeadID),
		ProposalNumber: strings.TrimSpace(r.ProposalNumber),
	}, nil
}
