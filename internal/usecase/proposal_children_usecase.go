package usecase

import (
	"context"
	"fmt"
	"strings"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/infrastructure/logger"
	"concessionaria_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// childUseCase validates a child item before handing it to its repository.
type childUseCase[T any] struct {
	repo     interfaces.IChildRepository[T]
	validate func(item T) (T, error)
}

func (u childUseCase[T]) List(ctx context.Context, proposalID string) ([]T, error) {
	return u.repo.ListByProposalID(ctx, proposalID)
}

func (u childUseCase[T]) Insert(ctx context.Context, item T) error {
	item, err := u.validate(item)
	if err != nil {
		return err
	}
	return u.repo.Create(ctx, item)
}

func (u childUseCase[T]) Update(ctx context.Context, item T) error {
	item, err := u.validate(item)
	if err != nil {
		return err
	}
	return u.repo.Update(ctx, item)
}

func (u childUseCase[T]) Delete(ctx context.Context, item T) error {
	return u.repo.Delete(ctx, item)
}

// ProposalItemUseCase manages the accessories sold with the vehicle.
type ProposalItemUseCase struct {
	childUseCase[entities.ProposalDetailVehicleItem]
}

func NewProposalItemUseCase(repo interfaces.IProposalItemRepository) *ProposalItemUseCase {
	return &ProposalItemUseCase{childUseCase[entities.ProposalDetailVehicleItem]{repo: repo, validate: validateItem}}
}

func (u *ProposalItemUseCase) Ops() ChildOps[entities.ProposalDetailVehicleItem] {
	return ChildOps[entities.ProposalDetailVehicleItem]{
		Key:    entities.ProposalDetailVehicleItem.Key,
		Same:   entities.ProposalDetailVehicleItem.SameAs,
		Insert: u.Insert,
		Update: u.Update,
		Delete: u.Delete,
	}
}

func validateItem(it entities.ProposalDetailVehicleItem) (entities.ProposalDetailVehicleItem, error) {
	it.ItemID = strings.TrimSpace(it.ItemID)
	if it.ItemID == "" || it.DetailVehicleID == "" || it.Amount.IsNegative() || it.AmountDiscount.IsNegative() {
		return it, ErrInvalidItem
	}
	return it, nil
}

// PaymentStatusApproved is the provider status that pre-approves a payment.
const PaymentStatusApproved = "approved"

// ProposalPaymentUseCase manages the payment conditions of a proposal.
type ProposalPaymentUseCase struct {
	childUseCase[entities.ProposalPayment]
	gateway interfaces.IPaymentGateway
}

func NewProposalPaymentUseCase(repo interfaces.IProposalPaymentRepository, gateway interfaces.IPaymentGateway) *ProposalPaymentUseCase {
	return &ProposalPaymentUseCase{
		childUseCase: childUseCase[entities.ProposalPayment]{repo: repo, validate: validatePayment},
		gateway:      gateway,
	}
}

func (u *ProposalPaymentUseCase) Ops() ChildOps[entities.ProposalPayment] {
	return ChildOps[entities.ProposalPayment]{
		Key:    entities.ProposalPayment.Key,
		Same:   entities.ProposalPayment.SameAs,
		Insert: u.Insert,
		Update: u.Update,
		Delete: u.Delete,
	}
}

// ResolvePreApproval sets PreApproved on payments linked to a provider payment
// from the provider's current status. Other payments are returned unchanged.
func (u *ProposalPaymentUseCase) ResolvePreApproval(ctx context.Context, payments []entities.ProposalPayment) ([]entities.ProposalPayment, error) {
	if u.gateway == nil {
		return payments, nil
	}
	out := make([]entities.ProposalPayment, len(payments))
	for i, p := range payments {
		p.ProviderPaymentID = strings.TrimSpace(p.ProviderPaymentID)
		if p.ProviderPaymentID != "" {
			status, err := u.gateway.GetPaymentStatus(ctx, p.ProviderPaymentID)
			if err != nil {
				return nil, fmt.Errorf("payment %s status: %w", p.ProviderPaymentID, err)
			}
			p.PreApproved = status == PaymentStatusApproved
			logger.L().Debug("[payment][usecase] provider status resolved",
				zap.String("provider_payment_id", p.ProviderPaymentID),
				zap.String("status", status),
			)
		}
		out[i] = p
	}
	return out, nil
}

func validatePayment(p entities.ProposalPayment) (entities.ProposalPayment, error) {
	p.PaymentMethodID = strings.TrimSpace(p.PaymentMethodID)
	if p.PaymentMethodID == "" || p.DetailID == "" || p.Amount.IsNegative() {
		return p, ErrInvalidPayment
	}
	return p, nil
}

// ProposalCommissionUseCase manages partner commissions.
type ProposalCommissionUseCase struct {
	childUseCase[entities.ProposalCommission]
}

func NewProposalCommissionUseCase(repo interfaces.IProposalCommissionRepository) *ProposalCommissionUseCase {
	return &ProposalCommissionUseCase{childUseCase[entities.ProposalCommission]{repo: repo, validate: validateCommission}}
}

func (u *ProposalCommissionUseCase) Ops() ChildOps[entities.ProposalCommission] {
	return ChildOps[entities.ProposalCommission]{
		Key:    entities.ProposalCommission.Key,
		Same:   entities.ProposalCommission.SameAs,
		Insert: u.Insert,
		Update: u.Update,
		Delete: u.Delete,
	}
}

func validateCommission(c entities.ProposalCommission) (entities.ProposalCommission, error) {
	c.PartnerPersonID = strings.TrimSpace(c.PartnerPersonID)
	if c.PartnerPersonID == "" || c.DetailID == "" || !c.Amount.IsPositive() {
		return c, ErrInvalidCommission
	}
	return c, nil
}

// ProposalPersonUseCase manages the client and related-party links.
type ProposalPersonUseCase struct {
	childUseCase[entities.ProposalPerson]
}

func NewProposalPersonUseCase(repo interfaces.IProposalPersonRepository) *ProposalPersonUseCase {
	return &ProposalPersonUseCase{childUseCase[entities.ProposalPerson]{repo: repo, validate: validatePersonLink}}
}

func (u *ProposalPersonUseCase) Ops() ChildOps[entities.ProposalPerson] {
	return ChildOps[entities.ProposalPerson]{
		Key:    entities.ProposalPerson.Key,
		Same:   entities.ProposalPerson.SameAs,
		Insert: u.Insert,
		Update: u.Update,
		Delete: u.Delete,
	}
}

func validatePersonLink(p entities.ProposalPerson) (entities.ProposalPerson, error) {
	p.PersonID = strings.TrimSpace(p.PersonID)
	if p.PersonID == "" {
		return p, ErrInvalidPerson
	}
	switch p.Role {
	case entities.ProposalPersonRoleClient, entities.ProposalPersonRoleRelated:
	default:
		return p, ErrInvalidPerson
	}
	return p, nil
}

// ProposalDocumentUseCase manages document references. Documents are never
// updated in place.
type ProposalDocumentUseCase struct {
	childUseCase[entities.ProposalDocument]
}

func NewProposalDocumentUseCase(repo interfaces.IProposalDocumentRepository) *ProposalDocumentUseCase {
	return &ProposalDocumentUseCase{childUseCase[entities.ProposalDocument]{repo: repo, validate: validateDocument}}
}

func (u *ProposalDocumentUseCase) Ops() ChildOps[entities.ProposalDocument] {
	return ChildOps[entities.ProposalDocument]{
		Key:    entities.ProposalDocument.Key,
		Insert: u.Insert,
		Delete: u.Delete,
	}
}

func validateDocument(d entities.ProposalDocument) (entities.ProposalDocument, error) {
	d.DocumentID = strings.TrimSpace(d.DocumentID)
	if d.DocumentID == "" {
		return d, ErrInvalidDocument
	}
	return d, nil
}
