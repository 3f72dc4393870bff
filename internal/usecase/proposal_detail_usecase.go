package usecase

import (
	"context"
	"strings"

	"concessionaria_xpto/internal/domain/entities"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ProposalDetailUseCase keeps the single commercial detail of a proposal.
type ProposalDetailUseCase struct {
	repo     interfaces.IProposalDetailRepository
	channels interfaces.IChannelService
	sellers  interfaces.ISellerService
}

func NewProposalDetailUseCase(repo interfaces.IProposalDetailRepository, channels interfaces.IChannelService, sellers interfaces.ISellerService) *ProposalDetailUseCase {
	return &ProposalDetailUseCase{repo: repo, channels: channels, sellers: sellers}
}

// Save creates the detail on first save and updates it afterwards.
// An unchanged detail is not written again.
func (u *ProposalDetailUseCase) Save(ctx context.Context, d entities.ProposalDetail) (entities.ProposalDetail, error) {
	d.ChannelID = strings.TrimSpace(d.ChannelID)
	d.SellerID = strings.TrimSpace(d.SellerID)
	d.InternSellerID = strings.TrimSpace(d.InternSellerID)
	if d.ChannelID == "" {
		return entities.ProposalDetail{}, ErrProposalChannelRequired
	}
	if d.SellerID == "" {
		return entities.ProposalDetail{}, ErrProposalSellerRequired
	}

	channel, err := u.channels.GetByID(ctx, d.ChannelID)
	if err != nil {
		return entities.ProposalDetail{}, err
	}
	if channel.ID == "" {
		return entities.ProposalDetail{}, ErrProposalChannelRequired
	}
	seller, err := u.sellers.GetByID(ctx, d.SellerID)
	if err != nil {
		return entities.ProposalDetail{}, err
	}
	if seller.ID == "" {
		return entities.ProposalDetail{}, ErrProposalSellerRequired
	}

	existing, err := u.repo.GetByProposalID(ctx, d.ProposalID)
	if err != nil {
		return entities.ProposalDetail{}, err
	}
	if existing.ID == "" {
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		return u.repo.Create(ctx, d)
	}
	d.ID = existing.ID
	if d == existing {
		return existing, nil
	}
	return u.repo.Update(ctx, d)
}

// ProposalDetailVehicleUseCase keeps the vehicle and price terms of a proposal.
type ProposalDetailVehicleUseCase struct {
	repo interfaces.IProposalDetailVehicleRepository
}

func NewProposalDetailVehicleUseCase(repo interfaces.IProposalDetailVehicleRepository) *ProposalDetailVehicleUseCase {
	return &ProposalDetailVehicleUseCase{repo: repo}
}

func (u *ProposalDetailVehicleUseCase) Save(ctx context.Context, v entities.ProposalDetailVehicle) (entities.ProposalDetailVehicle, error) {
	v.VehicleID = strings.TrimSpace(v.VehicleID)
	v.ProductPriceID = strings.TrimSpace(v.ProductPriceID)
	if v.FutureDelivery {
		v.VehicleID = ""
	} else if v.VehicleID == "" {
		return entities.ProposalDetailVehicle{}, ErrProposalVehicleRequired
	}
	if v.ProductPriceID == "" {
		return entities.ProposalDetailVehicle{}, ErrProposalPriceRequired
	}
	if v.ProductPrice.IsNegative() || v.OverPrice.IsNegative() ||
		v.PriceDiscountAmount.IsNegative() || v.ProductAmountDiscount.IsNegative() || v.AgreedTermDays < 0 {
		return entities.ProposalDetailVehicle{}, ErrProposalInvalidDiscount
	}

	existing, err := u.repo.GetByProposalID(ctx, v.ProposalID)
	if err != nil {
		return entities.ProposalDetailVehicle{}, err
	}
	if existing.ID == "" {
		if v.ID == "" {
			v.ID = uuid.NewString()
		}
		return u.repo.Create(ctx, v)
	}
	v.ID = existing.ID
	if sameDetailVehicle(v, existing) {
		return existing, nil
	}
	return u.repo.Update(ctx, v)
}

func sameDetailVehicle(a, b entities.ProposalDetailVehicle) bool {
	return a.ID == b.ID &&
		a.ProposalID == b.ProposalID &&
		a.DetailID == b.DetailID &&
		a.VehicleID == b.VehicleID &&
		a.FutureDelivery == b.FutureDelivery &&
		a.ProductPriceID == b.ProductPriceID &&
		a.ProductPrice.Equal(b.ProductPrice) &&
		a.OverPrice.Equal(b.OverPrice) &&
		a.PriceDiscountAmount.Equal(b.PriceDiscountAmount) &&
		a.ProductAmountDiscount.Equal(b.ProductAmountDiscount) &&
		a.AgreedTermDays == b.AgreedTermDays
}
