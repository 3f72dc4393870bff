package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Business configuration keys read through IConfigurationProvider.
const (
	ConfigProposalDaysLimit                 = "PROPOSAL_DAYS_LIMIT"
	ConfigProposalInitialCodeLetter         = "PROPOSAL_INITIAL_CODE_LETTER"
	ConfigProposalNumberFixedLetter         = "PROPOSAL_NUMBER_FIXED_LETTER"
	ConfigProposalDiscountApprovalThreshold = "PROPOSAL_DISCOUNT_APPROVAL_THRESHOLD"
)

const defaultProposalDaysLimit = 30

func configInt(ctx context.Context, cfg interfaces.IConfigurationProvider, key string, def int) (int, error) {
	raw, err := cfg.GetValue(ctx, key)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config %s: %w", key, err)
	}
	return v, nil
}

func configDecimal(ctx context.Context, cfg interfaces.IConfigurationProvider, key string, def decimal.Decimal) (decimal.Decimal, error) {
	raw, err := cfg.GetValue(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config %s: %w", key, err)
	}
	return v, nil
}
