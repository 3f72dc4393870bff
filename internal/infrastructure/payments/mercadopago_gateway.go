package payments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"concessionaria_xpto/internal/infrastructure/logger"
	"concessionaria_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")

// MercadoPagoGateway reads down payment statuses from Mercado Pago.
//
// In mock mode (PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK) every payment is
// reported as approved, except ids prefixed with "rejected-".
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		logger.L().Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		logger.L().Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.L().Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.L().Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, providerPaymentID string) (string, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return "", ErrInvalidProviderPaymentID
	}

	if g != nil && g.mockMode {
		status := "approved"
		if strings.HasPrefix(providerPaymentID, "rejected-") {
			status = "rejected"
		}
		logger.L().Debug("[payment][gateway] mock status",
			zap.String("provider_payment_id", providerPaymentID),
			zap.String("provider_status", status),
		)
		return status, nil
	}

	if g == nil || g.client == nil {
		logger.L().Error("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidProviderPaymentID, providerPaymentID)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		logger.L().Error("[payment][gateway] sdk get failed", zap.String("provider_payment_id", providerPaymentID), zap.Error(err))
		return "", err
	}
	logger.L().Info("[payment][gateway] status fetched",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", resp.Status),
	)
	return resp.Status, nil
}

func isPaymentGatewayMockEnabled() bool {
	return envFlag("PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK")
}

func envFlag(keys ...string) bool {
	for _, key := range keys {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
