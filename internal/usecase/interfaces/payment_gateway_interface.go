package interfaces

import "context"

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Proposals use it to check whether a down payment captured by the provider
// was approved, which pre-approves the related payment condition.
type IPaymentGateway interface {
	GetPaymentStatus(ctx context.Context, providerPaymentID string) (providerStatus string, err error)
}
