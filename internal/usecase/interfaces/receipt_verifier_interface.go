package interfaces

import (
	"context"
)

// IReceiptVerifier checks a collection receipt against the payment provider
// (e.g. Mercado Pago) before the collection is approved.
//
// verified is false when the provider knows the payment but has not approved
// it. providerStatus is the raw provider status, kept for logs.
type IReceiptVerifier interface {
	VerifyReceipt(ctx context.Context, receiptNumber string) (verified bool, providerStatus string, err error)
}
