package payments

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"pharma_fieldops/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	StatusApproved      = "approved"
	StatusNotApplicable = "not_applicable"
)

// paymentGetter is the part of payment.Client the verifier needs.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoReceiptVerifier treats a collection receipt number as a Mercado
// Pago payment id and accepts it only when the payment is approved upstream.
// Receipts that are not payment ids (anything non-numeric) are accepted
// without a lookup.
type MercadoPagoReceiptVerifier struct {
	client   paymentGetter
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IReceiptVerifier = (*MercadoPagoReceiptVerifier)(nil)

func NewMercadoPagoReceiptVerifier(accessToken string, mockMode bool, log *zap.Logger) (*MercadoPagoReceiptVerifier, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if mockMode {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoReceiptVerifier{mockMode: true, log: log}, nil
	}

	if accessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoReceiptVerifier{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoReceiptVerifier) VerifyReceipt(ctx context.Context, receiptNumber string) (bool, string, error) {
	receiptNumber = strings.TrimSpace(receiptNumber)
	if g != nil && g.mockMode {
		g.log.Debug("[payment][gateway] mock verify", zap.String("receipt", receiptNumber))
		return true, StatusApproved, nil
	}

	id, err := strconv.Atoi(receiptNumber)
	if err != nil || id <= 0 {
		return true, StatusNotApplicable, nil
	}

	if g == nil || g.client == nil {
		return false, "", ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info("[payment][gateway] verify start", zap.Int("provider_payment_id", id))

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		g.log.Error("[payment][gateway] sdk get failed", zap.Int("provider_payment_id", id), zap.Error(err))
		return false, "", err
	}

	g.log.Info("[payment][gateway] verify done",
		zap.Int("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status))
	return resp.Status == StatusApproved, resp.Status, nil
}
