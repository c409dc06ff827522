package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	apperr "creditcall/internal/errors"
	"creditcall/internal/money"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"github.com/stripe/stripe-go/v72/webhook"
)

const checkoutCompletedEventType = "checkout.session.completed"

// stripeGateway implements Gateway on the Stripe API. The client is injected
// by the caller; nothing here holds package-level state.
type stripeGateway struct {
	api           *client.API
	signingSecret string
	timeout       time.Duration
}

// NewStripeGateway wraps an injected Stripe client as a settlement Gateway.
func NewStripeGateway(api *client.API, signingSecret string, timeout time.Duration) Gateway {
	if api == nil {
		panic("stripe client is required")
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &stripeGateway{api: api, signingSecret: signingSecret, timeout: timeout}
}

func (g *stripeGateway) VerifyAndDecode(payload []byte, signatureHeader string) (*CheckoutEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, g.signingSecret)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrAuthVerificationFailed, err)
	}

	if event.Type != checkoutCompletedEventType {
		return nil, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, apperr.Wrap(apperr.ErrMissingMetadata, err)
	}
	if session.ID == "" {
		return nil, apperr.ErrMissingMetadata
	}

	businessID := session.Metadata["company_id"]
	if businessID == "" {
		return nil, apperr.ErrMissingMetadata
	}

	decoded := &CheckoutEvent{
		SessionID:  session.ID,
		GrossCents: money.Cents(session.AmountTotal),
		BusinessID: businessID,
		PhoneHash:  session.Metadata["phone_hash"],
	}
	if session.PaymentIntent != nil {
		decoded.PaymentIntentID = session.PaymentIntent.ID
	}
	return decoded, nil
}

func (g *stripeGateway) DeclaredSplit(ctx context.Context, paymentIntentID string) (money.Cents, money.Cents, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	intent, err := g.api.PaymentIntents.Get(paymentIntentID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return 0, 0, apperr.Wrap(apperr.ErrPaymentLookupFailed, err)
	}

	fee := parseCents(intent.Metadata["platform_fee_cents"])
	net := parseCents(intent.Metadata["net_to_business_cents"])
	return fee, net, nil
}

func (g *stripeGateway) Transfer(ctx context.Context, destination string, amount money.Cents, description string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	transfer, err := g.api.Transfers.New(&stripe.TransferParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(int64(amount)),
		Currency:    stripe.String(string(stripe.CurrencyEUR)),
		Destination: stripe.String(destination),
		Description: stripe.String(description),
	})
	if err != nil {
		if isSandboxLimitation(err) {
			return "", apperr.Wrap(apperr.ErrTransferLimitation, err)
		}
		return "", apperr.Wrap(apperr.ErrTransferFailed, err)
	}
	return transfer.ID, nil
}

// isSandboxLimitation matches the transfer rejections Stripe test accounts
// produce when the platform balance cannot fund the payout. In production
// platform fees fund these transfers.
func isSandboxLimitation(err error) bool {
	msg := err.Error()
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		msg = stripeErr.Msg
	}
	return strings.Contains(msg, "insufficient available funds") ||
		strings.Contains(msg, "Invalid source_type")
}

func parseCents(s string) money.Cents {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return money.Cents(n)
}
