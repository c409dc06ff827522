// Package checkout creates payment sessions for buyer top-ups. The fee/net
// split computed here is stamped on the payment intent so settlement can
// audit it later.
package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	apperr "creditcall/internal/errors"
	"creditcall/internal/money"
	"creditcall/internal/repositories"
	"creditcall/internal/utils"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
)

// CreateSessionInput is the validated top-up request.
type CreateSessionInput struct {
	BusinessID  string
	Phone       string
	AmountEuros int64
}

// Session is the created checkout session reference.
type Session struct {
	SessionID string `json:"sessionId"`
}

// Config holds the redirect targets for the hosted payment page.
type Config struct {
	SuccessURL string
	CancelURL  string
	Timeout    time.Duration
}

type Service interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*Session, error)
}

type service struct {
	api        *client.API
	businesses repositories.BusinessRepository
	config     Config
}

func NewService(api *client.API, businesses repositories.BusinessRepository, config Config) Service {
	if api == nil {
		panic("stripe client is required")
	}
	if businesses == nil {
		panic("business repository is required")
	}
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}
	return &service{api: api, businesses: businesses, config: config}
}

func (s *service) CreateSession(ctx context.Context, input CreateSessionInput) (*Session, error) {
	if input.BusinessID == "" || input.Phone == "" || input.AmountEuros <= 0 {
		return nil, ErrInvalidRequest
	}

	business, err := s.businesses.GetByID(ctx, input.BusinessID)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return nil, apperr.ErrBusinessNotFound
		}
		return nil, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	priceID, err := s.findPrice(ctx, fmt.Sprintf("%d credits", input.AmountEuros))
	if err != nil {
		return nil, err
	}

	phoneHash := utils.HashPhone(input.Phone)
	gross := money.EurosToCents(input.AmountEuros)
	fee, net := money.Split(gross)

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"company_id":            business.ID,
				"phone_hash":            phoneHash,
				"gross_amount_cents":    strconv.FormatInt(int64(gross), 10),
				"platform_fee_cents":    strconv.FormatInt(int64(fee), 10),
				"net_to_business_cents": strconv.FormatInt(int64(net), 10),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
	}
	params.AddMetadata("company_id", business.ID)
	params.AddMetadata("phone_hash", phoneHash)

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrPaymentLookupFailed, err)
	}

	return &Session{SessionID: session.ID}, nil
}

// findPrice locates the active price for the credit product matching the
// requested amount.
func (s *service) findPrice(ctx context.Context, productName string) (string, error) {
	productIter := s.api.Products.List(&stripe.ProductListParams{
		ListParams: stripe.ListParams{Context: ctx, Limit: stripe.Int64(100)},
		Active:     stripe.Bool(true),
	})

	var productID string
	for productIter.Next() {
		if p := productIter.Product(); p.Name == productName {
			productID = p.ID
			break
		}
	}
	if err := productIter.Err(); err != nil {
		return "", apperr.Wrap(apperr.ErrPaymentLookupFailed, err)
	}
	if productID == "" {
		return "", ErrProductNotFound
	}

	priceIter := s.api.Prices.List(&stripe.PriceListParams{
		ListParams: stripe.ListParams{Context: ctx, Limit: stripe.Int64(1)},
		Product:    stripe.String(productID),
		Active:     stripe.Bool(true),
	})
	for priceIter.Next() {
		return priceIter.Price().ID, nil
	}
	if err := priceIter.Err(); err != nil {
		return "", apperr.Wrap(apperr.ErrPaymentLookupFailed, err)
	}
	return "", ErrPriceNotFound
}
