package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	apperr "creditcall/internal/errors"
	"creditcall/internal/models"
	"creditcall/internal/money"
	"creditcall/internal/repositories"
	"creditcall/internal/services/ledger"
)

// Service is the settlement orchestrator. On a verified payment event it
// runs idempotency check, debt reconciliation, the external transfer, the
// buyer-credit mutation and the event-recorded commit, in that order. The
// idempotency row is written last so a crash mid-pipeline leaves the event
// eligible for redelivery.
type Service interface {
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*Outcome, error)
	Settle(ctx context.Context, event *CheckoutEvent) (*Outcome, error)
}

// Retries when a concurrent settlement for the same business won the debt
// read-modify-write race.
const maxDebtRetries = 3

type service struct {
	gateway    Gateway
	businesses repositories.BusinessRepository
	ledger     ledger.Service
	events     repositories.WebhookEventRepository
}

// NewService creates a new settlement orchestrator.
func NewService(
	gateway Gateway,
	businesses repositories.BusinessRepository,
	ledgerSvc ledger.Service,
	events repositories.WebhookEventRepository,
) Service {
	if gateway == nil {
		panic("gateway is required")
	}
	if businesses == nil {
		panic("business repository is required")
	}
	if ledgerSvc == nil {
		panic("ledger service is required")
	}
	if events == nil {
		panic("webhook event repository is required")
	}
	return &service{
		gateway:    gateway,
		businesses: businesses,
		ledger:     ledgerSvc,
		events:     events,
	}
}

func (s *service) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*Outcome, error) {
	event, err := s.gateway.VerifyAndDecode(payload, signatureHeader)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return &Outcome{Status: StatusIgnored}, nil
	}
	return s.Settle(ctx, event)
}

func (s *service) Settle(ctx context.Context, ev *CheckoutEvent) (*Outcome, error) {
	eventID := eventIDPrefix + ev.SessionID

	processed, err := s.events.HasBeenProcessed(ctx, eventID)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}
	if processed {
		log.Printf("settlement: event %s already processed, skipping", eventID)
		return &Outcome{Status: StatusAlreadyProcessed, EventID: eventID}, nil
	}

	business, err := s.businesses.GetByID(ctx, ev.BusinessID)
	if err != nil {
		if err == repositories.ErrBusinessNotFound {
			return nil, apperr.ErrBusinessNotFound
		}
		return nil, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}
	if !business.Onboarded() {
		return nil, apperr.ErrBusinessNotFound
	}

	// The split stamped on the payment intent at checkout creation is audit
	// input only; the reconciliation engine's arithmetic is authoritative.
	if ev.PaymentIntentID != "" {
		declaredFee, declaredNet, err := s.gateway.DeclaredSplit(ctx, ev.PaymentIntentID)
		if err != nil {
			return nil, err
		}
		if declaredFee+declaredNet != ev.GrossCents {
			log.Printf("settlement: declared split %d+%d does not reconstruct gross %d for %s",
				declaredFee, declaredNet, ev.GrossCents, eventID)
		}
	}

	rec, err := s.reconcileAndAbsorb(ctx, ev, business.DebtCents)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		EventID:            eventID,
		GrossCents:         rec.GrossCents,
		PlatformFeeCents:   rec.PlatformFeeCents,
		NetToSellerCents:   rec.NetToSellerCents,
		DebtCoveredCents:   rec.DebtCoveredCents,
		RemainingDebtCents: rec.RemainingDebtCents,
	}

	if rec.NetToSellerCents > 0 && rec.DebtCoveredCents == 0 {
		transferID, err := s.gateway.Transfer(ctx, business.StripeAccountID, rec.NetToSellerCents,
			"Top-up balance for company "+ev.BusinessID)
		switch {
		case errors.Is(err, apperr.ErrTransferLimitation):
			log.Printf("settlement: transfer limitation for %s, proceeding without payout: %v", eventID, err)
			outcome.TransferSkipped = true
		case err != nil:
			return nil, err
		default:
			outcome.TransferID = transferID
		}
	}

	// Buyer credit is recorded for the gross amount regardless of whether
	// debt absorption or a transfer occurred.
	if err := s.ledger.UpsertClientWallet(ctx, ev.PhoneHash, ev.BusinessID, ev.GrossCents); err != nil {
		return nil, err
	}

	snippet, _ := json.Marshal(payloadSnippet{
		Type:       checkoutCompletedEventType,
		Amount:     int64(ev.GrossCents),
		BusinessID: ev.BusinessID,
		Fee:        int64(rec.PlatformFeeCents),
		Net:        int64(rec.NetToSellerCents),
		DebtBefore: int64(rec.DebtCoveredCents + rec.RemainingDebtCents),
	})
	err = s.events.MarkProcessed(ctx, &models.WebhookEvent{
		EventID:           eventID,
		Source:            sourcePrefix + ev.SessionID,
		PayloadSnippet:    string(snippet),
		ProcessedAt:       time.Now().UTC(),
		SignatureVerified: true,
	})
	if err != nil {
		if err == repositories.ErrEventAlreadyRecorded {
			// A concurrent delivery finished first; this one is a replay.
			return &Outcome{Status: StatusAlreadyProcessed, EventID: eventID}, nil
		}
		return nil, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	outcome.Status = StatusSettled
	return outcome, nil
}

// reconcileAndAbsorb runs the debt reconciliation and, when debt is owed,
// applies the absorption as a conditional atomic decrement. If a concurrent
// settlement drained the debt first, the reconciliation is recomputed from
// the fresh value.
func (s *service) reconcileAndAbsorb(ctx context.Context, ev *CheckoutEvent, debt money.Cents) (Reconciliation, error) {
	for attempt := 0; ; attempt++ {
		rec := Reconcile(ev.GrossCents, debt)
		if rec.DebtCoveredCents == 0 {
			return rec, nil
		}

		err := s.businesses.AbsorbDebt(ctx, ev.BusinessID, rec.DebtCoveredCents)
		if err == nil {
			log.Printf("settlement: debt updated for %s: %d -> %d",
				ev.BusinessID, debt, rec.RemainingDebtCents)
			return rec, nil
		}
		if err == repositories.ErrInsufficientDebt && attempt < maxDebtRetries {
			business, loadErr := s.businesses.GetByID(ctx, ev.BusinessID)
			if loadErr != nil {
				return Reconciliation{}, apperr.Wrap(apperr.ErrPersistenceFailed, loadErr)
			}
			debt = business.DebtCents
			continue
		}
		return Reconciliation{}, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}
}
