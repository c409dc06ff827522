// Package calls applies the consumption side of the ledger: when a call
// ends, its duration becomes a wallet debit and an auditable record.
package calls

import (
	"context"
	"log"
	"time"

	apperr "creditcall/internal/errors"
	"creditcall/internal/models"
	"creditcall/internal/money"
	"creditcall/internal/repositories"
	"creditcall/internal/services/creators"
	"creditcall/internal/services/ledger"
)

// Result statuses.
const (
	StatusDebited         = "debited"
	StatusAlreadyRecorded = "already_recorded"
)

// CallEnded is the validated call-ended notification.
type CallEnded struct {
	Handle          string
	DurationSeconds int64
	RevenueCents    money.Cents
	CallerHash      string
	TwilioCallSID   string
}

// Result reports what the debit did.
type Result struct {
	Status         string `json:"status"`
	CreatorID      string `json:"creator_id"`
	SecondsDebited int64  `json:"seconds_debited"`
}

type Service interface {
	OnCallEnded(ctx context.Context, event CallEnded) (*Result, error)
}

type service struct {
	resolver creators.Resolver
	callRepo repositories.CallRepository
	ledger   ledger.Service
}

func NewService(resolver creators.Resolver, callRepo repositories.CallRepository, ledgerSvc ledger.Service) Service {
	if resolver == nil {
		panic("creator resolver is required")
	}
	if callRepo == nil {
		panic("call repository is required")
	}
	if ledgerSvc == nil {
		panic("ledger service is required")
	}
	return &service{resolver: resolver, callRepo: callRepo, ledger: ledgerSvc}
}

// OnCallEnded records the call, appends a call_debit transaction of
// -duration and debits the wallet. The three writes are not wrapped in a
// distributed transaction; a crash between them leaves a partially-applied
// state that the next summary recompute corrects. The unique call sid stops
// a replayed notification from debiting twice.
//
// The debit may drive the balance negative; the caller already consumed the
// time, so the ledger records reality and the balance recovers on the next
// top-up.
func (s *service) OnCallEnded(ctx context.Context, event CallEnded) (*Result, error) {
	if event.DurationSeconds <= 0 {
		return nil, apperr.ErrInvalidAmount
	}

	creator, err := s.resolver.ResolveHandle(ctx, event.Handle)
	if err != nil {
		return nil, err
	}

	// Cheap pre-check; the unique index on the call sid remains the
	// authoritative guard for notifications racing past it.
	if exists, err := s.callRepo.ExistsBySID(ctx, event.TwilioCallSID); err == nil && exists {
		log.Printf("calls: call %s already recorded, skipping debit", event.TwilioCallSID)
		return &Result{Status: StatusAlreadyRecorded, CreatorID: creator.ID}, nil
	}

	call := &models.Call{
		CreatorID:       creator.ID,
		DurationSeconds: event.DurationSeconds,
		RevenueCents:    event.RevenueCents,
		CallerHash:      event.CallerHash,
		TwilioCallSID:   event.TwilioCallSID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.callRepo.Create(ctx, call); err != nil {
		if err == repositories.ErrDuplicateRecord {
			log.Printf("calls: call %s already recorded, skipping debit", event.TwilioCallSID)
			return &Result{Status: StatusAlreadyRecorded, CreatorID: creator.ID}, nil
		}
		return nil, apperr.Wrap(apperr.ErrPersistenceFailed, err)
	}

	err = s.ledger.RecordTransaction(ctx, &models.Transaction{
		CreatorID: creator.ID,
		Amount:    -event.DurationSeconds,
		Type:      models.TransactionTypeCallDebit,
		PhoneHash: event.CallerHash,
		Status:    models.TransactionStatusCompleted,
	})
	if err != nil {
		return nil, err
	}

	if err := s.ledger.DebitWallet(ctx, creator.ID, money.Seconds(event.DurationSeconds)); err != nil {
		return nil, err
	}

	log.Printf("calls: debited %d seconds from wallet for creator %s", event.DurationSeconds, event.Handle)
	return &Result{
		Status:         StatusDebited,
		CreatorID:      creator.ID,
		SecondsDebited: event.DurationSeconds,
	}, nil
}
