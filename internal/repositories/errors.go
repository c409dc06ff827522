package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound     = errors.New("business not found")
	ErrCreatorNotFound      = errors.New("creator not found")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateRecord      = errors.New("duplicate record")
	ErrInsufficientDebt     = errors.New("debt below requested absorption")
	ErrEventAlreadyRecorded = errors.New("webhook event already recorded")
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a uniqueness-constraint rejection
// from the storage layer. The idempotency ledger and the call-sid guard rely
// on this classification to turn a duplicate insert into a no-op. The gorm
// postgres driver speaks pgx, so the pgconn error is the one seen in
// practice; pq and the gorm translation are matched as well for connections
// established through either path.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
