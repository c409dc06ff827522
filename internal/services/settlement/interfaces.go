package settlement

import (
	"context"

	"creditcall/internal/money"
)

// Gateway abstracts the payment processor calls the orchestrator makes.
// Implementations must bound every call with a timeout; a timeout surfaces
// as the same error kind as the underlying failure.
type Gateway interface {
	// VerifyAndDecode establishes the authenticity of a raw webhook payload
	// and decodes the fields the pipeline consumes. Events of types other
	// than checkout completion come back as (nil, nil) and are ignored.
	VerifyAndDecode(payload []byte, signatureHeader string) (*CheckoutEvent, error)

	// DeclaredSplit retrieves the fee/net split stamped on the payment
	// intent at checkout-session creation.
	DeclaredSplit(ctx context.Context, paymentIntentID string) (fee, net money.Cents, err error)

	// Transfer moves funds to a seller's payout account and returns the
	// processor's transfer reference. A rejection classified as a known
	// test-environment limitation is returned as ErrTransferLimitation.
	Transfer(ctx context.Context, destination string, amount money.Cents, description string) (string, error)
}
