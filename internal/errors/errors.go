// Package errors defines the domain error values shared across services.
// Every failure carries a Kind so callers can decide retry-ability by
// matching on it instead of inspecting messages.
package errors

// Kind classifies a domain error per the settlement failure taxonomy.
type Kind string

const (
	// KindClient marks malformed or unverifiable input; surfaced as a
	// rejection, no retry implied.
	KindClient Kind = "client"
	// KindNotFound marks an unknown creator, business or handle.
	KindNotFound Kind = "not_found"
	// KindExternal marks a failed call to an external collaborator
	// (payment processor, transfer). Expected to trigger redelivery.
	KindExternal Kind = "external"
	// KindPersistence marks a failed storage write. Fatal.
	KindPersistence Kind = "persistence"
)

// DomainError is a typed application error with a stable code.
type DomainError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

// Is matches two domain errors by code, so wrapped instances created
// with Wrap still compare equal to their sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of a sentinel carrying an underlying cause.
func Wrap(sentinel *DomainError, err error) *DomainError {
	return &DomainError{
		Kind:    sentinel.Kind,
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Err:     err,
	}
}

// KindOf returns the kind of err if it is a DomainError, else KindPersistence.
func KindOf(err error) Kind {
	if de, ok := err.(*DomainError); ok {
		return de.Kind
	}
	return KindPersistence
}
