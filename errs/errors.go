// Package errs defines the error taxonomy shared by every synthesis
// component: structural violations, cycle detection, resource exhaustion,
// and configuration errors, as four sentinel kinds usable with errors.Is,
// plus a wrapping *Error carrying the failing operation and cause.
//
// Styled after junjiewwang-perf-analysis/pkg/errors.AppError (code +
// message + wrapped cause, Is/Unwrap support) but keyed on the four error
// kinds the engine actually distinguishes, rather than a free-form code
// string.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a synthesis error into one of the four buckets §7
// describes: structural violation, cycle detected, resource exhaustion,
// or configuration error.
type Kind string

const (
	// KindStructural marks a post-commit AIG invariant violation. Fatal:
	// the caller should abort the pass and preserve the last good state.
	KindStructural Kind = "structural_violation"

	// KindCycle marks a cycle found by the acyclicity check.
	KindCycle Kind = "cycle_detected"

	// KindResourceExhausted marks a locally recoverable overflow: ISOP
	// too large, a node's cut cap hit, or a pool exhausted. The caller
	// rejects the current candidate and moves on.
	KindResourceExhausted Kind = "resource_exhausted"

	// KindConfig marks an invalid parameter or library blob, raised at
	// manager construction with no partial state left behind.
	KindConfig Kind = "config_error"
)

// Sentinel errors usable with errors.Is against any *Error of that kind.
var (
	ErrStructural        = errors.New("errs: structural invariant violated")
	ErrCycle             = errors.New("errs: cycle detected")
	ErrResourceExhausted = errors.New("errs: resource exhausted")
	ErrConfig            = errors.New("errs: invalid configuration")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindStructural:
		return ErrStructural
	case KindCycle:
		return ErrCycle
	case KindResourceExhausted:
		return ErrResourceExhausted
	case KindConfig:
		return ErrConfig
	default:
		return ErrStructural
	}
}

// Error wraps a synthesis failure with its kind, the operation that
// raised it, and an optional underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("aigsynth: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("aigsynth: %s: %s", e.Op, e.Kind)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind, or an *Error
// of the same Kind. This lets callers write errors.Is(err, errs.ErrCycle)
// without caring which operation produced it.
func (e *Error) Is(target error) bool {
	if target == sentinelFor(e.Kind) {
		return true
	}
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// New builds an *Error for op with the given kind and optional cause.
func New(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Err: cause}
}

// Structural wraps cause as a structural-violation error from op.
func Structural(op string, cause error) *Error { return New(KindStructural, op, cause) }

// Cycle wraps cause as a cycle-detected error from op.
func Cycle(op string, cause error) *Error { return New(KindCycle, op, cause) }

// ResourceExhausted wraps cause as a resource-exhaustion error from op.
func ResourceExhausted(op string, cause error) *Error { return New(KindResourceExhausted, op, cause) }

// Config wraps cause as a configuration error from op.
func Config(op string, cause error) *Error { return New(KindConfig, op, cause) }
