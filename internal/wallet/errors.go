package wallet

import (
	"errors"
	"fmt"

	"tipcloud/internal/core/domain"
)

// Messages shown to the fan for each failure kind.
const (
	MsgWalletUnavailable = "Bitcoin wallet not available. Please install a compatible wallet extension."
	MsgUserCancelled     = "Transaction was cancelled in the wallet."
)

var (
	// ErrWalletUnavailable means no compatible provider was detected.
	ErrWalletUnavailable = errors.New("wallet unavailable")
	// ErrUserCancelled means the user declined the wallet prompt.
	ErrUserCancelled = errors.New("user cancelled")
	// ErrInvalidRequest means the caller supplied a bad amount or recipient.
	ErrInvalidRequest = errors.New("invalid tip request")
)

// ProviderError carries a provider's own failure message.
type ProviderError struct {
	Provider string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Provider == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err as a ProviderError for the named provider.
func NewProviderError(provider string, err error) *ProviderError {
	msg := "unknown provider error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &ProviderError{Provider: provider, Message: msg, Err: err}
}

// wrapProvider keeps taxonomy errors as they are and tags everything else
// with the provider name.
func wrapProvider(provider string, err error) error {
	var pe *ProviderError
	if errors.Is(err, ErrUserCancelled) || errors.Is(err, ErrWalletUnavailable) || errors.As(err, &pe) {
		return err
	}
	return NewProviderError(provider, err)
}

// KindOf maps an error onto the tip failure taxonomy.
func KindOf(err error) domain.TipErrorKind {
	var pe *ProviderError
	switch {
	case err == nil:
		return domain.TipErrorNone
	case errors.Is(err, ErrInvalidRequest):
		return domain.TipErrorInvalidRequest
	case errors.Is(err, ErrWalletUnavailable):
		return domain.TipErrorWalletUnavailable
	case errors.Is(err, ErrUserCancelled):
		return domain.TipErrorUserCancelled
	case errors.As(err, &pe):
		return domain.TipErrorProvider
	}
	return domain.TipErrorProvider
}

// failed builds the result object for a failed submission.
func failed(err error) domain.TipResult {
	kind := KindOf(err)
	msg := err.Error()
	switch kind {
	case domain.TipErrorWalletUnavailable:
		msg = MsgWalletUnavailable
	case domain.TipErrorUserCancelled:
		msg = MsgUserCancelled
	}
	return domain.TipResult{
		Succeeded:    false,
		ErrorKind:    kind,
		ErrorMessage: msg,
	}
}
