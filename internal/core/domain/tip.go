package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxMemoBytes is the largest memo a Stacks transfer can carry.
const MaxMemoBytes = 34

// DefaultTipAmount is preselected in the tip dialog.
const DefaultTipAmount int64 = 1000

// PresetTipAmounts are the quick-pick amounts offered to fans, in satoshis.
var PresetTipAmounts = []int64{100, 500, 1000, 5000, 10000}

var (
	errEmptyRecipient = errors.New("recipient address is required")
	errAmount         = errors.New("amount must be a positive number of satoshis")
	errMemoTooLong    = errors.New("memo must be at most 34 bytes")
)

// TipErrorKind classifies a failed tip submission.
type TipErrorKind string

const (
	TipErrorNone              TipErrorKind = ""
	TipErrorInvalidRequest    TipErrorKind = "INVALID_REQUEST"
	TipErrorWalletUnavailable TipErrorKind = "WALLET_UNAVAILABLE"
	TipErrorUserCancelled     TipErrorKind = "USER_CANCELLED"
	TipErrorProvider          TipErrorKind = "PROVIDER_ERROR"
)

// TipRequest is built immediately before a submission and never persisted.
type TipRequest struct {
	RecipientAddress string
	AmountSatoshis   int64
	Memo             string
}

// Validate checks the request invariants.
func (r TipRequest) Validate() error {
	if strings.TrimSpace(r.RecipientAddress) == "" {
		return errEmptyRecipient
	}
	if r.AmountSatoshis <= 0 {
		return errAmount
	}
	if len(r.Memo) > MaxMemoBytes {
		return errMemoTooLong
	}
	return nil
}

// TipResult is the outcome of one submission attempt.
type TipResult struct {
	Succeeded     bool         `json:"succeeded"`
	TransactionID string       `json:"transaction_id,omitempty"`
	ErrorKind     TipErrorKind `json:"error_kind,omitempty"`
	ErrorMessage  string       `json:"error_message,omitempty"`
}

// TipStatus is the recorded outcome of a tip.
type TipStatus string

const (
	TipStatusSuccess TipStatus = "SUCCESS"
	TipStatusFailed  TipStatus = "FAILED"
)

// Tip is a ledger entry for one submission attempt.
type Tip struct {
	ID               uuid.UUID    `json:"id"`
	DJID             string       `json:"dj_id"`
	SenderAddress    string       `json:"sender_address,omitempty"`
	RecipientAddress string       `json:"recipient_address"`
	AmountSats       int64        `json:"amount_sats"`
	Memo             string       `json:"memo,omitempty"`
	TransactionID    *string      `json:"transaction_id,omitempty"`
	Status           TipStatus    `json:"status"`
	ErrorKind        TipErrorKind `json:"error_kind,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}

// TipStats aggregates successful tips for a DJ.
type TipStats struct {
	Count     int64 `json:"count"`
	TotalSats int64 `json:"total_sats"`
}

// BuildTipGuardKey scopes the in-flight submission guard.
func BuildTipGuardKey(djID string) string {
	return "dj:" + djID
}
