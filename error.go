package atmxgo

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientCardFunds    = errors.New("not enough money on your card")
	ErrInsufficientDepositFunds = errors.New("not enough money on your deposit")
	ErrInvalidCredentials       = errors.New("invalid card number or PIN")
	ErrInvalidPhone             = errors.New("invalid phone number")
)

// ErrBadRequest is returned for requests or configuration that cannot be
// interpreted at all. It never reaches the presenter.
type ErrBadRequest struct {
	Fields map[string]string
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

// ErrorKey maps an outcome error onto its fixed message key.
func ErrorKey(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientCardFunds):
		return "insufficient-card-funds"
	case errors.Is(err, ErrInsufficientDepositFunds):
		return "insufficient-deposit-funds"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid-credentials"
	case errors.Is(err, ErrInvalidPhone):
		return "invalid-phone-number"
	}
	return ""
}
