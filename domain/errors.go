package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrNotConnected will throw if an operation requires a connected wallet
	ErrNotConnected = errors.New("wallet is not connected")
)

// GetStatusCode returns status code given error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, ErrInternalServerError):
		return http.StatusInternalServerError
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadParamInput), errors.As(err, &InvalidSideError{}),
		errors.As(err, &InvalidAmountError{}), errors.As(err, &PrecisionExceededError{}):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotConnected):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// InvalidSideError is returned when a side string is neither sell nor buy.
type InvalidSideError struct {
	Side string
}

func (e InvalidSideError) Error() string {
	return fmt.Sprintf("invalid side (%s), must be sell or buy", e.Side)
}

// InvalidAmountError is returned when an amount string is not a decimal number.
type InvalidAmountError struct {
	Amount string
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount (%s)", e.Amount)
}

// PrecisionExceededError is returned when an amount carries more fractional
// digits than the asset allows.
type PrecisionExceededError struct {
	Amount    string
	Precision int
}

func (e PrecisionExceededError) Error() string {
	return fmt.Sprintf("amount (%s) exceeds asset precision (%d)", e.Amount, e.Precision)
}

// AssetMetadataNotFoundError is returned when the registry has no entry for
// an asset.
type AssetMetadataNotFoundError struct {
	AssetID AssetID
}

func (e AssetMetadataNotFoundError) Error() string {
	return fmt.Sprintf("metadata for asset (%s) is not found", e.AssetID)
}

// PriceNotFoundError is returned when the price source has no quote for an
// asset.
type PriceNotFoundError struct {
	AssetID AssetID
}

func (e PriceNotFoundError) Error() string {
	return fmt.Sprintf("price for asset (%s) is not found", e.AssetID)
}

// SubmitError is a structured failure reason returned by the node on
// estimate or submit.
type SubmitError struct {
	Code   string `json:"code"`
	Reason string `json:"message"`
}

func (e SubmitError) Error() string {
	return fmt.Sprintf("submission failed, code (%s): %s", e.Code, e.Reason)
}

const (
	// SubmitCodeUserDeclined is reported when the user closed the wallet
	// prompt without signing.
	SubmitCodeUserDeclined = "user_declined"
	// SubmitCodeScriptReverted is reported when the swap script reverted
	// on chain.
	SubmitCodeScriptReverted = "script_reverted"
)

// IsUserDeclined reports whether the failure is the user declining to sign.
// Such failures are silent: the engine returns to the pre-submission view
// without surfacing an error.
func IsUserDeclined(err error) bool {
	var submitErr SubmitError
	if errors.As(err, &submitErr) {
		return submitErr.Code == SubmitCodeUserDeclined
	}
	return false
}

// IsSlippageViolation reports whether the failure reason indicates that the
// executed price fell outside the tolerated slippage bounds.
func IsSlippageViolation(err error) bool {
	var submitErr SubmitError
	if !errors.As(err, &submitErr) {
		return false
	}
	if submitErr.Code != SubmitCodeScriptReverted {
		return false
	}
	return strings.Contains(submitErr.Reason, "Insufficient output amount") ||
		strings.Contains(submitErr.Reason, "Exceeding input amount")
}
