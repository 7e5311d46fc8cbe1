package core

import (
	"errors"
	"strconv"
)

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000

	// ErrMalformedAsset asset text can not be parsed
	ErrMalformedAsset ErrorCode = 100100
	// ErrInvalidSymbol symbol code or precision out of range
	ErrInvalidSymbol ErrorCode = 100101
	// ErrInvalidSupply max supply out of range
	ErrInvalidSupply ErrorCode = 100102
	// ErrSymbolAlreadyExists symbol created before
	ErrSymbolAlreadyExists ErrorCode = 100103
	// ErrStatNotFound no stat for symbol
	ErrStatNotFound ErrorCode = 100104
	// ErrUnauthorized missing authority
	ErrUnauthorized ErrorCode = 100105
	// ErrMemoTooLong memo over 256 bytes
	ErrMemoTooLong ErrorCode = 100106
	// ErrNonPositiveQuantity quantity <= 0
	ErrNonPositiveQuantity ErrorCode = 100107
	// ErrSymbolMismatch symbol code mismatch
	ErrSymbolMismatch ErrorCode = 100108
	// ErrInvalidPrecision symbol precision mismatch
	ErrInvalidPrecision ErrorCode = 100109
	// ErrSupplyExceeded quantity exceeds available supply
	ErrSupplyExceeded ErrorCode = 100110
	// ErrSameAccount transfer to self
	ErrSameAccount ErrorCode = 100111
	// ErrRecipientNotFound recipient account does not exist
	ErrRecipientNotFound ErrorCode = 100112
	// ErrTransferLocked token locked by issuer
	ErrTransferLocked ErrorCode = 100113
	// ErrInsufficientBalance overdrawn balance
	ErrInsufficientBalance ErrorCode = 100114
	// ErrAlreadyUnlocked token not locked
	ErrAlreadyUnlocked ErrorCode = 100115
	// ErrOverflow amount overflow
	ErrOverflow ErrorCode = 100116
	// ErrUnderflow amount underflow
	ErrUnderflow ErrorCode = 100117
	// ErrTransferFailed external withdraw transfer failed
	ErrTransferFailed ErrorCode = 100118
	// ErrInvalidAccount malformed account name
	ErrInvalidAccount ErrorCode = 100119
)

var errorMessages = map[ErrorCode]string{
	ErrUnknown:             "unknown error",
	ErrMalformedAsset:      "malformed asset",
	ErrInvalidSymbol:       "invalid symbol name",
	ErrInvalidSupply:       "invalid supply",
	ErrSymbolAlreadyExists: "token with symbol already exists",
	ErrStatNotFound:        "token with symbol does not exist",
	ErrUnauthorized:        "missing authority",
	ErrMemoTooLong:         "memo has more than 256 bytes",
	ErrNonPositiveQuantity: "must use positive quantity",
	ErrSymbolMismatch:      "symbol mismatch",
	ErrInvalidPrecision:    "symbol precision mismatch",
	ErrSupplyExceeded:      "quantity exceeds available supply",
	ErrSameAccount:         "cannot transfer to self",
	ErrRecipientNotFound:   "to account does not exist",
	ErrTransferLocked:      "token is locked",
	ErrInsufficientBalance: "overdrawn balance",
	ErrAlreadyUnlocked:     "token not locked",
	ErrOverflow:            "asset amount overflow",
	ErrUnderflow:           "asset amount underflow",
	ErrTransferFailed:      "withdraw transfer failed",
	ErrInvalidAccount:      "invalid account name",
}

// Code numeric code
func (e ErrorCode) Code() int {
	return int(e)
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}

	return e.String()
}

// ErrorCodeOf extract the ledger error code from err, ErrUnknown if none
func ErrorCodeOf(err error) (ErrorCode, bool) {
	var code ErrorCode
	if errors.As(err, &code) {
		return code, true
	}

	return ErrUnknown, false
}

// Require return code as error unless condition holds
func Require(condition bool, code ErrorCode) error {
	if condition {
		return nil
	}

	return code
}
