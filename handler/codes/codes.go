package codes

import (
	"strconv"

	"tokenledger/core"

	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"

	// InvalidArguments invalid arguments
	InvalidArguments = 100001
)

// With with specified error
func With(err error, code int) error {
	twerr, ok := err.(twirp.Error)
	if !ok {
		twerr = twirp.InternalErrorWith(err)
	}

	return twerr.WithMeta(CustomCodeKey, strconv.Itoa(code))
}

// Get get error code
func Get(code twirp.ErrorCode) int {
	switch code {
	case twirp.InvalidArgument:
		return InvalidArguments
	default:
		return twirp.ServerHTTPStatusFromErrorCode(code)
	}
}

// From convert err to twirp error, ledger errors keep their code
func From(err error) twirp.Error {
	if twerr, ok := err.(twirp.Error); ok {
		return twerr
	}

	code, ok := core.ErrorCodeOf(err)
	if !ok || code == core.ErrUnknown {
		return twirp.InternalErrorWith(err)
	}

	return twirp.NewError(twirpCode(code), err.Error()).
		WithMeta(CustomCodeKey, code.String())
}

// Code custom code of twerr
func Code(twerr twirp.Error) int {
	if v := twerr.Meta(CustomCodeKey); v != "" {
		if code, err := strconv.Atoi(v); err == nil {
			return code
		}
	}

	return Get(twerr.Code())
}

func twirpCode(code core.ErrorCode) twirp.ErrorCode {
	switch code {
	case core.ErrUnauthorized:
		return twirp.PermissionDenied
	case core.ErrStatNotFound, core.ErrRecipientNotFound:
		return twirp.NotFound
	case core.ErrSymbolAlreadyExists:
		return twirp.AlreadyExists
	case core.ErrSupplyExceeded,
		core.ErrTransferLocked,
		core.ErrInsufficientBalance,
		core.ErrAlreadyUnlocked:
		return twirp.FailedPrecondition
	case core.ErrOverflow, core.ErrUnderflow:
		return twirp.OutOfRange
	case core.ErrTransferFailed:
		return twirp.Unavailable
	default:
		return twirp.InvalidArgument
	}
}
