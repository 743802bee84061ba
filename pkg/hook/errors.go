package hook

import (
	"errors"
	"strings"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/anchorutil"
)

var (
	ErrFeeTooHigh         = errors.New("fee amount too high (max 10%)")
	ErrInvalidAuthority   = errors.New("invalid authority")
	ErrAmountTooLow       = errors.New("transfer amount too low")
	ErrHookPaused         = errors.New("transfer hook is paused")
	ErrAddressBlacklisted = errors.New("address is blacklisted")

	ErrAlreadyInitialized = errors.New("hook config already initialized")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidAccountData = errors.New("unexpected account data")
)

// Errors maps the program's custom error codes onto names and messages.
var Errors = anchorutil.ErrorRegistry{
	6000: {Code: 6000, Name: "FeeTooHigh", Msg: "Fee amount too high (max 10%)"},
	6001: {Code: 6001, Name: "InvalidAuthority", Msg: "Invalid authority"},
	6002: {Code: 6002, Name: "AmountTooLow", Msg: "Transfer amount too low"},
	6003: {Code: 6003, Name: "ContractPaused", Msg: "Contract is paused"},
	6004: {Code: 6004, Name: "AddressBlacklisted", Msg: "Address is blacklisted"},
}

var sentinelByCode = map[uint32]error{
	6000: ErrFeeTooHigh,
	6001: ErrInvalidAuthority,
	6002: ErrAmountTooLow,
	6003: ErrHookPaused,
	6004: ErrAddressBlacklisted,
}

// DecodeError turns an RPC failure into the matching sentinel error where
// the program's custom error code is recognizable, and detects the
// "already in use" failure the initialize instruction produces when the
// config PDA exists.
func DecodeError(err error) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "already in use") {
		return ErrAlreadyInitialized
	}

	if code, ok := anchorutil.ExtractCustomErrorCode(err.Error()); ok {
		if sentinel, known := sentinelByCode[code]; known {
			return sentinel
		}
	}

	return Errors.DecodeError(err)
}
