package anchorutil

import (
	"fmt"
	"regexp"
	"strconv"
)

// CustomErrorBase is the code of the first user-defined Anchor error.
const CustomErrorBase = 6000

// ProgramError is a custom error returned by an on-chain program,
// recovered from the text of a JSON-RPC send or simulation failure.
type ProgramError struct {
	Code uint32
	Name string
	Msg  string
}

func (e *ProgramError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("program error %d (%s): %s", e.Code, e.Name, e.Msg)
	}
	if e.Name != "" {
		return fmt.Sprintf("program error %d (%s)", e.Code, e.Name)
	}
	return fmt.Sprintf("program error %d", e.Code)
}

// ErrorRegistry maps custom error codes onto names and messages for one
// program.
type ErrorRegistry map[uint32]ProgramError

var (
	customErrorHexPattern     = regexp.MustCompile(`custom program error: 0x([0-9a-fA-F]+)`)
	customErrorDecimalPattern = regexp.MustCompile(`"Custom":\s*(\d+)`)
)

// DecodeError extracts a custom program error from an RPC error. It returns
// the original error unchanged when no custom error code is present.
func (r ErrorRegistry) DecodeError(err error) error {
	if err == nil {
		return nil
	}

	code, ok := ExtractCustomErrorCode(err.Error())
	if !ok {
		return err
	}

	if known, exists := r[code]; exists {
		return &ProgramError{Code: code, Name: known.Name, Msg: known.Msg}
	}
	return &ProgramError{Code: code}
}

// ExtractCustomErrorCode scans RPC error text for a custom program error
// code, in either the hex form the runtime logs or the decimal form the
// JSON-RPC error object carries.
func ExtractCustomErrorCode(text string) (uint32, bool) {
	if match := customErrorHexPattern.FindStringSubmatch(text); match != nil {
		code, err := strconv.ParseUint(match[1], 16, 32)
		if err == nil {
			return uint32(code), true
		}
	}
	if match := customErrorDecimalPattern.FindStringSubmatch(text); match != nil {
		code, err := strconv.ParseUint(match[1], 10, 32)
		if err == nil {
			return uint32(code), true
		}
	}
	return 0, false
}
