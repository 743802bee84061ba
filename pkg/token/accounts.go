package token

import (
	"bytes"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/anchorutil"
)

// ErrInvalidAccountData reports a decode failure.
var ErrInvalidAccountData = errors.New("unexpected account data")

// Account names as declared in the program.
const (
	AccountStablecoinState = "StablecoinState"
	AccountRoleAccount     = "RoleAccount"
	AccountMinterInfo      = "MinterInfo"
)

// DecodeStablecoinState decodes the control program's root account.
func DecodeStablecoinState(data []byte) (StablecoinState, error) {
	var state StablecoinState
	if err := decodeAccount(AccountStablecoinState, data, &state); err != nil {
		return StablecoinState{}, err
	}
	return state, nil
}

// DecodeRoleAccount decodes a role grant.
func DecodeRoleAccount(data []byte) (RoleAccount, error) {
	var role RoleAccount
	if err := decodeAccount(AccountRoleAccount, data, &role); err != nil {
		return RoleAccount{}, err
	}
	return role, nil
}

// DecodeMinterInfo decodes a minter's quota account.
func DecodeMinterInfo(data []byte) (MinterInfo, error) {
	var info MinterInfo
	if err := decodeAccount(AccountMinterInfo, data, &info); err != nil {
		return MinterInfo{}, err
	}
	return info, nil
}

func decodeAccount(name string, data []byte, out interface{}) error {
	if len(data) < anchorutil.DiscriminatorLength {
		return fmt.Errorf("%w: %d bytes is too short for %s", ErrInvalidAccountData, len(data), name)
	}

	expected := anchorutil.AccountDiscriminator(name)
	if !bytes.Equal(data[:anchorutil.DiscriminatorLength], expected) {
		return fmt.Errorf("%w: discriminator mismatch for %s", ErrInvalidAccountData, name)
	}

	decoder := bin.NewBorshDecoder(data[anchorutil.DiscriminatorLength:])
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: %s decode failed: %v", ErrInvalidAccountData, name, err)
	}
	return nil
}
