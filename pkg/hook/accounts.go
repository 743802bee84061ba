package hook

import (
	"bytes"
	"fmt"

	bin "github.com/gagliardetto/binary"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/anchorutil"
)

// Account names as declared in the program.
const (
	AccountTransferHookConfig = "TransferHookConfig"
	AccountListEntry          = "ListEntry"
	AccountWhitelistEntry     = "WhitelistEntry"
	AccountBlacklistEntry     = "BlacklistEntry"
)

// DecodeConfig decodes a hook config account from raw account data,
// checking the 8-byte discriminator first.
func DecodeConfig(data []byte) (Config, error) {
	var config Config
	if err := decodeAccount(AccountTransferHookConfig, data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DecodeListEntry decodes a unified list entry account.
func DecodeListEntry(data []byte) (ListEntry, error) {
	var entry ListEntry
	if err := decodeAccount(AccountListEntry, data, &entry); err != nil {
		return ListEntry{}, err
	}
	return entry, nil
}

// DecodeWhitelistEntry decodes a legacy whitelist account.
func DecodeWhitelistEntry(data []byte) (WhitelistEntry, error) {
	var entry WhitelistEntry
	if err := decodeAccount(AccountWhitelistEntry, data, &entry); err != nil {
		return WhitelistEntry{}, err
	}
	return entry, nil
}

// DecodeBlacklistEntry decodes a legacy blacklist account.
func DecodeBlacklistEntry(data []byte) (BlacklistEntry, error) {
	var entry BlacklistEntry
	if err := decodeAccount(AccountBlacklistEntry, data, &entry); err != nil {
		return BlacklistEntry{}, err
	}
	return entry, nil
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
