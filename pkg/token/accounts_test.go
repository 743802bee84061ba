package token

import (
	"bytes"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/anchorutil"
)

func encodeAccount(t *testing.T, name string, value interface{}) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	buf.Write(anchorutil.AccountDiscriminator(name))
	require.NoError(t, bin.NewBorshEncoder(buf).Encode(value))
	return buf.Bytes()
}

func TestDecodeStablecoinState(t *testing.T) {
	original := StablecoinState{
		Mint:      solana.NewWallet().PublicKey(),
		Authority: solana.NewWallet().PublicKey(),
		Features: Features{
			TransferFeesEnabled: true,
			BlacklistEnabled:    true,
		},
		Decimals: 6,
		Bump:     253,
	}

	decoded, err := DecodeStablecoinState(encodeAccount(t, AccountStablecoinState, original))
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestDecodeMinterInfo(t *testing.T) {
	original := MinterInfo{
		Minter: solana.NewWallet().PublicKey(),
		Quota:  1_000_000,
		Minted: 400,
		Bump:   255,
	}

	decoded, err := DecodeMinterInfo(encodeAccount(t, AccountMinterInfo, original))
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestDecodeRejectsMismatchedAccount(t *testing.T) {
	data := encodeAccount(t, AccountMinterInfo, MinterInfo{})

	_, err := DecodeRoleAccount(data)
	require.ErrorIs(t, err, ErrInvalidAccountData)
}

func TestDecodeRejectsShortData(t *testing.T) {
	_, err := DecodeStablecoinState([]byte{0xde, 0xad})
	require.ErrorIs(t, err, ErrInvalidAccountData)
}
