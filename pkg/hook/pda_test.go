package hook

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func TestDeriveConfigAddressDeterministic(t *testing.T) {
	authority := solana.NewWallet().PublicKey()

	first, firstBump, err := DeriveConfigAddress(authority)
	require.NoError(t, err)
	second, secondBump, err := DeriveConfigAddress(authority)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, firstBump, secondBump)
}

func TestDeriveConfigAddressMatchesFindProgramAddress(t *testing.T) {
	authority := solana.NewWallet().PublicKey()

	derived, bump, err := DeriveConfigAddress(authority)
	require.NoError(t, err)

	expected, expectedBump, err := solana.FindProgramAddress(
		[][]byte{[]byte("config"), authority.Bytes()},
		ProgramID,
	)
	require.NoError(t, err)
	require.Equal(t, expected, derived)
	require.Equal(t, expectedBump, bump)
}

func TestDeriveListEntryAddressSeparatesLists(t *testing.T) {
	authority := solana.NewWallet().PublicKey()
	address := solana.NewWallet().PublicKey()

	whitelist, _, err := DeriveListEntryAddress(ListTypeWhitelist, authority, address)
	require.NoError(t, err)
	blacklist, _, err := DeriveListEntryAddress(ListTypeBlacklist, authority, address)
	require.NoError(t, err)

	require.NotEqual(t, whitelist, blacklist)
}

func TestDeriveListEntryAddressVariesByAddress(t *testing.T) {
	authority := solana.NewWallet().PublicKey()

	first, _, err := DeriveListEntryAddress(ListTypeBlacklist, authority, solana.NewWallet().PublicKey())
	require.NoError(t, err)
	second, _, err := DeriveListEntryAddress(ListTypeBlacklist, authority, solana.NewWallet().PublicKey())
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
