package hook

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/anchorutil"
)

func TestBuildInitializeTx(t *testing.T) {
	authority := solana.NewWallet().PublicKey()

	instruction, err := BuildInitializeTx(authority, 50, 5_000_000)
	require.NoError(t, err)
	require.Equal(t, ProgramID, instruction.ProgramID())

	accounts := instruction.Accounts()
	require.Len(t, accounts, 3)

	configAddress, _, err := DeriveConfigAddress(authority)
	require.NoError(t, err)
	require.Equal(t, configAddress, accounts[0].PublicKey)
	require.True(t, accounts[0].IsWritable)
	require.False(t, accounts[0].IsSigner)

	require.Equal(t, authority, accounts[1].PublicKey)
	require.True(t, accounts[1].IsSigner)
	require.True(t, accounts[1].IsWritable)

	require.Equal(t, solana.SystemProgramID, accounts[2].PublicKey)

	data, err := instruction.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+2+8)
	require.Equal(t, anchorutil.InstructionDiscriminator(InstructionInitialize), data[:8])
	require.Equal(t, uint16(50), binary.LittleEndian.Uint16(data[8:10]))
	require.Equal(t, uint64(5_000_000), binary.LittleEndian.Uint64(data[10:18]))
}

func TestBuildInitializeTxRejectsExcessiveFee(t *testing.T) {
	_, err := BuildInitializeTx(solana.NewWallet().PublicKey(), MaxFeeBasisPoints+1, 0)
	require.ErrorIs(t, err, ErrFeeTooHigh)
}

func TestBuildUpdateFeeConfigTx(t *testing.T) {
	authority := solana.NewWallet().PublicKey()

	instruction, err := BuildUpdateFeeConfigTx(authority, 25, 1_000_000, 500)
	require.NoError(t, err)

	accounts := instruction.Accounts()
	require.Len(t, accounts, 2)
	require.True(t, accounts[0].IsWritable)
	require.Equal(t, authority, accounts[1].PublicKey)
	require.True(t, accounts[1].IsSigner)

	data, err := instruction.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+2+8+8)
	require.Equal(t, anchorutil.InstructionDiscriminator(InstructionUpdateFeeConfig), data[:8])
	require.Equal(t, uint16(25), binary.LittleEndian.Uint16(data[8:10]))
	require.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[10:18]))
	require.Equal(t, uint64(500), binary.LittleEndian.Uint64(data[18:26]))
}

func TestBuildAddListEntryTx(t *testing.T) {
	authority := solana.NewWallet().PublicKey()
	target := solana.NewWallet().PublicKey()

	for _, listType := range []ListType{ListTypeWhitelist, ListTypeBlacklist} {
		instruction, err := BuildAddListEntryTx(listType, authority, target)
		require.NoError(t, err)

		accounts := instruction.Accounts()
		require.Len(t, accounts, 4)

		entryAddress, _, err := DeriveListEntryAddress(listType, authority, target)
		require.NoError(t, err)
		require.Equal(t, entryAddress, accounts[1].PublicKey)
		require.True(t, accounts[1].IsWritable)
		require.Equal(t, solana.SystemProgramID, accounts[3].PublicKey)

		data, err := instruction.Data()
		require.NoError(t, err)
		require.Len(t, data, 8+32)
		require.Equal(t, target.Bytes(), data[8:])
	}
}

func TestBuildAddAndRemoveUseDistinctInstructions(t *testing.T) {
	authority := solana.NewWallet().PublicKey()
	target := solana.NewWallet().PublicKey()

	add, err := BuildAddListEntryTx(ListTypeBlacklist, authority, target)
	require.NoError(t, err)
	remove, err := BuildRemoveListEntryTx(ListTypeBlacklist, authority, target)
	require.NoError(t, err)

	addData, err := add.Data()
	require.NoError(t, err)
	removeData, err := remove.Data()
	require.NoError(t, err)
	require.NotEqual(t, addData[:8], removeData[:8])
}

func TestBuildSetPermanentDelegateTx(t *testing.T) {
	authority := solana.NewWallet().PublicKey()
	delegate := solana.NewWallet().PublicKey()

	instruction, err := BuildSetPermanentDelegateTx(authority, &delegate)
	require.NoError(t, err)

	data, err := instruction.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+1+32)
	require.Equal(t, byte(1), data[8])
	require.Equal(t, delegate.Bytes(), data[9:])
}

func TestBuildSetPermanentDelegateTxClear(t *testing.T) {
	instruction, err := BuildSetPermanentDelegateTx(solana.NewWallet().PublicKey(), nil)
	require.NoError(t, err)

	data, err := instruction.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+1)
	require.Equal(t, byte(0), data[8])
}

func TestBuildBoolConfigInstructions(t *testing.T) {
	authority := solana.NewWallet().PublicKey()

	paused, err := BuildSetPausedTx(authority, true)
	require.NoError(t, err)
	data, err := paused.Data()
	require.NoError(t, err)
	require.Equal(t, anchorutil.InstructionDiscriminator(InstructionSetPaused), data[:8])
	require.Equal(t, byte(1), data[8])

	enabled, err := BuildSetBlacklistEnabledTx(authority, false)
	require.NoError(t, err)
	data, err = enabled.Data()
	require.NoError(t, err)
	require.Equal(t, anchorutil.InstructionDiscriminator(InstructionSetBlacklistEnabled), data[:8])
	require.Equal(t, byte(0), data[8])
}

func TestBuildExecuteTransferHookTx(t *testing.T) {
	accounts := ExecuteAccounts{
		Config:      solana.NewWallet().PublicKey(),
		Source:      solana.NewWallet().PublicKey(),
		Destination: solana.NewWallet().PublicKey(),
		Mint:        solana.NewWallet().PublicKey(),
		Whitelist:   solana.SystemProgramID,
		Blacklist:   solana.SystemProgramID,
	}

	instruction, err := BuildExecuteTransferHookTx(accounts, 42)
	require.NoError(t, err)

	metas := instruction.Accounts()
	require.Len(t, metas, 6)
	require.Equal(t, accounts.Config, metas[0].PublicKey)
	require.Equal(t, accounts.Source, metas[1].PublicKey)
	require.Equal(t, accounts.Destination, metas[2].PublicKey)
	require.Equal(t, accounts.Mint, metas[3].PublicKey)

	data, err := instruction.Data()
	require.NoError(t, err)
	require.Equal(t, uint64(42), binary.LittleEndian.Uint64(data[8:]))
}

func TestBuildCloseConfigTx(t *testing.T) {
	authority := solana.NewWallet().PublicKey()

	instruction, err := BuildCloseConfigTx(authority)
	require.NoError(t, err)

	accounts := instruction.Accounts()
	require.Len(t, accounts, 2)
	require.True(t, accounts[1].IsSigner)

	data, err := instruction.Data()
	require.NoError(t, err)
	require.Len(t, data, 8)
}
