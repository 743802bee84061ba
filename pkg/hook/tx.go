package hook

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/anchorutil"
)

// Instruction names as declared in the program module.
const (
	InstructionInitialize           = "initialize"
	InstructionExecuteTransferHook  = "execute_transfer_hook"
	InstructionUpdateFeeConfig      = "update_fee_config"
	InstructionAddWhitelist         = "add_whitelist"
	InstructionRemoveWhitelist      = "remove_whitelist"
	InstructionAddBlacklist         = "add_blacklist"
	InstructionRemoveBlacklist      = "remove_blacklist"
	InstructionSetPermanentDelegate = "set_permanent_delegate"
	InstructionSetBlacklistEnabled  = "set_blacklist_enabled"
	InstructionSetPaused            = "set_paused"
	InstructionCloseConfig          = "close_config"
)

// BuildInitializeTx builds the initialize instruction creating the hook
// config PDA for the authority. Fee basis points above MaxFeeBasisPoints
// are rejected client-side before any RPC call.
func BuildInitializeTx(
	authority solana.PublicKey,
	feeBasisPoints uint16,
	maxTransferFee uint64,
) (solana.Instruction, error) {
	if feeBasisPoints > MaxFeeBasisPoints {
		return nil, fmt.Errorf("%w: %d bps", ErrFeeTooHigh, feeBasisPoints)
	}

	configAddress, _, err := DeriveConfigAddress(authority)
	if err != nil {
		return nil, fmt.Errorf("failed to derive config address: %w", err)
	}

	data, err := encodeInstructionData(InstructionInitialize, func(encoder *bin.Encoder) error {
		if err := encoder.WriteUint16(feeBasisPoints, binary.LittleEndian); err != nil {
			return err
		}
		return encoder.WriteUint64(maxTransferFee, binary.LittleEndian)
	})
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(configAddress).WRITE(),
		solana.Meta(authority).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}
	return solana.NewInstruction(ProgramID, accounts, data), nil
}

// ExecuteAccounts names the accounts the execute_transfer_hook instruction
// reads. Pass the system program ID for list slots that have no entry.
type ExecuteAccounts struct {
	Config      solana.PublicKey
	Source      solana.PublicKey
	Destination solana.PublicKey
	Mint        solana.PublicKey
	Whitelist   solana.PublicKey
	Blacklist   solana.PublicKey
}

// BuildExecuteTransferHookTx builds the hook invocation the token program
// issues on transfer. Exposed for testing and simulation; ordinary
// transfers reach it through Token-2022 CPI.
func BuildExecuteTransferHookTx(accounts ExecuteAccounts, amount uint64) (solana.Instruction, error) {
	data, err := encodeInstructionData(InstructionExecuteTransferHook, func(encoder *bin.Encoder) error {
		return encoder.WriteUint64(amount, binary.LittleEndian)
	})
	if err != nil {
		return nil, err
	}

	metas := solana.AccountMetaSlice{
		solana.Meta(accounts.Config),
		solana.Meta(accounts.Source),
		solana.Meta(accounts.Destination),
		solana.Meta(accounts.Mint),
		solana.Meta(accounts.Whitelist),
		solana.Meta(accounts.Blacklist),
	}
	return solana.NewInstruction(ProgramID, metas, data), nil
}

// BuildUpdateFeeConfigTx builds the fee reconfiguration instruction.
func BuildUpdateFeeConfigTx(
	authority solana.PublicKey,
	feeBasisPoints uint16,
	maxTransferFee uint64,
	minTransferAmount uint64,
) (solana.Instruction, error) {
	if feeBasisPoints > MaxFeeBasisPoints {
		return nil, fmt.Errorf("%w: %d bps", ErrFeeTooHigh, feeBasisPoints)
	}

	configAddress, _, err := DeriveConfigAddress(authority)
	if err != nil {
		return nil, fmt.Errorf("failed to derive config address: %w", err)
	}

	data, err := encodeInstructionData(InstructionUpdateFeeConfig, func(encoder *bin.Encoder) error {
		if err := encoder.WriteUint16(feeBasisPoints, binary.LittleEndian); err != nil {
			return err
		}
		if err := encoder.WriteUint64(maxTransferFee, binary.LittleEndian); err != nil {
			return err
		}
		return encoder.WriteUint64(minTransferAmount, binary.LittleEndian)
	})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, updateConfigAccounts(configAddress, authority), data), nil
}

// BuildAddListEntryTx builds add_whitelist or add_blacklist for address.
func BuildAddListEntryTx(
	listType ListType,
	authority solana.PublicKey,
	address solana.PublicKey,
) (solana.Instruction, error) {
	return buildManageListTx(listType, authority, address, true)
}

// BuildRemoveListEntryTx builds remove_whitelist or remove_blacklist.
func BuildRemoveListEntryTx(
	listType ListType,
	authority solana.PublicKey,
	address solana.PublicKey,
) (solana.Instruction, error) {
	return buildManageListTx(listType, authority, address, false)
}

func buildManageListTx(
	listType ListType,
	authority solana.PublicKey,
	address solana.PublicKey,
	add bool,
) (solana.Instruction, error) {
	name := ""
	switch {
	case listType == ListTypeWhitelist && add:
		name = InstructionAddWhitelist
	case listType == ListTypeWhitelist:
		name = InstructionRemoveWhitelist
	case listType == ListTypeBlacklist && add:
		name = InstructionAddBlacklist
	default:
		name = InstructionRemoveBlacklist
	}

	configAddress, _, err := DeriveConfigAddress(authority)
	if err != nil {
		return nil, fmt.Errorf("failed to derive config address: %w", err)
	}
	entryAddress, _, err := DeriveListEntryAddress(listType, authority, address)
	if err != nil {
		return nil, fmt.Errorf("failed to derive list entry address: %w", err)
	}

	data, err := encodeInstructionData(name, func(encoder *bin.Encoder) error {
		return encoder.WriteBytes(address.Bytes(), false)
	})
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(configAddress),
		solana.Meta(entryAddress).WRITE(),
		solana.Meta(authority).WRITE().SIGNER(),
		solana.Meta(solana.SystemProgramID),
	}
	return solana.NewInstruction(ProgramID, accounts, data), nil
}

// BuildSetPermanentDelegateTx builds set_permanent_delegate. A nil
// delegate clears the slot.
func BuildSetPermanentDelegateTx(
	authority solana.PublicKey,
	delegate *solana.PublicKey,
) (solana.Instruction, error) {
	configAddress, _, err := DeriveConfigAddress(authority)
	if err != nil {
		return nil, fmt.Errorf("failed to derive config address: %w", err)
	}

	data, err := encodeInstructionData(InstructionSetPermanentDelegate, func(encoder *bin.Encoder) error {
		if delegate == nil {
			return encoder.WriteBool(false)
		}
		if err := encoder.WriteBool(true); err != nil {
			return err
		}
		return encoder.WriteBytes(delegate.Bytes(), false)
	})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, updateConfigAccounts(configAddress, authority), data), nil
}

// BuildSetBlacklistEnabledTx toggles blacklist enforcement.
func BuildSetBlacklistEnabledTx(authority solana.PublicKey, enabled bool) (solana.Instruction, error) {
	return buildBoolConfigTx(InstructionSetBlacklistEnabled, authority, enabled)
}

// BuildSetPausedTx pauses or resumes the hook.
func BuildSetPausedTx(authority solana.PublicKey, paused bool) (solana.Instruction, error) {
	return buildBoolConfigTx(InstructionSetPaused, authority, paused)
}

func buildBoolConfigTx(name string, authority solana.PublicKey, value bool) (solana.Instruction, error) {
	configAddress, _, err := DeriveConfigAddress(authority)
	if err != nil {
		return nil, fmt.Errorf("failed to derive config address: %w", err)
	}

	data, err := encodeInstructionData(name, func(encoder *bin.Encoder) error {
		return encoder.WriteBool(value)
	})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, updateConfigAccounts(configAddress, authority), data), nil
}

// BuildCloseConfigTx closes the config account and refunds rent to the
// authority.
func BuildCloseConfigTx(authority solana.PublicKey) (solana.Instruction, error) {
	configAddress, _, err := DeriveConfigAddress(authority)
	if err != nil {
		return nil, fmt.Errorf("failed to derive config address: %w", err)
	}

	data, err := encodeInstructionData(InstructionCloseConfig, nil)
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(configAddress).WRITE(),
		solana.Meta(authority).WRITE().SIGNER(),
	}
	return solana.NewInstruction(ProgramID, accounts, data), nil
}

func updateConfigAccounts(configAddress, authority solana.PublicKey) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.Meta(configAddress).WRITE(),
		solana.Meta(authority).SIGNER(),
	}
}

func encodeInstructionData(name string, writeArgs func(*bin.Encoder) error) ([]byte, error) {
	buf := new(bytes.Buffer)
	encoder := bin.NewBorshEncoder(buf)

	if err := encoder.WriteBytes(anchorutil.InstructionDiscriminator(name), false); err != nil {
		return nil, fmt.Errorf("failed to encode discriminator: %w", err)
	}
	if writeArgs != nil {
		if err := writeArgs(encoder); err != nil {
			return nil, fmt.Errorf("failed to encode %s args: %w", name, err)
		}
	}

	return buf.Bytes(), nil
}
