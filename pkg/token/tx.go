package token

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
	InstructionUpdateMinterQuota = "update_minter_quota"
	InstructionTransferAuthority = "transfer_authority"
	InstructionUpdateFeatures    = "update_features"
	InstructionBatchMint         = "batch_mint"
)

// ProgramAccounts names the fixed accounts every control-program
// instruction operates on.
type ProgramAccounts struct {
	ProgramID solana.PublicKey
	State     solana.PublicKey
	Mint      solana.PublicKey
}

func (p ProgramAccounts) validate() error {
	if p.ProgramID.IsZero() {
		return fmt.Errorf("program ID is required")
	}
	if p.State.IsZero() {
		return fmt.Errorf("state account is required")
	}
	if p.Mint.IsZero() {
		return fmt.Errorf("mint is required")
	}
	return nil
}

// BuildUpdateMinterQuotaTx builds the instruction granting (or resizing)
// a minter's quota. The minter-info PDA is created on first use.
func BuildUpdateMinterQuotaTx(
	program ProgramAccounts,
	authority solana.PublicKey,
	minter solana.PublicKey,
	quota uint64,
) (solana.Instruction, error) {
	if err := program.validate(); err != nil {
		return nil, err
	}

	roleAddress, _, err := DeriveRoleAddress(program.ProgramID, authority, program.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive role address: %w", err)
	}
	minterInfoAddress, _, err := DeriveMinterInfoAddress(program.ProgramID, minter, program.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive minter info address: %w", err)
	}

	data, err := encodeInstructionData(InstructionUpdateMinterQuota, func(encoder *bin.Encoder) error {
		return encoder.WriteUint64(quota, binary.LittleEndian)
	})
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(authority).WRITE().SIGNER(),
		solana.Meta(program.State).WRITE(),
		solana.Meta(roleAddress),
		solana.Meta(minter),
		solana.Meta(minterInfoAddress).WRITE(),
		solana.Meta(solana.SystemProgramID),
	}
	return solana.NewInstruction(program.ProgramID, accounts, data), nil
}

// BuildTransferAuthorityTx builds the instruction handing the stablecoin
// over to a new authority.
func BuildTransferAuthorityTx(
	program ProgramAccounts,
	authority solana.PublicKey,
	newAuthority solana.PublicKey,
) (solana.Instruction, error) {
	if err := program.validate(); err != nil {
		return nil, err
	}

	data, err := encodeInstructionData(InstructionTransferAuthority, nil)
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(authority).SIGNER(),
		solana.Meta(program.State).WRITE(),
		solana.Meta(newAuthority),
	}
	return solana.NewInstruction(program.ProgramID, accounts, data), nil
}

// BuildUpdateFeaturesTx builds the feature-toggle instruction.
func BuildUpdateFeaturesTx(
	program ProgramAccounts,
	authority solana.PublicKey,
	features Features,
) (solana.Instruction, error) {
	if err := program.validate(); err != nil {
		return nil, err
	}

	roleAddress, _, err := DeriveRoleAddress(program.ProgramID, authority, program.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive role address: %w", err)
	}

	data, err := encodeInstructionData(InstructionUpdateFeatures, func(encoder *bin.Encoder) error {
		return encoder.Encode(features)
	})
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(authority).SIGNER(),
		solana.Meta(program.State).WRITE(),
		solana.Meta(roleAddress),
	}
	return solana.NewInstruction(program.ProgramID, accounts, data), nil
}

// MaxBatchMintDestinations bounds one batch, matching the on-chain limit
// for batched compliance operations.
const MaxBatchMintDestinations = 10

// BuildBatchMintTx builds the batch-mint instruction. Destination token
// accounts ride as trailing accounts, one per amount, in order.
func BuildBatchMintTx(
	program ProgramAccounts,
	minter solana.PublicKey,
	destinations []MintDestination,
) (solana.Instruction, error) {
	if err := program.validate(); err != nil {
		return nil, err
	}
	if len(destinations) == 0 {
		return nil, fmt.Errorf("at least one mint destination is required")
	}
	if len(destinations) > MaxBatchMintDestinations {
		return nil, fmt.Errorf("batch of %d exceeds maximum %d destinations", len(destinations), MaxBatchMintDestinations)
	}

	roleAddress, _, err := DeriveRoleAddress(program.ProgramID, minter, program.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive role address: %w", err)
	}
	minterInfoAddress, _, err := DeriveMinterInfoAddress(program.ProgramID, minter, program.Mint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive minter info address: %w", err)
	}
	mintAuthority, _, err := DeriveMintAuthorityAddress(program.ProgramID, program.State)
	if err != nil {
		return nil, fmt.Errorf("failed to derive mint authority: %w", err)
	}

	data, err := encodeInstructionData(InstructionBatchMint, func(encoder *bin.Encoder) error {
		if err := encoder.WriteUint32(uint32(len(destinations)), binary.LittleEndian); err != nil {
			return err
		}
		for _, destination := range destinations {
			if err := encoder.WriteUint64(destination.Amount, binary.LittleEndian); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	accounts := solana.AccountMetaSlice{
		solana.Meta(minter).WRITE().SIGNER(),
		solana.Meta(program.State).WRITE(),
		solana.Meta(roleAddress),
		solana.Meta(minterInfoAddress).WRITE(),
		solana.Meta(program.Mint).WRITE(),
		solana.Meta(mintAuthority),
		solana.Meta(solana.Token2022ProgramID),
	}
	for _, destination := range destinations {
		accounts = append(accounts, solana.Meta(destination.TokenAccount).WRITE())
	}
	return solana.NewInstruction(program.ProgramID, accounts, data), nil
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
