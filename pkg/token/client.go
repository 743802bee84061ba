package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/shared"
)

// ErrAccountNotFound reports a missing program account.
var ErrAccountNotFound = errors.New("account not found")

// ClientConfig configures a control-program client. Program, state, and
// mint are per-deployment and therefore required.
type ClientConfig struct {
	OperatorPrivateKey string
	Cluster            string
	RPCURL             string

	ProgramID string
	State     string
	Mint      string

	ConfirmTimeout time.Duration
}

// Client submits control-program instructions and reads its accounts.
type Client struct {
	rpcClient      *rpc.Client
	operator       solana.PrivateKey
	program        ProgramAccounts
	confirmTimeout time.Duration
}

// NewClient validates the config and constructs a client.
func NewClient(config ClientConfig) (*Client, error) {
	operator, err := shared.ParsePrivateKey(config.OperatorPrivateKey)
	if err != nil {
		return nil, err
	}

	programID, err := solana.PublicKeyFromBase58(config.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("invalid program ID: %w", err)
	}
	state, err := solana.PublicKeyFromBase58(config.State)
	if err != nil {
		return nil, fmt.Errorf("invalid state account: %w", err)
	}
	mint, err := solana.PublicKeyFromBase58(config.Mint)
	if err != nil {
		return nil, fmt.Errorf("invalid mint: %w", err)
	}

	rpcClient, err := shared.NewRPCClient(config.Cluster, config.RPCURL)
	if err != nil {
		return nil, err
	}

	confirmTimeout := config.ConfirmTimeout
	if confirmTimeout <= 0 {
		confirmTimeout = 90 * time.Second
	}

	return &Client{
		rpcClient:      rpcClient,
		operator:       operator,
		program:        ProgramAccounts{ProgramID: programID, State: state, Mint: mint},
		confirmTimeout: confirmTimeout,
	}, nil
}

// Operator returns the operator public key.
func (c *Client) Operator() solana.PublicKey {
	return c.operator.PublicKey()
}

// UpdateMinterQuota grants or resizes a minter's quota.
func (c *Client) UpdateMinterQuota(ctx context.Context, minter solana.PublicKey, quota uint64) (solana.Signature, error) {
	instruction, err := BuildUpdateMinterQuotaTx(c.program, c.Operator(), minter, quota)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// TransferAuthority hands the stablecoin to a new authority.
func (c *Client) TransferAuthority(ctx context.Context, newAuthority solana.PublicKey) (solana.Signature, error) {
	instruction, err := BuildTransferAuthorityTx(c.program, c.Operator(), newAuthority)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// UpdateFeatures replaces the feature toggle set.
func (c *Client) UpdateFeatures(ctx context.Context, features Features) (solana.Signature, error) {
	instruction, err := BuildUpdateFeaturesTx(c.program, c.Operator(), features)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// BatchMint mints to up to MaxBatchMintDestinations token accounts,
// checking the operator's quota locally first when it is fetchable.
func (c *Client) BatchMint(ctx context.Context, destinations []MintDestination) (solana.Signature, error) {
	if info, err := c.FetchMinterInfo(ctx, c.Operator()); err == nil {
		total := uint64(0)
		for _, destination := range destinations {
			total += destination.Amount
		}
		if err := info.CheckMint(total); err != nil {
			return solana.Signature{}, err
		}
	}

	instruction, err := BuildBatchMintTx(c.program, c.Operator(), destinations)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// FetchState reads and decodes the stablecoin state account.
func (c *Client) FetchState(ctx context.Context) (StablecoinState, error) {
	data, err := c.fetchAccountData(ctx, c.program.State)
	if err != nil {
		return StablecoinState{}, err
	}
	return DecodeStablecoinState(data)
}

// FetchRole reads the role account for a holder.
func (c *Client) FetchRole(ctx context.Context, holder solana.PublicKey) (RoleAccount, error) {
	roleAddress, _, err := DeriveRoleAddress(c.program.ProgramID, holder, c.program.Mint)
	if err != nil {
		return RoleAccount{}, err
	}

	data, err := c.fetchAccountData(ctx, roleAddress)
	if err != nil {
		return RoleAccount{}, err
	}
	return DecodeRoleAccount(data)
}

// FetchMinterInfo reads the quota account for a minter.
func (c *Client) FetchMinterInfo(ctx context.Context, minter solana.PublicKey) (MinterInfo, error) {
	infoAddress, _, err := DeriveMinterInfoAddress(c.program.ProgramID, minter, c.program.Mint)
	if err != nil {
		return MinterInfo{}, err
	}

	data, err := c.fetchAccountData(ctx, infoAddress)
	if err != nil {
		return MinterInfo{}, err
	}
	return DecodeMinterInfo(data)
}

func (c *Client) fetchAccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	result, err := c.rpcClient.GetAccountInfo(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAccountNotFound, address, err)
	}
	if result == nil || result.Value == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}
	return result.Value.Data.GetBinary(), nil
}

func (c *Client) sendAndConfirm(ctx context.Context, instruction solana.Instruction) (solana.Signature, error) {
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to fetch blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{instruction},
		recent.Value.Blockhash,
		solana.TransactionPayer(c.Operator()),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to build transaction: %w", err)
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(c.Operator()) {
			return &c.operator
		}
		return nil
	}); err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	signature, err := c.rpcClient.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentConfirmed,
	})
	if err != nil {
		return solana.Signature{}, err
	}

	if err := c.waitForConfirmation(ctx, signature); err != nil {
		return solana.Signature{}, err
	}
	return signature, nil
}

func (c *Client) waitForConfirmation(ctx context.Context, signature solana.Signature) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = c.confirmTimeout

	operation := func() error {
		statuses, err := c.rpcClient.GetSignatureStatuses(ctx, true, signature)
		if err != nil {
			return err
		}
		if statuses == nil || len(statuses.Value) == 0 || statuses.Value[0] == nil {
			return fmt.Errorf("transaction %s not yet observed", signature)
		}

		status := statuses.Value[0]
		if status.Err != nil {
			return backoff.Permanent(fmt.Errorf("transaction %s failed: %v", signature, status.Err))
		}
		switch status.ConfirmationStatus {
		case rpc.ConfirmationStatusConfirmed, rpc.ConfirmationStatusFinalized:
			return nil
		default:
			return fmt.Errorf("transaction %s still %s", signature, status.ConfirmationStatus)
		}
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("confirmation failed: %w", err)
	}
	return nil
}
