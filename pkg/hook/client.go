package hook

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/shared"
)

// ClientConfig configures a hook program client.
type ClientConfig struct {
	OperatorPrivateKey string
	Cluster            string
	RPCURL             string

	// ConfirmTimeout bounds confirmation polling per transaction.
	// Zero means 90 seconds.
	ConfirmTimeout time.Duration
}

// Client submits transfer-hook program instructions and reads its
// accounts. The operator key pays for and signs every transaction.
type Client struct {
	rpcClient      *rpc.Client
	operator       solana.PrivateKey
	confirmTimeout time.Duration
}

// NewClient validates the config and constructs a client.
func NewClient(config ClientConfig) (*Client, error) {
	operator, err := shared.ParsePrivateKey(config.OperatorPrivateKey)
	if err != nil {
		return nil, err
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
		confirmTimeout: confirmTimeout,
	}, nil
}

// Operator returns the operator public key.
func (c *Client) Operator() solana.PublicKey {
	return c.operator.PublicKey()
}

// InitializeResult reports a successful hook initialization.
type InitializeResult struct {
	Signature     solana.Signature
	ConfigAddress solana.PublicKey
}

// Initialize creates the hook config PDA for the operator. Returns
// ErrAlreadyInitialized when the config already exists.
func (c *Client) Initialize(ctx context.Context, feeBasisPoints uint16, maxTransferFee uint64) (InitializeResult, error) {
	instruction, err := BuildInitializeTx(c.Operator(), feeBasisPoints, maxTransferFee)
	if err != nil {
		return InitializeResult{}, err
	}

	signature, err := c.sendAndConfirm(ctx, instruction)
	if err != nil {
		return InitializeResult{}, err
	}

	configAddress, _, err := DeriveConfigAddress(c.Operator())
	if err != nil {
		return InitializeResult{}, err
	}

	return InitializeResult{Signature: signature, ConfigAddress: configAddress}, nil
}

// UpdateFeeConfig replaces the fee parameters.
func (c *Client) UpdateFeeConfig(
	ctx context.Context,
	feeBasisPoints uint16,
	maxTransferFee uint64,
	minTransferAmount uint64,
) (solana.Signature, error) {
	instruction, err := BuildUpdateFeeConfigTx(c.Operator(), feeBasisPoints, maxTransferFee, minTransferAmount)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// AddToList adds an address to the whitelist or blacklist.
func (c *Client) AddToList(ctx context.Context, listType ListType, address solana.PublicKey) (solana.Signature, error) {
	instruction, err := BuildAddListEntryTx(listType, c.Operator(), address)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// RemoveFromList removes an address from the whitelist or blacklist.
func (c *Client) RemoveFromList(ctx context.Context, listType ListType, address solana.PublicKey) (solana.Signature, error) {
	instruction, err := BuildRemoveListEntryTx(listType, c.Operator(), address)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// SetPermanentDelegate sets or clears the permanent delegate.
func (c *Client) SetPermanentDelegate(ctx context.Context, delegate *solana.PublicKey) (solana.Signature, error) {
	instruction, err := BuildSetPermanentDelegateTx(c.Operator(), delegate)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// SetBlacklistEnabled toggles blacklist enforcement.
func (c *Client) SetBlacklistEnabled(ctx context.Context, enabled bool) (solana.Signature, error) {
	instruction, err := BuildSetBlacklistEnabledTx(c.Operator(), enabled)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// SetPaused pauses or resumes the hook.
func (c *Client) SetPaused(ctx context.Context, paused bool) (solana.Signature, error) {
	instruction, err := BuildSetPausedTx(c.Operator(), paused)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// CloseConfig closes the config account and refunds rent.
func (c *Client) CloseConfig(ctx context.Context) (solana.Signature, error) {
	instruction, err := BuildCloseConfigTx(c.Operator())
	if err != nil {
		return solana.Signature{}, err
	}
	return c.sendAndConfirm(ctx, instruction)
}

// FetchConfig reads and decodes the operator's hook config account.
func (c *Client) FetchConfig(ctx context.Context) (Config, error) {
	configAddress, _, err := DeriveConfigAddress(c.Operator())
	if err != nil {
		return Config{}, err
	}

	data, err := c.fetchAccountData(ctx, configAddress)
	if err != nil {
		return Config{}, err
	}
	return DecodeConfig(data)
}

// FetchListEntry reads a whitelist or blacklist entry for an address.
func (c *Client) FetchListEntry(ctx context.Context, listType ListType, address solana.PublicKey) (ListEntry, error) {
	entryAddress, _, err := DeriveListEntryAddress(listType, c.Operator(), address)
	if err != nil {
		return ListEntry{}, err
	}

	data, err := c.fetchAccountData(ctx, entryAddress)
	if err != nil {
		return ListEntry{}, err
	}
	return DecodeListEntry(data)
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
		return solana.Signature{}, DecodeError(err)
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
