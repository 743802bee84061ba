package preset

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Validate checks a preset against the bounds the on-chain programs
// enforce, so invalid configurations are rejected before any RPC call.
func Validate(p Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset name is required")
	}

	switch p.Tier {
	case TierSSS1, TierSSS2, TierSSS3:
	default:
		return fmt.Errorf("tier %q is not supported", p.Tier)
	}

	if p.Decimals > MaxDecimals {
		return fmt.Errorf("decimals must not exceed %d", MaxDecimals)
	}

	if p.TransferFeeBasisPoints > MaxFeeBasisPoints {
		return fmt.Errorf("transfer fee %d bps exceeds maximum %d", p.TransferFeeBasisPoints, MaxFeeBasisPoints)
	}

	if p.TransferFeeBasisPoints > 0 && !p.TransferHookEnabled {
		return fmt.Errorf("transfer fees require the transfer hook")
	}
	if p.BlacklistEnabled && !p.TransferHookEnabled {
		return fmt.Errorf("blacklist enforcement requires the transfer hook")
	}
	if p.TransferFeeBasisPoints > 0 && p.MaxTransferFee == 0 {
		return fmt.Errorf("non-zero fee rate requires a max transfer fee cap")
	}

	if p.Tier == TierSSS1 && p.TransferHookEnabled {
		return fmt.Errorf("tier sss-1 must not enable the transfer hook")
	}
	if p.Tier != TierSSS3 && p.Confidential.Enabled {
		return fmt.Errorf("confidential transfers are only available on tier sss-3")
	}
	if p.Tier == TierSSS3 && !p.Confidential.Enabled {
		return fmt.Errorf("tier sss-3 requires confidential transfers")
	}

	if p.AllowlistEnabled && !p.DefaultAccountFrozen {
		return fmt.Errorf("allowlist mode requires default-frozen accounts")
	}

	if auditor := strings.TrimSpace(p.Confidential.AuditorElGamalKey); auditor != "" {
		if !p.Confidential.Enabled {
			return fmt.Errorf("auditor key set without confidential transfers")
		}
		if _, err := solana.PublicKeyFromBase58(auditor); err != nil {
			return fmt.Errorf("invalid auditor key: %w", err)
		}
	}

	return nil
}
