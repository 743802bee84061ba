package preset

import "fmt"

// SSS1 returns the basic tier: a plain Token-2022 stablecoin with no
// transfer hook and no compliance surface.
func SSS1() Preset {
	return Preset{
		Name:     "sss-1-basic",
		Tier:     TierSSS1,
		Decimals: 6,
		Metadata: Metadata{
			Symbol: "SSS1",
			Name:   "SSS Basic Stablecoin",
		},
	}
}

// SSS2 returns the transfer-hook tier: basis-point fees with a cap,
// blacklist enforcement, and a permanent delegate for seizure.
func SSS2() Preset {
	return Preset{
		Name:     "sss-2-transfer-hook",
		Tier:     TierSSS2,
		Decimals: 6,
		Metadata: Metadata{
			Symbol: "SSS2",
			Name:   "SSS Compliant Stablecoin",
		},
		TransferFeeBasisPoints:   50,
		MaxTransferFee:           5_000_000,
		MinTransferAmount:        1_000,
		TransferHookEnabled:      true,
		BlacklistEnabled:         true,
		PermanentDelegateEnabled: true,
	}
}

// SSS3 returns the confidential tier: everything in SSS-2 plus the
// confidential-transfer mint extension with an auditor key slot and
// allowlisted account opening.
func SSS3() Preset {
	p := SSS2()
	p.Name = "sss-3-confidential"
	p.Tier = TierSSS3
	p.Metadata = Metadata{
		Symbol: "SSS3",
		Name:   "SSS Private Stablecoin",
	}
	p.AllowlistEnabled = true
	p.DefaultAccountFrozen = true
	p.Confidential = ConfidentialConfig{
		Enabled:        true,
		AutoApproveNew: false,
	}
	return p
}

// ByTier returns the built-in preset for a tier.
func ByTier(tier Tier) (Preset, error) {
	switch tier {
	case TierSSS1:
		return SSS1(), nil
	case TierSSS2:
		return SSS2(), nil
	case TierSSS3:
		return SSS3(), nil
	default:
		return Preset{}, fmt.Errorf("unknown tier %q", tier)
	}
}

// ParseTier maps user input onto a Tier.
func ParseTier(name string) (Tier, error) {
	switch name {
	case "sss1", string(TierSSS1):
		return TierSSS1, nil
	case "sss2", string(TierSSS2):
		return TierSSS2, nil
	case "sss3", string(TierSSS3):
		return TierSSS3, nil
	default:
		return "", fmt.Errorf("unknown tier %q", name)
	}
}
