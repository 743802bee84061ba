package preset

// Tier identifies an SSS stablecoin feature tier.
type Tier string

const (
	TierSSS1 Tier = "sss-1"
	TierSSS2 Tier = "sss-2"
	TierSSS3 Tier = "sss-3"
)

// MaxFeeBasisPoints is the on-chain ceiling for the transfer fee rate
// (1000 bps = 10%).
const MaxFeeBasisPoints = 1000

// MaxDecimals is the largest mint decimal count the presets allow.
const MaxDecimals = 9

// ConfidentialConfig carries the confidential-transfer mint extension
// settings for SSS-3 presets. The range-proof machinery lives on chain;
// the preset only records enablement and the auditor key.
type ConfidentialConfig struct {
	Enabled           bool   `json:"enabled"`
	AutoApproveNew    bool   `json:"auto_approve_new_accounts"`
	AuditorElGamalKey string `json:"auditor_elgamal_key,omitempty"`
}

// Metadata carries the display metadata attached to the mint.
type Metadata struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	URI    string `json:"uri,omitempty"`
}

// Preset is a named bundle of feature flags and fee parameters describing
// one stablecoin variant.
type Preset struct {
	Name     string   `json:"name"`
	Tier     Tier     `json:"tier"`
	Decimals uint8    `json:"decimals"`
	Metadata Metadata `json:"metadata"`

	TransferFeeBasisPoints uint16 `json:"transfer_fee_basis_points"`
	MaxTransferFee         uint64 `json:"max_transfer_fee"`
	MinTransferAmount      uint64 `json:"min_transfer_amount"`

	TransferHookEnabled      bool `json:"transfer_hook_enabled"`
	BlacklistEnabled         bool `json:"blacklist_enabled"`
	AllowlistEnabled         bool `json:"allowlist_enabled"`
	PermanentDelegateEnabled bool `json:"permanent_delegate_enabled"`
	DefaultAccountFrozen     bool `json:"default_account_frozen"`

	Confidential ConfidentialConfig `json:"confidential"`
}
