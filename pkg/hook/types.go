package hook

import (
	"github.com/gagliardetto/solana-go"
)

// ProgramIDBase58 is the deployed transfer-hook program.
const ProgramIDBase58 = "FSkkSmrThcLpU9Uybrn4xcpbQKswUJn7KvoUQBsLPExD"

// ProgramID is the deployed transfer-hook program ID.
var ProgramID = solana.MustPublicKeyFromBase58(ProgramIDBase58)

// FeeDenominator converts basis points into a fraction.
const FeeDenominator = 10_000

// MaxFeeBasisPoints is the largest fee rate the program accepts (10%).
const MaxFeeBasisPoints = 1_000

// ListType discriminates whitelist from blacklist entries.
type ListType uint8

const (
	ListTypeWhitelist ListType = 0
	ListTypeBlacklist ListType = 1
)

func (t ListType) String() string {
	switch t {
	case ListTypeWhitelist:
		return "whitelist"
	case ListTypeBlacklist:
		return "blacklist"
	default:
		return "unknown"
	}
}

// Config is the hook's configuration account, one per authority.
type Config struct {
	Authority              solana.PublicKey
	TransferFeeBasisPoints uint16
	MaxTransferFee         uint64
	MinTransferAmount      uint64
	TotalFeesCollected     uint64
	Bump                   uint8
	IsPaused               bool
	PermanentDelegate      *solana.PublicKey `bin:"optional"`
	BlacklistEnabled       bool
}

// ListEntry is a whitelist or blacklist membership account, one per
// (authority, address) pair.
type ListEntry struct {
	Address   solana.PublicKey
	IsActive  bool
	EntryType ListType
	CreatedAt int64
	Bump      uint8
}

// WhitelistEntry is the legacy whitelist account layout still readable on
// accounts created before the unified list entry existed.
type WhitelistEntry struct {
	Address       solana.PublicKey
	IsWhitelisted bool
	AddedAt       int64
	Bump          uint8
}

// BlacklistEntry is the legacy blacklist account layout.
type BlacklistEntry struct {
	Address       solana.PublicKey
	IsBlacklisted bool
	CreatedAt     int64
	Bump          uint8
}
