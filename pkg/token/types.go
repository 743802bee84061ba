package token

import "github.com/gagliardetto/solana-go"

// Role is a permission level stored in a role PDA.
type Role uint8

const (
	RoleAdmin      Role = 0
	RoleMinter     Role = 1
	RoleCompliance Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleMinter:
		return "minter"
	case RoleCompliance:
		return "compliance"
	default:
		return "unknown"
	}
}

// Features is the stablecoin's feature toggle set.
type Features struct {
	TransferFeesEnabled      bool
	BlacklistEnabled         bool
	AllowlistEnabled         bool
	ConfidentialEnabled      bool
	PermanentDelegateEnabled bool
}

// StablecoinState is the control program's root account for one mint.
type StablecoinState struct {
	Mint      solana.PublicKey
	Authority solana.PublicKey
	Features  Features
	Decimals  uint8
	Bump      uint8
}

// RoleAccount records a role grant, one PDA per (holder, mint) pair.
type RoleAccount struct {
	Holder solana.PublicKey
	Role   Role
	Bump   uint8
}

// MinterInfo tracks a minter's quota and usage, one PDA per
// (minter, mint) pair.
type MinterInfo struct {
	Minter solana.PublicKey
	Quota  uint64
	Minted uint64
	Bump   uint8
}

// MintDestination pairs a recipient token account with an amount for
// batch minting.
type MintDestination struct {
	TokenAccount solana.PublicKey
	Amount       uint64
}
