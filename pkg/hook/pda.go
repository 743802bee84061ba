package hook

import (
	"github.com/gagliardetto/solana-go"
)

// Seeds used by the program's PDAs. List entry seeds derive from the
// config's authority, not the config address itself.
var (
	seedConfig    = []byte("config")
	seedWhitelist = []byte("whitelist")
	seedBlacklist = []byte("blacklist")
)

// DeriveConfigAddress returns the hook config PDA for an authority.
func DeriveConfigAddress(authority solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{seedConfig, authority.Bytes()},
		ProgramID,
	)
}

// DeriveListEntryAddress returns the whitelist or blacklist entry PDA for
// an address under the given authority.
func DeriveListEntryAddress(
	listType ListType,
	authority solana.PublicKey,
	address solana.PublicKey,
) (solana.PublicKey, uint8, error) {
	seed := seedWhitelist
	if listType == ListTypeBlacklist {
		seed = seedBlacklist
	}
	return solana.FindProgramAddress(
		[][]byte{seed, authority.Bytes(), address.Bytes()},
		ProgramID,
	)
}
