package token

import "github.com/gagliardetto/solana-go"

var (
	seedRole          = []byte("role")
	seedMinter        = []byte("minter")
	seedMintAuthority = []byte("mint_authority")
)

// DeriveRoleAddress returns the role PDA for a holder under a mint.
func DeriveRoleAddress(
	programID solana.PublicKey,
	holder solana.PublicKey,
	mint solana.PublicKey,
) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{seedRole, holder.Bytes(), mint.Bytes()},
		programID,
	)
}

// DeriveMinterInfoAddress returns the minter-info PDA for a minter under
// a mint.
func DeriveMinterInfoAddress(
	programID solana.PublicKey,
	minter solana.PublicKey,
	mint solana.PublicKey,
) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{seedMinter, minter.Bytes(), mint.Bytes()},
		programID,
	)
}

// DeriveMintAuthorityAddress returns the PDA that acts as the mint
// authority, derived from the state account.
func DeriveMintAuthorityAddress(
	programID solana.PublicKey,
	state solana.PublicKey,
) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress(
		[][]byte{seedMintAuthority, state.Bytes()},
		programID,
	)
}
