// Package token is the client for the SSS stablecoin control program,
// which governs the Token-2022 mint: role assignment, per-minter quotas,
// batch minting through the mint-authority PDA, feature toggles, and
// authority transfer.
//
// The control program is a separate deployment per stablecoin, so the
// client takes the program ID, state account, and mint explicitly instead
// of hardcoding them.
package token
