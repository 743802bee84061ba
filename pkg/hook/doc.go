// Package hook is the client for the SSS transfer-hook program, the
// Token-2022 transfer hook enforcing basis-point fees, blacklist and
// whitelist checks, and permanent-delegate bypass on every stablecoin
// transfer.
//
// The package covers the full instruction surface of the deployed program:
// hook initialization, fee configuration, list management, pause control,
// and config teardown. It also decodes the program's account state and
// events, and mirrors the on-chain fee and admission logic so callers can
// preview a transfer without submitting it.
//
// All instruction builders return ready-to-send instructions with the
// account order the program's Accounts structs declare. Client operations
// take a context and block until the transaction reaches the requested
// commitment.
package hook
