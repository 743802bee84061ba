// Package preset defines the tiered configuration presets for the SSS
// stablecoin family and the validation rules that gate them.
//
// Three tiers are defined:
//
//   - SSS-1: plain Token-2022 stablecoin, no transfer hook
//   - SSS-2: transfer hook attached, basis-point fees and blacklist
//   - SSS-3: SSS-2 plus the confidential-transfer mint extension
//
// Presets are immutable value records: constructed, read, validated. They
// never touch the chain; pkg/hook and pkg/token consume them when building
// transactions.
package preset
