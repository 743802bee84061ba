// The Stablecoin SDK for Go is a client library for the SSS family of
// Token-2022 stablecoins on Solana. It provides tiered configuration
// presets, Anchor ABI helpers, and typed clients for the deployed
// transfer-hook and stablecoin control programs.
//
// # Packages
//
//   - pkg/preset: SSS-1/2/3 stablecoin presets and validation
//   - pkg/hook: transfer-hook program client (fees, whitelist, blacklist)
//   - pkg/token: stablecoin control program client (roles, minter quotas)
//   - pkg/anchorutil: Anchor discriminators and program error decoding
//   - pkg/shared: cluster endpoints, operator credentials, key parsing
//
// # Tiers
//
// SSS-1 is a plain Token-2022 stablecoin. SSS-2 attaches the transfer-hook
// program for fee collection and blacklist enforcement. SSS-3 additionally
// enables the confidential-transfer mint extension with an auditor key.
//
// # Installation
//
//	go get github.com/yoiioy700/stablecoin-sdk-go@latest
package stablecoin_sdk_go
