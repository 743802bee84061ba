// Package anchorutil implements the Anchor ABI conventions the SSS
// programs rely on: 8-byte instruction, account, and event discriminators,
// and decoding of custom program error codes out of JSON-RPC error text.
package anchorutil
