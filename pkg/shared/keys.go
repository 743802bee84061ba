package shared

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// ParsePrivateKey parses an operator private key from any of the formats
// the Solana tooling produces: a base58-encoded 64-byte secret key, a JSON
// byte-array literal, or a path to a solana-keygen JSON file.
func ParsePrivateKey(raw string) (solana.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return nil, fmt.Errorf("private key cannot be empty")
	}

	if strings.HasPrefix(candidate, "[") {
		key, jsonErr := privateKeyFromJSONArray(candidate)
		if jsonErr == nil {
			return key, nil
		}
		return nil, jsonErr
	}

	if _, statErr := os.Stat(candidate); statErr == nil {
		key, fileErr := solana.PrivateKeyFromSolanaKeygenFile(candidate)
		if fileErr != nil {
			return nil, fmt.Errorf("failed to read keypair file %s: %w", candidate, fileErr)
		}
		return key, nil
	}

	decoded, b58Err := base58.Decode(candidate)
	if b58Err != nil {
		return nil, fmt.Errorf("failed to parse private key as base58 (%v) or keypair file", b58Err)
	}
	if len(decoded) != 64 {
		return nil, fmt.Errorf("base58 private key must decode to 64 bytes, got %d", len(decoded))
	}

	return solana.PrivateKey(decoded), nil
}

func privateKeyFromJSONArray(candidate string) (solana.PrivateKey, error) {
	var values []int
	if err := json.Unmarshal([]byte(candidate), &values); err != nil {
		return nil, fmt.Errorf("invalid JSON keypair literal: %w", err)
	}
	if len(values) != 64 {
		return nil, fmt.Errorf("JSON keypair must contain 64 bytes, got %d", len(values))
	}

	key := make([]byte, len(values))
	for index, value := range values {
		if value < 0 || value > 255 {
			return nil, fmt.Errorf("JSON keypair byte %d out of range: %d", index, value)
		}
		key[index] = byte(value)
	}
	return solana.PrivateKey(key), nil
}
