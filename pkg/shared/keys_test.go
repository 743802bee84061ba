package shared

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestParsePrivateKeyBase58(t *testing.T) {
	keypair, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	parsed, err := ParsePrivateKey(keypair.String())
	if err != nil {
		t.Fatalf("ParsePrivateKey failed: %v", err)
	}
	if !parsed.PublicKey().Equals(keypair.PublicKey()) {
		t.Fatalf("parsed key does not match original")
	}
}

func TestParsePrivateKeyJSONArray(t *testing.T) {
	keypair, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	values := make([]int, len(keypair))
	for index, value := range keypair {
		values[index] = int(value)
	}
	literal, err := json.Marshal(values)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	parsed, err := ParsePrivateKey(string(literal))
	if err != nil {
		t.Fatalf("ParsePrivateKey failed: %v", err)
	}
	if !parsed.PublicKey().Equals(keypair.PublicKey()) {
		t.Fatalf("parsed key does not match original")
	}
}

func TestParsePrivateKeyKeygenFile(t *testing.T) {
	keypair, err := solana.NewRandomPrivateKey()
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	values := make([]int, len(keypair))
	for index, value := range keypair {
		values[index] = int(value)
	}
	literal, err := json.Marshal(values)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "id.json")
	if err := os.WriteFile(path, literal, 0o600); err != nil {
		t.Fatalf("write keypair file failed: %v", err)
	}

	parsed, err := ParsePrivateKey(path)
	if err != nil {
		t.Fatalf("ParsePrivateKey failed: %v", err)
	}
	if !parsed.PublicKey().Equals(keypair.PublicKey()) {
		t.Fatalf("parsed key does not match original")
	}
}

func TestParsePrivateKeyRejectsEmpty(t *testing.T) {
	if _, err := ParsePrivateKey("   "); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestParsePrivateKeyRejectsShortBase58(t *testing.T) {
	if _, err := ParsePrivateKey("abc"); err == nil {
		t.Fatalf("expected error for short key")
	}
}
