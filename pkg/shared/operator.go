package shared

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// OperatorConfig carries the credentials and cluster selection used to sign
// and submit transactions.
type OperatorConfig struct {
	PrivateKey string
	Cluster    string
	RPCURL     string
}

var dotenvLoadOnce sync.Once

// OperatorConfigFromEnv resolves the operator configuration from the
// environment, loading a .env file first if one is discoverable from the
// working directory.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	loadDotEnvIfPresent()

	cluster := firstNonEmptyEnv("SOLANA_CLUSTER", "CLUSTER")
	if cluster == "" {
		cluster = ClusterDevnet
	}

	rpcURL := firstNonEmptyEnv("SOLANA_RPC_URL", "RPC_URL")
	privateKey := firstNonEmptyEnv("SOLANA_KEYPAIR", "SOLANA_PRIVATE_KEY", "PRIVATE_KEY")

	switch strings.ToLower(cluster) {
	case ClusterMainnet, "mainnet":
		if scopedKey := firstNonEmptyEnv(
			"MAINNET_SOLANA_KEYPAIR",
			"MAINNET_SOLANA_PRIVATE_KEY",
			"MAINNET_PRIVATE_KEY",
		); scopedKey != "" {
			privateKey = scopedKey
		}
		if scopedURL := firstNonEmptyEnv("MAINNET_SOLANA_RPC_URL", "MAINNET_RPC_URL"); scopedURL != "" {
			rpcURL = scopedURL
		}
	case ClusterDevnet:
		if scopedKey := firstNonEmptyEnv(
			"DEVNET_SOLANA_KEYPAIR",
			"DEVNET_SOLANA_PRIVATE_KEY",
			"DEVNET_PRIVATE_KEY",
		); scopedKey != "" {
			privateKey = scopedKey
		}
		if scopedURL := firstNonEmptyEnv("DEVNET_SOLANA_RPC_URL", "DEVNET_RPC_URL"); scopedURL != "" {
			rpcURL = scopedURL
		}
	}

	if privateKey == "" {
		return OperatorConfig{}, fmt.Errorf("SOLANA_KEYPAIR is required")
	}

	normalized, err := NormalizeCluster(cluster)
	if err != nil {
		return OperatorConfig{}, err
	}

	return OperatorConfig{
		PrivateKey: privateKey,
		Cluster:    normalized,
		RPCURL:     rpcURL,
	}, nil
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			return
		}

		current := cwd
		for {
			candidate := filepath.Join(current, ".env")
			if _, statErr := os.Stat(candidate); statErr == nil {
				loadDotEnvFile(candidate)
				return
			}

			parent := filepath.Dir(current)
			if parent == current {
				return
			}
			current = parent
		}
	})
}

func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}

		separator := strings.Index(line, "=")
		if separator <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:separator])
		if !isValidEnvKey(key) {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}

		value := strings.TrimSpace(line[separator+1:])
		if len(value) >= 2 {
			first := value[0]
			last := value[len(value)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		if setErr := os.Setenv(key, value); setErr == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		if (character >= 'A' && character <= 'Z') ||
			(character >= 'a' && character <= 'z') ||
			(index > 0 && character >= '0' && character <= '9') ||
			character == '_' {
			continue
		}
		return false
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}
