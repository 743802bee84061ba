package shared

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go/rpc"
)

const (
	ClusterMainnet  = "mainnet-beta"
	ClusterDevnet   = "devnet"
	ClusterTestnet  = "testnet"
	ClusterLocalnet = "localnet"
)

// NormalizeCluster maps user-supplied cluster names onto the canonical
// cluster identifiers. An empty name defaults to devnet.
func NormalizeCluster(cluster string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(cluster))
	if normalized == "" {
		return ClusterDevnet, nil
	}

	switch normalized {
	case "mainnet", ClusterMainnet:
		return ClusterMainnet, nil
	case ClusterDevnet, ClusterTestnet, ClusterLocalnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported cluster %q", cluster)
	}
}

// RPCEndpoint returns the public JSON-RPC endpoint for a cluster.
func RPCEndpoint(cluster string) (string, error) {
	normalized, err := NormalizeCluster(cluster)
	if err != nil {
		return "", err
	}

	switch normalized {
	case ClusterMainnet:
		return rpc.MainNetBeta_RPC, nil
	case ClusterTestnet:
		return rpc.TestNet_RPC, nil
	case ClusterLocalnet:
		return rpc.LocalNet_RPC, nil
	default:
		return rpc.DevNet_RPC, nil
	}
}

// WSEndpoint returns the public websocket endpoint for a cluster.
func WSEndpoint(cluster string) (string, error) {
	normalized, err := NormalizeCluster(cluster)
	if err != nil {
		return "", err
	}

	switch normalized {
	case ClusterMainnet:
		return rpc.MainNetBeta_WS, nil
	case ClusterTestnet:
		return rpc.TestNet_WS, nil
	case ClusterLocalnet:
		return rpc.LocalNet_WS, nil
	default:
		return rpc.DevNet_WS, nil
	}
}

// NewRPCClient creates an RPC client for the given cluster. A non-empty
// endpoint overrides the cluster's public endpoint.
func NewRPCClient(cluster string, endpoint string) (*rpc.Client, error) {
	resolved := strings.TrimSpace(endpoint)
	if resolved == "" {
		var err error
		resolved, err = RPCEndpoint(cluster)
		if err != nil {
			return nil, err
		}
	}

	return rpc.New(resolved), nil
}
