package shared

import (
	"testing"

	"github.com/gagliardetto/solana-go/rpc"
)

func TestNormalizeClusterDefaultsToDevnet(t *testing.T) {
	cluster, err := NormalizeCluster("")
	if err != nil {
		t.Fatalf("NormalizeCluster failed: %v", err)
	}
	if cluster != ClusterDevnet {
		t.Fatalf("unexpected cluster: %s", cluster)
	}
}

func TestNormalizeClusterAliases(t *testing.T) {
	cluster, err := NormalizeCluster("  Mainnet ")
	if err != nil {
		t.Fatalf("NormalizeCluster failed: %v", err)
	}
	if cluster != ClusterMainnet {
		t.Fatalf("unexpected cluster: %s", cluster)
	}
}

func TestNormalizeClusterRejectsUnknown(t *testing.T) {
	if _, err := NormalizeCluster("moonnet"); err == nil {
		t.Fatalf("expected error for unknown cluster")
	}
}

func TestRPCEndpoint(t *testing.T) {
	endpoint, err := RPCEndpoint(ClusterMainnet)
	if err != nil {
		t.Fatalf("RPCEndpoint failed: %v", err)
	}
	if endpoint != rpc.MainNetBeta_RPC {
		t.Fatalf("unexpected endpoint: %s", endpoint)
	}

	endpoint, err = RPCEndpoint("")
	if err != nil {
		t.Fatalf("RPCEndpoint failed: %v", err)
	}
	if endpoint != rpc.DevNet_RPC {
		t.Fatalf("unexpected default endpoint: %s", endpoint)
	}
}

func TestWSEndpoint(t *testing.T) {
	endpoint, err := WSEndpoint(ClusterTestnet)
	if err != nil {
		t.Fatalf("WSEndpoint failed: %v", err)
	}
	if endpoint != rpc.TestNet_WS {
		t.Fatalf("unexpected endpoint: %s", endpoint)
	}
}

func TestNewRPCClientHonorsOverride(t *testing.T) {
	client, err := NewRPCClient(ClusterDevnet, "http://127.0.0.1:8899")
	if err != nil {
		t.Fatalf("NewRPCClient failed: %v", err)
	}
	if client == nil {
		t.Fatalf("expected client")
	}
}
