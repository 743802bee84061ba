package commands

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/hook"
	"github.com/yoiioy700/stablecoin-sdk-go/pkg/shared"
)

var (
	cluster string
	rpcURL  string
	keypair string

	logger zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "sss",
		Short:         "Operator CLI for the SSS stablecoin transfer hook",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cluster, "cluster", "", "cluster (mainnet-beta, devnet, testnet, localnet)")
	root.PersistentFlags().StringVar(&rpcURL, "rpc-url", "", "RPC endpoint override")
	root.PersistentFlags().StringVar(&keypair, "keypair", "", "operator keypair (base58, JSON array, or file path)")

	root.AddCommand(
		initializeCmd(),
		configCmd(),
		feesCmd(),
		listCmd(),
		pauseCmd(),
		resumeCmd(),
		delegateCmd(),
		presetCmd(),
	)

	return root.Execute()
}

// newHookClient resolves operator credentials from flags, falling back to
// the environment and .env discovery.
func newHookClient() (*hook.Client, error) {
	config := hook.ClientConfig{
		OperatorPrivateKey: strings.TrimSpace(keypair),
		Cluster:            cluster,
		RPCURL:             rpcURL,
	}

	if config.OperatorPrivateKey == "" {
		operator, err := shared.OperatorConfigFromEnv()
		if err != nil {
			return nil, err
		}
		config.OperatorPrivateKey = operator.PrivateKey
		if config.Cluster == "" {
			config.Cluster = operator.Cluster
		}
		if config.RPCURL == "" {
			config.RPCURL = operator.RPCURL
		}
	}

	return hook.NewClient(config)
}
