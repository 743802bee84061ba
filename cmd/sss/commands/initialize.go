package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/hook"
)

func initializeCmd() *cobra.Command {
	var feeBps uint16
	var maxFee uint64

	cmd := &cobra.Command{
		Use:   "initialize",
		Short: "Create the transfer-hook config for the operator",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newHookClient()
			if err != nil {
				return err
			}

			logger.Info().
				Uint16("fee_bps", feeBps).
				Uint64("max_fee", maxFee).
				Msg("initializing transfer hook")

			result, err := client.Initialize(cmd.Context(), feeBps, maxFee)
			if errors.Is(err, hook.ErrAlreadyInitialized) {
				fmt.Println("Hook config already initialized; nothing to do.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("Initialized.\nConfig: %s\nSignature: %s\n", result.ConfigAddress, result.Signature)
			return nil
		},
	}

	cmd.Flags().Uint16Var(&feeBps, "fee-bps", 50, "transfer fee in basis points")
	cmd.Flags().Uint64Var(&maxFee, "max-fee", 5_000_000, "maximum fee per transfer, base units")
	return cmd
}
