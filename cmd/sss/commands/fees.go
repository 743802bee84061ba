package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func feesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fees",
		Short: "Manage the transfer fee configuration",
	}

	var feeBps uint16
	var maxFee uint64
	var minTransfer uint64

	update := &cobra.Command{
		Use:   "update",
		Short: "Replace the fee parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newHookClient()
			if err != nil {
				return err
			}

			logger.Info().
				Uint16("fee_bps", feeBps).
				Uint64("max_fee", maxFee).
				Uint64("min_transfer", minTransfer).
				Msg("updating fee config")

			signature, err := client.UpdateFeeConfig(cmd.Context(), feeBps, maxFee, minTransfer)
			if err != nil {
				return err
			}

			fmt.Printf("Fee config updated.\nSignature: %s\n", signature)
			return nil
		},
	}

	update.Flags().Uint16Var(&feeBps, "fee-bps", 0, "transfer fee in basis points")
	update.Flags().Uint64Var(&maxFee, "max-fee", 0, "maximum fee per transfer, base units")
	update.Flags().Uint64Var(&minTransfer, "min-transfer", 0, "minimum transfer amount, base units")
	_ = update.MarkFlagRequired("fee-bps")
	_ = update.MarkFlagRequired("max-fee")

	cmd.AddCommand(update)
	return cmd
}
