package commands

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
)

func delegateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delegate",
		Short: "Manage the permanent delegate",
	}

	set := &cobra.Command{
		Use:   "set <address>",
		Short: "Set the permanent delegate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delegate, err := solana.PublicKeyFromBase58(args[0])
			if err != nil {
				return fmt.Errorf("invalid delegate address: %w", err)
			}

			client, err := newHookClient()
			if err != nil {
				return err
			}

			logger.Info().Str("delegate", delegate.String()).Msg("setting permanent delegate")

			signature, err := client.SetPermanentDelegate(cmd.Context(), &delegate)
			if err != nil {
				return err
			}

			fmt.Printf("Delegate set.\nSignature: %s\n", signature)
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Clear the permanent delegate",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newHookClient()
			if err != nil {
				return err
			}

			signature, err := client.SetPermanentDelegate(cmd.Context(), nil)
			if err != nil {
				return err
			}

			fmt.Printf("Delegate cleared.\nSignature: %s\n", signature)
			return nil
		},
	}

	cmd.AddCommand(set, clear)
	return cmd
}
