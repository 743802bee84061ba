package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the transfer-hook configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Fetch and print the hook config account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newHookClient()
			if err != nil {
				return err
			}

			config, err := client.FetchConfig(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Authority:            %s\n", config.Authority)
			fmt.Printf("Fee:                  %d bps\n", config.TransferFeeBasisPoints)
			fmt.Printf("Max fee:              %d\n", config.MaxTransferFee)
			fmt.Printf("Min transfer:         %d\n", config.MinTransferAmount)
			fmt.Printf("Total fees collected: %d\n", config.TotalFeesCollected)
			fmt.Printf("Paused:               %t\n", config.IsPaused)
			fmt.Printf("Blacklist enabled:    %t\n", config.BlacklistEnabled)
			if config.PermanentDelegate != nil {
				fmt.Printf("Permanent delegate:   %s\n", *config.PermanentDelegate)
			} else {
				fmt.Printf("Permanent delegate:   none\n")
			}
			return nil
		},
	}

	cmd.AddCommand(show)
	return cmd
}
