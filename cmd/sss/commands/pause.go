package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the transfer hook",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newHookClient()
			if err != nil {
				return err
			}

			signature, err := client.SetPaused(cmd.Context(), true)
			if err != nil {
				return err
			}

			fmt.Printf("Hook paused.\nSignature: %s\n", signature)
			return nil
		},
	}
}

func resumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the transfer hook",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newHookClient()
			if err != nil {
				return err
			}

			signature, err := client.SetPaused(cmd.Context(), false)
			if err != nil {
				return err
			}

			fmt.Printf("Hook resumed.\nSignature: %s\n", signature)
			return nil
		},
	}
}
