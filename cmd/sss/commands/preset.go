package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/preset"
)

func presetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Inspect the built-in stablecoin presets",
	}

	show := &cobra.Command{
		Use:   "show <sss1|sss2|sss3>",
		Short: "Print and validate a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := preset.ParseTier(args[0])
			if err != nil {
				return err
			}

			p, err := preset.ByTier(tier)
			if err != nil {
				return err
			}
			if err := preset.Validate(p); err != nil {
				return fmt.Errorf("preset failed validation: %w", err)
			}

			encoded, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))

			fmt.Println("Required Token-2022 extensions:")
			for _, extension := range preset.RequiredExtensions(p) {
				fmt.Printf("  - %s\n", extension)
			}
			return nil
		},
	}

	cmd.AddCommand(show)
	return cmd
}
