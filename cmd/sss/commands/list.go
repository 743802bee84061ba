package commands

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	"github.com/yoiioy700/stablecoin-sdk-go/pkg/hook"
)

func parseListType(name string) (hook.ListType, error) {
	switch name {
	case "whitelist":
		return hook.ListTypeWhitelist, nil
	case "blacklist":
		return hook.ListTypeBlacklist, nil
	default:
		return 0, fmt.Errorf("list type must be whitelist or blacklist, got %q", name)
	}
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage whitelist and blacklist entries",
	}

	var listTypeName string

	add := &cobra.Command{
		Use:   "add <address>",
		Short: "Add an address to a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listType, err := parseListType(listTypeName)
			if err != nil {
				return err
			}
			address, err := solana.PublicKeyFromBase58(args[0])
			if err != nil {
				return fmt.Errorf("invalid address: %w", err)
			}

			client, err := newHookClient()
			if err != nil {
				return err
			}

			logger.Info().
				Str("list", listType.String()).
				Str("address", address.String()).
				Msg("adding list entry")

			signature, err := client.AddToList(cmd.Context(), listType, address)
			if err != nil {
				return err
			}

			fmt.Printf("Added to %s.\nSignature: %s\n", listType, signature)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <address>",
		Short: "Remove an address from a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listType, err := parseListType(listTypeName)
			if err != nil {
				return err
			}
			address, err := solana.PublicKeyFromBase58(args[0])
			if err != nil {
				return fmt.Errorf("invalid address: %w", err)
			}

			client, err := newHookClient()
			if err != nil {
				return err
			}

			logger.Info().
				Str("list", listType.String()).
				Str("address", address.String()).
				Msg("removing list entry")

			signature, err := client.RemoveFromList(cmd.Context(), listType, address)
			if err != nil {
				return err
			}

			fmt.Printf("Removed from %s.\nSignature: %s\n", listType, signature)
			return nil
		},
	}

	for _, sub := range []*cobra.Command{add, remove} {
		sub.Flags().StringVar(&listTypeName, "type", "blacklist", "list type (whitelist or blacklist)")
	}

	cmd.AddCommand(add, remove)
	return cmd
}
