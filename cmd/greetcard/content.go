package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"greetcard/internal/content"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a card file",
		Long: `Parse a card YAML file and report problems such as an empty header,
messages without a key or photos without a URL.`,
		Example: `  greetcard validate card.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := content.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d messages, %d photos)\n",
				args[0], len(c.Messages), len(c.Photos))
			return nil
		},
	}
}

func newExportDefaultCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export-default",
		Short: "Print the built-in card as YAML",
		Long: `Print the built-in card. Redirect it to a file and edit it to make your
own card.`,
		Example: `  greetcard export-default > card.yaml
  greetcard --content card.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(content.DefaultYAML())
			return err
		},
	}
}
