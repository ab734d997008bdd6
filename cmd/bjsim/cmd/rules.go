package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"monoblackjack/x/blackjack/types"
)

func rulesCmd(c *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the house rules in force",
	}
	cmd.AddCommand(rulesShowCmd(c), rulesValidateCmd(c))
	return cmd
}

func rulesShowCmd(c *cliContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective rules settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := c.rules()
			if err != nil {
				return err
			}
			return printRules(cmd, rules, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func rulesValidateCmd(c *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configured rules and exit non-zero when they are invalid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.rules(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "rules ok")
			return nil
		},
	}
}

func printRules(cmd *cobra.Command, rules types.Rules, asJSON bool) error {
	settings := rules.Settings()
	out := cmd.OutOrStdout()
	if asJSON {
		bz, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(bz))
		return err
	}
	fmt.Fprintf(out, "[%s]\n", rulesSection)
	for _, k := range types.SettingsKeys() {
		fmt.Fprintf(out, "%s = %s\n", k, settings[k])
	}
	return nil
}
