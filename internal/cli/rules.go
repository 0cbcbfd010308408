package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/actornet/internal/rules"
)

var rulesOut string

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate rule sets",
	Long: `Every finding comes from a versioned rule set: pattern libraries, the actor
lexicon, black-box, power, network, timeline and localization tables.

Dump the built-in set with 'rules show', edit it, check it with
'rules check', and use it with --rules.`,
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active rule set as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadRuleSet()
		if err != nil {
			return err
		}
		if rs == nil {
			rs = rules.Default()
		}

		data, err := rs.Marshal()
		if err != nil {
			return err
		}

		if rulesOut != "" {
			if err := os.WriteFile(rulesOut, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", rulesOut, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote rule set %s to %s\n", rs.Version, rulesOut)
			return nil
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a rule set file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := rules.Load(args[0])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: rule set %s is valid (%d libraries, %d actor labels)\n",
			args[0], rs.Version, len(rs.Libraries), len(rs.Lexicon.ActorLabels))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesCheckCmd)

	rulesShowCmd.Flags().StringVarP(&rulesOut, "out", "o", "", "write to a file instead of stdout")
}
