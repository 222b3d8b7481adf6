package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/commands/options"
	"tableflip.dev/ledger/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}
	journal := ""

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every journal without prompting.",
		Example: `
ledger list
ledger list --journal=Household --show-id
ledger list --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, _, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				ShowID:      ido.ShowID,
				Journal:     journal,
				Output:      oo.Format(),
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().StringVarP(&journal, "journal", "j", "",
		"Only list the journal with this name.")

	topLevel.AddCommand(cmd)
}
