package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/printers"
	"tableflip.dev/ledger/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive menus.",
		Example: `
ledger ui
ledger ui --fallback=legacy --path=~/books.json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cfg, p, policy, err := load()
	if err != nil {
		return err
	}

	printers.DisableColorUnlessTerminal()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	i := ui.UI{
		Persistence: p,
		Currency:    cfg.Currency(),
		Fallback:    policy,
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
	}
	return i.Do(ctx)
}
