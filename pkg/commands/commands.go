package commands

import (
	"log"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ledger/pkg/commands/options"
	"tableflip.dev/ledger/pkg/session"
	"tableflip.dev/ledger/pkg/store"
)

var (
	so = &options.SessionOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: base.Wrap80("Double-entry bookkeeping on the command line."),
		Long: base.Wrap80("Keeps journals of accounts and transactions in a " +
			"single JSON file. Run without a subcommand to open the menus."),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd)
		},
	}

	if err := options.AddSessionArgs(cmd.PersistentFlags(), so); err != nil {
		log.Fatalf("error binding flags: %v", err)
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}

// load resolves configuration after flags are parsed and opens the ledger file.
func load() (store.Config, store.Persistence, session.Policy, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, "", err
	}
	policy, err := session.ParsePolicy(cfg.Fallback())
	if err != nil {
		return nil, nil, "", err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, "", err
	}
	return cfg, p, policy, nil
}
