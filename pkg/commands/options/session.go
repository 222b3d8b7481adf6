package options

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tableflip.dev/ledger/pkg/session"
)

// SessionOptions are the flags shared by every command that reads the ledger.
// Each one is bound to the viper key of the same name so it overrides
// .ledger.yaml and LEDGER_* env vars.
type SessionOptions struct {
	Path     string
	Currency string
	Fallback session.Policy
}

func AddSessionArgs(flags *pflag.FlagSet, o *SessionOptions) error {
	flags.StringVar(&o.Path, "path", "",
		"Ledger file to read and write. Defaults to ./db.json.")
	flags.StringVar(&o.Currency, "currency", "",
		"ISO code of the currency new account changes are recorded in.")
	flags.Var(&o.Fallback, "fallback",
		"Page to return to after a failure, one of 'ancestor' or 'legacy'.")

	for _, name := range []string{"path", "currency", "fallback"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
