package app

import "github.com/spf13/cobra"

const settingsHelp = `Settings are read from the environment:
  PHYSUNITS_LOG_LEVEL     debug, info, warn, error or fatal (default info)
  PHYSUNITS_LOG_ENCODING  console or json (default console)
  PHYSUNITS_WORKERS       ledger files summed at once (default 4)
  PHYSUNITS_PRECISION     decimals printed (default 3)
  PHYSUNITS_COLOR         colored output (default false)`

// NewCommand builds the physunits root command around a.
func NewCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "physunits",
		Short:         "Typed physical quantities and ledger totals",
		Long:          "physunits sums ledgers of typed physical records.\n\n" + settingsHelp,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}
	root.AddCommand(NewCommandTotal(a, "total"))
	return root
}

// NewCommandTotal builds the command summing ledger files.
func NewCommandTotal(a *App, name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <ledger.yaml>...",
		Short: "Sum the sections of one or more ledger files",
		Long: `Sum the legs, velocity changes, durations and masses of every ledger file,
print the totals of each file and, for several files, their grand total.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			// Arguments are valid past this point; failures are not usage errors.
			c.SilenceUsage = true
			return a.Total(c.Context(), c.OutOrStdout(), args)
		},
	}
}
