package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr, os.Stdin).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer, in io.Reader) *cobra.Command {
	s := newSession(out, errOut, in)

	rootCmd := &cobra.Command{
		Use:           "hospital-console",
		Short:         "Terminal dashboard for the hospital administration API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.connect()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.flags.baseURL, "api-url", "", "API root, overrides API_BASE_URL")
	flags.StringVar(&s.flags.token, "token", "", "bearer token, overrides API_TOKEN")
	flags.BoolVar(&s.flags.dedupe, "dedupe", false, "send an Idempotency-Key with every submitted draft")
	flags.BoolVarP(&s.flags.verbose, "verbose", "v", false, "log every API call")

	rootCmd.AddCommand(
		patientsCmd(s),
		doctorsCmd(s),
		staffCmd(s),
		appointmentsCmd(s),
		recordsCmd(s),
		billsCmd(s),
		inventoryCmd(s),
		statsCmd(s),
	)

	return rootCmd
}
