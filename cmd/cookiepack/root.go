package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cookiepack",
		Short: "cookiepack packs all cookies of a web application into a single cookie.",
		Long: `cookiepack runs in front of an application whose clients can only carry one
cookie. Every cookie the application sets is packed into one aggregate cookie
and unpacked again on the next request.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(
		newServeCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
	)
	return cmd
}
