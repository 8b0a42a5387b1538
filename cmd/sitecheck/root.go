package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sitecheck",
		Short: "Browser checks for the marketing site homepage and contact form",
		Long: `sitecheck drives a headless Chrome against the marketing site and verifies
that the homepage loads with the expected title and that the contact form
refuses a submission without a company email.`,
		// Failures are reported in the summary; usage would only add noise.
		SilenceUsage: true,
		Version:      version,
	}
	root.SetVersionTemplate(`{{printf "sitecheck version %s\n" .Version}}`)

	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sitecheck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sitecheck version %s\n", version)
			return err
		},
	}
}
