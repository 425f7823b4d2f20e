package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vesta-budget/vesta/internal/cli"
)

func banksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List supported banks",
		Long:  `Display the supported statement sources, their codes, and the file format each expects.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			registry := buildRegistry()

			fmt.Println(cli.FormatTitle("Supported banks"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tFORMAT")
			for _, bank := range registry.Banks() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", bank.Code, bank.Name, bank.Extension)
			}
			return w.Flush()
		},
	}
}
