package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gyeh/schedh/internal/model"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Print the output column catalog",
	RunE:  runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCOLUMN\tFIELD\tSECTION")
	for i, f := range model.Catalog {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, f.Column, f.Name, f.Section)
	}
	return w.Flush()
}
