package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/skins"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the registered template skins",
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFRAME\tMOTIF")
	for _, skin := range skins.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", skin.ID, skin.Name, skin.Frame, skin.Motif)
	}
	return w.Flush()
}
