package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lyalpha/arxivscraper/internal/taxonomy"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the harvestable arXiv categories",
	Long: `Categories prints every registered category group with its OAI-PMH set
identifier and, with --subjects, the subject classes accepted as
"group.subject" harvest arguments.`,
	Run: func(cmd *cobra.Command, args []string) {
		withSubjects, _ := cmd.Flags().GetBool("subjects")

		fmt.Fprintf(os.Stdout, "%-10s  %-18s  %s\n", "Code", "Set", "Name")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 72))
		for _, c := range taxonomy.All() {
			fmt.Fprintf(os.Stdout, "%-10s  %-18s  %s\n", c.Code, c.SetID, c.Name)
			if !withSubjects {
				continue
			}
			for _, sc := range taxonomy.Subcodes(c.Code) {
				fmt.Fprintf(os.Stdout, "  %s.%s\n", c.Code, sc)
			}
		}
	},
}

func init() {
	categoriesCmd.Flags().Bool("subjects", false, "also list subject classes per group")

	rootCmd.AddCommand(categoriesCmd)
}
