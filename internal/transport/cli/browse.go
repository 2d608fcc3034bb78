package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/studentnest/internal/repository/catalog"
	"github.com/kailas-cloud/studentnest/internal/version"
)

func newBrowseCmd(a *app) *cobra.Command {
	var term, category string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List catalog records, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.load(cmd); err != nil {
				return err
			}

			recs := a.browse.Filter(term, category)
			if len(recs) == 0 {
				cmd.Println("No records found.")
				return nil
			}
			for _, r := range recs {
				cmd.Printf("[%s] (%s) %s\n", r.ID(), r.Category(), r.Question())
			}
			cmd.Printf("\n%d record(s)\n", len(recs))
			return nil
		},
	}
	cmd.Flags().StringVarP(&term, "term", "t", "", "substring to match in question, answer or tags")
	cmd.Flags().StringVarP(&category, "category", "c", "all", "category to show")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories present in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.load(cmd); err != nil {
				return err
			}
			for _, c := range a.browse.Categories() {
				cmd.Println(c)
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a catalog YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(args[0])
			if err != nil {
				return fmt.Errorf("invalid catalog: %w", err)
			}
			cmd.Printf("ok: %d records, %d categories\n", cat.Len(), len(cat.Categories()))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("faqctl version %s\n", version.String())
		},
	}
}
