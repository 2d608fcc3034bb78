// Package cli implements the faqctl command-line front-end.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/studentnest/internal/domain/faq"
	logpkg "github.com/kailas-cloud/studentnest/internal/logger"
	"github.com/kailas-cloud/studentnest/internal/repository/catalog"
	askuc "github.com/kailas-cloud/studentnest/internal/usecase/ask"
	browseuc "github.com/kailas-cloud/studentnest/internal/usecase/browse"
)

// app holds the state shared by subcommands after flag parsing.
type app struct {
	catalogPath string
	logLevel    string

	logger *zap.Logger
	ask    *askuc.Service
	browse *browseuc.Service
}

// NewRootCmd builds the faqctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "faqctl",
		Short: "Ask and browse the StudentNest knowledge catalog",
		Long: `faqctl answers student questions from the StudentNest FAQ catalog.
Questions are matched lexically against every record; when no single record
stands out, the closest few are combined into one answer.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog YAML file (default: built-in catalog)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newAskCmd(a),
		newBrowseCmd(a),
		newCategoriesCmd(a),
		newValidateCmd(),
		newVersionCmd(),
	)
	return root
}

// load builds the services once per invocation and returns a context carrying the logger.
func (a *app) load(cmd *cobra.Command) (context.Context, error) {
	if a.ask == nil {
		logger, err := logpkg.NewLogger("cli", a.logLevel)
		if err != nil {
			return nil, err
		}
		a.logger = logger

		cat, err := catalog.Load(a.catalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		a.setCatalog(cat)
	}

	return logpkg.ContextWithLogger(cmd.Context(), a.logger), nil
}

func (a *app) setCatalog(cat faq.Catalog) {
	a.ask = askuc.New(cat, askuc.NewScorer(nil), nil)
	a.browse = browseuc.New(cat)
}
