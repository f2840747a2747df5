package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/app"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/pipeline"
	"github.com/ranjitdasofficial/kiit-connect-circle/pkg/config"
	"github.com/ranjitdasofficial/kiit-connect-circle/pkg/logger"
)

// options holds the flags shared by every page command.
type options struct {
	configPath string
	query      string
	tab        string
	filters    []string
	verbose    bool

	// clock overrides the wall clock; tests pin it.
	clock   classifier.Clock
	logger  *zap.Logger
	service *catalog.Service
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "circle",
		Short: "Browse the KIIT alumni network from the terminal",
		Long: `circle evaluates the same listing pages as the Telegram bot: the alumni
directory, the job board, events, communities and conversations.

Examples:
  circle alumni --query priya
  circle jobs --tab saved --filter employmentType=internship
  circle events --from 2024-03-01 --to 2024-03-31 --filter eventType=virtual`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if opts.verbose {
				cfg.Log.Level = "debug"
			}
			if opts.logger == nil {
				if opts.logger, err = logger.New(cfg.Log); err != nil {
					return err
				}
			}
			opts.service, err = app.NewService(cmd.Context(), cfg, opts.clock, opts.logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "config.yaml", "path to the config file")
	flags.StringVarP(&opts.query, "query", "q", "", "search text")
	flags.StringVar(&opts.tab, "tab", "", "tab of the page")
	flags.StringArrayVarP(&opts.filters, "filter", "f", nil, "facet selection as group=option, repeatable")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newAlumniCmd(opts),
		newProfileCmd(opts),
		newJobsCmd(opts),
		newJobCmd(opts),
		newEventsCmd(opts),
		newCommunitiesCmd(opts),
		newMessagesCmd(opts),
		newThreadCmd(opts),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// pipelineQuery builds the pipeline query from the shared flags.
func (o *options) pipelineQuery() (pipeline.Query, error) {
	sel, err := parseFilters(o.filters)
	if err != nil {
		return pipeline.Query{}, err
	}
	return pipeline.Query{Search: o.query, Facets: sel}, nil
}

// parseFilters turns group=option pairs into a selection. Repeating a pair
// selects it once.
func parseFilters(pairs []string) (pipeline.Selection, error) {
	sel := pipeline.Selection{}
	for _, pair := range pairs {
		group, option, ok := strings.Cut(pair, "=")
		group, option = strings.TrimSpace(group), strings.TrimSpace(option)
		if !ok || group == "" || option == "" {
			return nil, fmt.Errorf("invalid filter %q, want group=option", pair)
		}
		selected := false
		for _, o := range sel[group] {
			selected = selected || o == option
		}
		if !selected {
			sel[group] = append(sel[group], option)
		}
	}
	return sel, nil
}

func requireNoTab(opts *options, page catalog.Page) error {
	if opts.tab != "" {
		return fmt.Errorf("%w: the %s page has no tabs", catalog.ErrUnknownTab, page)
	}
	if len(opts.filters) > 0 {
		return fmt.Errorf("%w: the %s page has no filters", catalog.ErrUnknownFacet, page)
	}
	return nil
}
