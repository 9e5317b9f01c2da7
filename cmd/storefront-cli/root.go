package main

import (
	"os"
	"time"

	"github.com/actuallystonmai/storefront-assistant/internal/cache"
	"github.com/actuallystonmai/storefront-assistant/internal/catalog"
	"github.com/actuallystonmai/storefront-assistant/internal/logging"
	"github.com/actuallystonmai/storefront-assistant/internal/model"
	"github.com/actuallystonmai/storefront-assistant/internal/service"
	"github.com/spf13/cobra"
)

type options struct {
	catalogFile string
	jsonOutput  bool
	noColor     bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "storefront-cli",
		Short:         "Query the storefront assistant from the terminal",
		Long:          "Search the catalog, get recommendations and chat with the shopping assistant without running the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.catalogFile, "catalog", "c", os.Getenv("CATALOG_FILE"), "YAML catalog file (defaults to built-in products)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print JSON instead of text")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSearchCmd(opts),
		newRecommendCmd(opts),
		newBoughtWithCmd(opts),
		newChatCmd(opts),
	)
	return root
}

// newService builds an in-process service with no simulated latency.
func (o *options) newService(cmd *cobra.Command) (*service.Service, error) {
	level := "error"
	if o.verbose {
		level = "debug"
	}
	log := logging.New(logging.Config{
		Level:   level,
		Format:  "console",
		Output:  cmd.ErrOrStderr(),
		Service: "storefront-cli",
	})

	cat := catalog.Default()
	if o.catalogFile != "" {
		c, err := catalog.LoadFile(o.catalogFile)
		if err != nil {
			return nil, err
		}
		cat = c
	}

	client := model.NewClient(cat, model.Options{Delay: model.NoDelay})
	return service.NewService(cache.NewCache(cache.NewMemoryStore(0), time.Minute), client, log), nil
}

func (o *options) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), o.jsonOutput, o.noColor)
}
