package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/Xunop/e-livraria/internal/config"
	"github.com/Xunop/e-livraria/internal/http/response"
	"github.com/Xunop/e-livraria/internal/log"
	"github.com/Xunop/e-livraria/internal/model"
	"github.com/Xunop/e-livraria/internal/query"
	"github.com/Xunop/e-livraria/internal/server"
	"github.com/Xunop/e-livraria/internal/store"
	"github.com/Xunop/e-livraria/internal/util"
	"github.com/Xunop/e-livraria/internal/version"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	greetingBanner = `
███████       ██      ██ ██    ██ ██████   █████  ██████  ██  █████
██            ██      ██ ██    ██ ██   ██ ██   ██ ██   ██ ██ ██   ██
█████   █████ ██      ██ ██    ██ ██████  ███████ ██████  ██ ███████
██            ██      ██  ██  ██  ██   ██ ██   ██ ██   ██ ██ ██   ██
███████       ███████ ██   ████   ██████  ██   ██ ██   ██ ██ ██   ██
`
)

var (
	configFile string
	catalog    string
	host       string
	port       int

	search  string
	genres  []string
	authors []string
	sortBy  string
	page    int
	view    string

	rootCmd = &cobra.Command{
		Use:   "e-livraria",
		Short: "E-Livraria is a demo book storefront",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetCurrentVersion())
		},
	}

	booksCmd = &cobra.Command{
		Use:   "books",
		Short: "Query the catalog and print one page of results",
		Run: func(cmd *cobra.Command, args []string) {
			printBooks(cmd)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (toml, yaml or json)")
	rootCmd.PersistentFlags().StringVar(&catalog, "catalog", "", "catalog source, a JSON file or a SQLite database")
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "address to listen on")
	rootCmd.PersistentFlags().IntVarP(&port, "port", "p", 0, "port to listen on")

	booksCmd.Flags().StringVarP(&search, "query", "q", "", "search title, author or genre")
	booksCmd.Flags().StringSliceVar(&genres, "genre", nil, "genres to keep")
	booksCmd.Flags().StringSliceVar(&authors, "author", nil, "authors to keep")
	booksCmd.Flags().StringVar(&sortBy, "sort", string(model.SortRelevance), "relevance, price_asc, price_desc, rating_desc or recent")
	booksCmd.Flags().IntVar(&page, "page", 1, "page to print")
	booksCmd.Flags().StringVar(&view, "view", string(model.ViewList), "list or grid, selects the page size")

	rootCmd.AddCommand(serveCmd, versionCmd, booksCmd)
}

func loadConfig(cmd *cobra.Command) error {
	var err error
	if configFile != "" {
		_, err = config.ParseFile(configFile)
	} else {
		_, err = config.GetConfig()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		config.Opts.Catalog = catalog
	}
	if flags.Changed("host") {
		config.Opts.Host = host
	}
	if flags.Changed("port") {
		config.Opts.Port = port
	}

	log.Logger = log.NewLogger()
	response.Compression = config.Opts.Compression
	return nil
}

func serve() error {
	fmt.Print(greetingBanner)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := store.NewStore(config.Opts.Catalog)
	store.Load()

	_, done := server.StartServer(ctx, store)
	<-ctx.Done()
	log.Info("Shutting down")
	<-done
	return nil
}

func printBooks(cmd *cobra.Command) {
	store := store.NewStore(config.Opts.Catalog)
	criteria := model.Criteria{
		Search:   search,
		Genres:   genres,
		Authors:  authors,
		MinPrice: decimal.NewFromFloat(config.Opts.PriceMin),
		MaxPrice: decimal.NewFromFloat(config.Opts.PriceMax),
		Sort:     model.ParseSortMode(sortBy),
		Page:     page,
		PageSize: config.PageSize(string(model.ParseViewMode(view))),
	}
	result := query.Run(store.Load(), criteria)

	out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(out, "ID\tTITLE\tAUTHOR\tGENRE\tPRICE\tRATING")
	for _, b := range result.Items {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%.1f\n", b.ID, b.Title, b.Author, b.Genre, util.FormatBRL(b.Price), b.Rating)
	}
	out.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d, %d books\n", result.Page, result.PageCount, result.Total)
}

func main() {
	defer log.Logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		log.Error("Command failed", zap.Error(err))
		os.Exit(1)
	}
}
