package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/felixgeelhaar/reducekit"
	"github.com/felixgeelhaar/reducekit/examples/catalog"
	"github.com/felixgeelhaar/reducekit/internal/dataset"
)

// MessageNoResults is printed when a search matches nothing
const MessageNoResults = "No results found. Your filters might be too narrow."

type booksOptions struct {
	title   string
	author  string
	genre   string
	pages   int
	preview string
	data    string
	list    bool
}

func (a *app) booksCmd() *cobra.Command {
	opts := &booksOptions{}

	cmd := &cobra.Command{
		Use:   "books",
		Short: "Search and page through the book catalog",
		Long: `Searches the catalog, reveals the requested number of pages and
optionally previews one book.

The catalog comes from --data, then [catalog] data in the configuration,
then the built-in sample.

Examples:
  tally books --title the --pages 2
  tally books --genre gothic --preview frankenstein
  tally books --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBooks(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "case-insensitive title substring")
	cmd.Flags().StringVar(&opts.author, "author", catalog.Any, "author id")
	cmd.Flags().StringVar(&opts.genre, "genre", catalog.Any, "genre id")
	cmd.Flags().IntVar(&opts.pages, "pages", 1, "number of pages to reveal")
	cmd.Flags().StringVar(&opts.preview, "preview", "", "id of the book to preview")
	cmd.Flags().StringVar(&opts.data, "data", "", "YAML catalog file")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list the author and genre ids")
	return cmd
}

func (a *app) runBooks(cmd *cobra.Command, opts *booksOptions) error {
	c, err := a.loadCatalog(opts.data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	authors := catalog.Options(c.Authors, "Authors")
	genres := catalog.Options(c.Genres, "Genres")

	if opts.list {
		printOptions(out, "Authors", authors)
		printOptions(out, "Genres", genres)
		return nil
	}

	if err := checkOption("author", opts.author, authors); err != nil {
		return err
	}
	if err := checkOption("genre", opts.genre, genres); err != nil {
		return err
	}
	if opts.pages < 1 {
		return fmt.Errorf("invalid --pages: %d (must be at least 1)", opts.pages)
	}

	store, err := catalog.NewStore(c, a.cfg.Catalog.PerPage, reducekit.WithLogger(a.logger))
	if err != nil {
		return err
	}

	actions := []reducekit.Action{
		catalog.Search{Title: opts.title, Author: opts.author, Genre: opts.genre},
	}
	for i := 1; i < opts.pages; i++ {
		actions = append(actions, catalog.ShowMore{})
	}
	if opts.preview != "" {
		actions = append(actions, catalog.Preview{ID: opts.preview})
	}
	for _, action := range actions {
		if err := store.Dispatch(action); err != nil {
			return err
		}
	}

	s := store.State()
	if catalog.Empty(s) {
		fmt.Fprintln(out, MessageNoResults)
	}
	for _, b := range catalog.Visible(s) {
		fmt.Fprintf(out, "%-28s %s\n", b.ID, b.Title)
		fmt.Fprintf(out, "%-28s %s\n", "", catalog.Subtitle(c, b))
	}
	if catalog.HasMore(s) {
		fmt.Fprintf(out, "Show more (%d)\n", catalog.Remaining(s))
	}

	if opts.preview == "" {
		return nil
	}
	if s.Active == nil {
		return fmt.Errorf("book %q not found", opts.preview)
	}
	fmt.Fprintf(out, "\n%s\n%s\n\n%s\n", s.Active.Title, catalog.Subtitle(c, *s.Active), s.Active.Description)
	return nil
}

func (a *app) loadCatalog(flagPath string) (catalog.Catalog, error) {
	path := flagPath
	if path == "" {
		path = a.cfg.Catalog.Data
	}
	if path == "" {
		return dataset.Sample(), nil
	}
	a.logger.Debug("loading catalog", zap.String("path", path))
	return dataset.LoadFile(path)
}

func checkOption(name, value string, opts []catalog.Option) error {
	valid := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Value == value {
			return nil
		}
		valid = append(valid, o.Value)
	}
	return fmt.Errorf("unknown %s %q (valid: %s)", name, value, strings.Join(valid, ", "))
}

func printOptions(w io.Writer, heading string, opts []catalog.Option) {
	fmt.Fprintf(w, "%s:\n", heading)
	for _, o := range opts {
		fmt.Fprintf(w, "  %-16s %s\n", o.Value, o.Text)
	}
}
