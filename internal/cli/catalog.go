package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/pipeline"
)

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// catalogFlags are shared by the catalog subcommands.
type catalogFlags struct {
	source  string
	refresh bool
	noCache bool
}

// catalogCommand creates the catalog command.
func (c *CLI) catalogCommand() *cobra.Command {
	var flags catalogFlags
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the tool catalog",
	}
	cmd.PersistentFlags().StringVar(&flags.source, "catalog", catalog.BuiltinURI, "catalog source: builtin, file.json|toml, http(s)://api, mongodb://...")
	cmd.PersistentFlags().BoolVar(&flags.refresh, "refresh", false, "bypass the catalog cache")
	cmd.PersistentFlags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, cached, err := c.loadCatalog(cmd.Context(), flags)
			if err != nil {
				return err
			}
			renderCategoryTable(cat)
			n, tools := cat.Counts()
			printStats(n, tools, cached)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "show <category-id>",
		Short:             "Show a category and its tools",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategoryIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := c.loadCatalog(cmd.Context(), flags)
			if err != nil {
				return err
			}
			category, err := cat.Category(args[0])
			if err != nil {
				return err
			}
			renderCategory(category)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search categories and tools by name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateQuery(args[0]); err != nil {
				return err
			}
			cat, _, err := c.loadCatalog(cmd.Context(), flags)
			if err != nil {
				return err
			}
			results := cat.Search(args[0])
			if len(results) == 0 {
				printWarning("No results for %q", args[0])
				return nil
			}
			renderSearchTable(results)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:               "tool <tool-id>",
		Short:             "Show a tool with its category and demo video",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeToolIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, _, err := c.loadCatalog(cmd.Context(), flags)
			if err != nil {
				return err
			}
			t, err := cat.Tool(args[0])
			if err != nil {
				return err
			}
			renderTool(t)
			return nil
		},
	})

	return cmd
}

// loadCatalog loads the catalog through a pipeline runner so remote sources
// share the render cache.
func (c *CLI) loadCatalog(ctx context.Context, flags catalogFlags) (*catalog.Catalog, bool, error) {
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return nil, false, err
	}
	defer runner.Close()

	opts := pipeline.Options{Catalog: flags.source, Refresh: flags.refresh}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	spin := newSpinner(ctx, "Loading catalog "+flags.source)
	spin.Start()
	defer spin.Stop()
	return runner.LoadWithCacheInfo(ctx, opts)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func renderCategoryTable(cat *catalog.Catalog) {
	t := newTable("", "ID", "Category", "Tools", "Avg")
	for _, category := range cat.Categories {
		t.Row(
			swatch(category.Color),
			category.ID,
			category.IconOrDefault()+" "+category.Name,
			strconv.Itoa(len(category.Tools)),
			strconv.Itoa(category.AveragePopularity()),
		)
	}
	fmt.Fprintln(stdout, t.Render())
}

func renderCategory(category *catalog.Category) {
	fmt.Fprintln(stdout, StyleTitle.Render(category.IconOrDefault()+" "+category.Name)+" "+swatch(category.Color))
	fmt.Fprintln(stdout, StyleDim.Render(category.Description))
	printNewline()

	t := newTable("ID", "Tool", "Rating", "Popularity", "URL")
	for _, tool := range category.Tools {
		t.Row(
			tool.ID,
			tool.Name,
			stars(catalog.Rating(tool.Popularity)),
			bar(tool.Popularity/100, 10, category.Color),
			StyleLink.Render(tool.URL),
		)
	}
	fmt.Fprintln(stdout, t.Render())
	printKeyValue("Average", strconv.Itoa(category.AveragePopularity()))
}

func renderSearchTable(results []catalog.SearchResult) {
	t := newTable("Type", "ID", "Name", "Category")
	for _, r := range results {
		category := r.Category
		if r.IsCategory() {
			category = StyleDim.Render("-")
		}
		t.Row(r.Type, r.ID, r.Name, category)
	}
	fmt.Fprintln(stdout, t.Render())
}

func renderTool(t *catalog.ToolDetail) {
	fmt.Fprintln(stdout, StyleTitle.Render(t.Name)+" "+StyleDim.Render("("+t.ID+")"))
	fmt.Fprintln(stdout, StyleDim.Render(t.Description))
	printNewline()
	printKeyValue("Category", swatch(t.CategoryColor)+" "+t.Category)
	printKeyValue("Rating", stars(catalog.Rating(t.Popularity)))
	printKeyValue("Popularity", strconv.FormatFloat(t.Popularity, 'f', -1, 64))
	printKeyValue("URL", StyleLink.Render(t.URL))
	if v, ok := catalog.Demo(t.Name); ok {
		printKeyValue("Demo", StyleLink.Render(v.URL)+" "+StyleDim.Render(v.Duration))
	}
}
