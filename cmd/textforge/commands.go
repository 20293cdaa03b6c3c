package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"textforge/internal/catalog"
	"textforge/internal/registry"
	"textforge/internal/transform"
)

var (
	tools     = registry.NewDefaultToolRegistry()
	functions = registry.NewDefaultFunctionRegistry()
)

var (
	listCategory string
	runOptions   []string
)

var rootCmd = &cobra.Command{
	Use:           "textforge",
	Short:         "Text and data transformation toolbox",
	Long:          `textforge runs any of the cataloged text transformations from the command line: case conversion, encoding, hashing, formatting, color conversion, generators and classical ciphers.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		var items []catalog.Tool
		if listCategory != "" {
			if _, ok := catalog.GetCategoryBySlug(listCategory); !ok {
				return fmt.Errorf("unknown category %q", listCategory)
			}
			items = tools.GetToolsByCategorySlug(listCategory)
		} else {
			items = tools.ListAllTools()
		}
		for _, t := range items {
			fmt.Printf("%-28s %-12s %s\n", t.Slug, t.CategoryID, t.Description)
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with tool counts",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range tools.ListCategoriesWithCounts() {
			fmt.Printf("%-12s %-22s %d tools\n", c.Slug, c.Name, c.ToolCount)
		}
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <terms...>",
	Short: "Search tools by keyword",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches := tools.SearchTools(strings.Join(args, " "))
		if len(matches) == 0 {
			return fmt.Errorf("no tools match %q", strings.Join(args, " "))
		}
		for _, t := range matches {
			fmt.Printf("%-28s %-12s %s\n", t.Slug, t.CategoryID, t.Description)
		}
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <category> <tool>",
	Short: "Show a tool's metadata",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, ok := tools.GetTool(args[0], args[1])
		if !ok {
			return fmt.Errorf("tool %s/%s not found", args[0], args[1])
		}
		withCategory, _ := tools.GetToolWithCategory(t.ID)
		fmt.Printf("%s — %s\n", t.Name, t.Description)
		fmt.Printf("category:  %s\n", withCategory.Category.Name)
		fmt.Printf("keywords:  %s\n", strings.Join(t.Keywords, ", "))
		for _, opt := range t.Options {
			fmt.Printf("option:    %s (%s, default %v)\n", opt.Name, opt.Kind, opt.Default)
		}
		if related := tools.GetRelatedTools(t.ID, registry.DefaultRelatedLimit); len(related) > 0 {
			names := make([]string, len(related))
			for i, r := range related {
				names[i] = r.Slug
			}
			fmt.Printf("related:   %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <category> <tool> [input]",
	Short: "Run a transformation",
	Long:  `Run a transformation on the given input, or on stdin when no input argument is supplied. Options are passed as --opt name=value.`,
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, ok := tools.GetTool(args[0], args[1])
		if !ok {
			return fmt.Errorf("tool %s/%s not found", args[0], args[1])
		}
		fn, ok := functions.Resolve(t.TransformFn)
		if !ok {
			return fmt.Errorf("tool %s is not available", t.Slug)
		}

		input, err := readInput(args, t.IsGenerator)
		if err != nil {
			return err
		}

		opts := registry.ApplyOptionDefaults(t, parseOptionFlags(runOptions))
		output, err := fn(input, opts)
		if err != nil {
			return err
		}
		fmt.Println(output)
		return nil
	},
}

// readInput takes the input from the optional positional argument, falling
// back to stdin. Generators need no input at all.
func readInput(args []string, isGenerator bool) (string, error) {
	if len(args) > 2 {
		return args[2], nil
	}
	if isGenerator {
		return "", nil
	}
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}
	return "", fmt.Errorf("no input provided (pass an argument or pipe to stdin)")
}

// parseOptionFlags turns repeated --opt name=value flags into options.
// Values stay strings; the adapters coerce numerics where needed, so numeric
// flags are parsed here.
func parseOptionFlags(flags []string) transform.Options {
	opts := make(transform.Options, len(flags))
	for _, f := range flags {
		name, value, found := strings.Cut(f, "=")
		if !found {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err == nil && fmt.Sprintf("%d", n) == value {
			opts[name] = n
			continue
		}
		opts[name] = value
	}
	return opts
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "only list tools in this category slug")
	runCmd.Flags().StringArrayVar(&runOptions, "opt", nil, "tool option as name=value (repeatable)")
	quickCmd.Flags().BoolVar(&quickMenuList, "menu", false, "list the quick menu entries")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(quickCmd)
}
