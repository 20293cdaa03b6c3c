package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"textforge/internal/quickmenu"
)

// quickCommands maps short command names to transformFn names. This is the
// CLI's own table, independent of the tool catalog; resolution still goes
// through the core function registry.
var quickCommands = map[string]string{
	"camel":    "toCamelCase",
	"pascal":   "toPascalCase",
	"snake":    "toSnakeCase",
	"kebab":    "toKebabCase",
	"upper":    "toUpperCase",
	"lower":    "toLowerCase",
	"base64":   "base64Encode",
	"unbase64": "base64Decode",
	"url":      "urlEncode",
	"unurl":    "urlDecode",
	"rot13":    "rot13",
	"md5":      "md5Hash",
	"sha256":   "sha256Hash",
	"slug":     "slugify",
	"uuid":     "generateUUIDv4",
	"reverse":  "reverseText",
}

var quickMenuList bool

var quickCmd = &cobra.Command{
	Use:   "quick <name> [input]",
	Short: "Run a transformation by short name",
	Long:  `Run a transformation using a short command name (camel, base64, rot13, ...). With --menu, list the context-menu style quick entries instead.`,
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if quickMenuList {
			for _, item := range quickmenu.New().Items() {
				fmt.Printf("%-22s %s\n", item.ID, item.Title)
			}
			return nil
		}
		if len(args) == 0 {
			names := make([]string, 0, len(quickCommands))
			for name := range quickCommands {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%-10s -> %s\n", name, quickCommands[name])
			}
			return nil
		}

		fnName, ok := quickCommands[args[0]]
		if !ok {
			return fmt.Errorf("unknown quick command %q", args[0])
		}
		fn, ok := functions.Resolve(fnName)
		if !ok {
			return fmt.Errorf("command %q is not available", args[0])
		}

		input, err := readInput(append([]string{"", ""}, args[1:]...), fnName == "generateUUIDv4")
		if err != nil {
			return err
		}
		output, err := fn(input, nil)
		if err != nil {
			return err
		}
		fmt.Println(output)
		return nil
	},
}
