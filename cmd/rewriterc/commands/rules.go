package commands

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/rewriterc/cmd/rewriterc/opts"
	"gitlab.com/tozd/go/errors"
)

const previewWidth = 48

// NewRulesCmd creates a new rules command
func NewRulesCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the rule catalog",
		Long: `Rules prints the rules in the order they are applied.
It will:
1. List every pattern rule, then every literal rule
2. Warn about placeholders that name no group
3. Warn about literal rules that would not be idempotent`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := opts.Config.Location()
			if source == "" {
				source = "the shipped catalog"
			}
			opts.Console.Header(fmt.Sprintf("%d rules from %s (%s mode)", opts.Catalog.Len(), source, opts.Catalog.Mode()))

			data := pterm.TableData{{"#", "kind", "name", "find", "replace"}}
			n := 0
			for _, p := range opts.Catalog.Patterns() {
				n++
				data = append(data, []string{strconv.Itoa(n), "pattern", p.Name, preview(p.Match), preview(p.Replace)})
			}
			for _, l := range opts.Catalog.Literals() {
				n++
				data = append(data, []string{strconv.Itoa(n), "literal", l.Name, preview(l.Find), preview(l.Replace)})
			}

			if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(cmd.OutOrStdout()).Render(); err != nil {
				return errors.Errorf("rendering rules: %w", err)
			}

			for _, warning := range opts.Catalog.Validate() {
				opts.Console.Warning(warning.Error())
			}
			return nil
		},
	}

	return cmd
}

// preview flattens a rule field onto one table cell
func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", "⏎")
	if utf8.RuneCountInString(s) <= previewWidth {
		return s
	}
	return string([]rune(s)[:previewWidth-1]) + "…"
}
