// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"crowbar-cli/internal/registry"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered commands",
	Long: `List every command registered with the framework, grouped by command
group. Commands marked as ejectable can be copied into your project with
'crowbar eject'.`,
	RunE: runList,
}

func runList(cobraCmd *cobra.Command, _ []string) error {
	cobraCmd.SilenceUsage = true

	pluginsDir, err := cfg.PluginsDir()
	if err != nil {
		return fmt.Errorf("resolving plugins directory: %w", err)
	}

	result, err := registry.New(pluginsDir).Commands(cobraCmd.Context())
	if err != nil {
		return err
	}
	for _, diag := range result.Diagnostics {
		slog.Warn(diag.Message, "code", diag.Code, "path", diag.Path)
	}

	renderCommandList(cobraCmd.OutOrStdout(), result.Commands)
	return nil
}

// renderCommandList prints descriptors grouped by command group, with an
// ejectable marker on commands that carry the capability.
func renderCommandList(out io.Writer, descriptors []registry.Descriptor) {
	byGroup := make(map[string][]registry.Descriptor)
	groups := make([]string, 0, len(descriptors))
	for _, desc := range descriptors {
		group := string(desc.Group)
		if _, seen := byGroup[group]; !seen {
			groups = append(groups, group)
		}
		byGroup[group] = append(byGroup[group], desc)
	}
	sort.Strings(groups)

	fmt.Fprintln(out, TitleStyle.Render("Registered commands"))
	for _, group := range groups {
		fmt.Fprintln(out)
		fmt.Fprintln(out, SubtitleStyle.Render(group))
		for _, desc := range byGroup[group] {
			marker := "  "
			if desc.Ejectable() {
				marker = SuccessStyle.Render("⏏ ")
			}
			fmt.Fprintf(out, "  %s%s  %s\n", marker, CmdStyle.Render(desc.Identity()), desc.Description)
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, VerboseStyle.Render("⏏ = ejectable via 'crowbar eject'"))
}
