// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"crowbar-cli/internal/eject"
	"crowbar-cli/internal/issue"
	"crowbar-cli/internal/manifest"
	"crowbar-cli/internal/registry"
	"crowbar-cli/internal/relocate"
	"crowbar-cli/internal/tui"
	"crowbar-cli/pkg/types"

	"github.com/spf13/cobra"
)

var (
	// ejectGroup holds the --group flag value.
	ejectGroup string
	// ejectCommand holds the --command flag value.
	ejectCommand string

	ejectCmd = &cobra.Command{
		Use:   "eject",
		Short: "Copy pluggable commands into the host project",
		Long: `Eject pluggable commands: copy their backing source files into the
current project, merge their package requirements into package.json, and
remove them from the framework.

Ejection is irreversible and asks for confirmation before doing anything.
Without flags every ejectable command is ejected. --group narrows the run
to one group, --command narrows it to commands with that name across all
groups, and the two together target a single command.`,
		RunE: runEject,
	}
)

func init() {
	ejectCmd.Flags().StringVarP(&ejectGroup, "group", "g", "", "only eject commands in this group")
	ejectCmd.Flags().StringVarP(&ejectCommand, "command", "c", "", "only eject commands with this name")
}

func runEject(cobraCmd *cobra.Command, _ []string) error {
	cobraCmd.SilenceUsage = true
	ctx := cobraCmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	projectRoot, err := manifest.FindProjectRoot(types.FilesystemPath(cwd))
	if err != nil {
		return ejectServiceError(err)
	}

	pluginsDir, err := cfg.PluginsDir()
	if err != nil {
		return fmt.Errorf("resolving plugins directory: %w", err)
	}

	orchestrator, err := eject.New(eject.Dependencies{
		Confirm:   confirmEjection,
		Enumerate: enumerateCommands(registry.New(pluginsDir)),
		Merger:    manifest.NewService(projectRoot, manifest.NewInstaller(cfg.Install.Command)),
		Relocator: relocate.NewRelocator(),
		DestRoot:  projectRoot,
	})
	if err != nil {
		return err
	}

	criteria := registry.Criteria{Group: ejectGroup, Command: ejectCommand}
	if err := orchestrator.Run(ctx, criteria); err != nil {
		return ejectServiceError(err)
	}

	fmt.Fprintln(cobraCmd.OutOrStdout(), SuccessStyle.Render("✓ Ejection complete. You now own the ejected code."))
	return nil
}

// confirmEjection asks the user to approve the destructive batch operation.
// Backing out of the prompt counts as declining.
func confirmEjection(_ context.Context) (bool, error) {
	confirmed, err := tui.Confirm(tui.ConfirmOptions{
		Title:       "Eject commands into your project?",
		Description: "Backing files are copied into the project, package.json is updated, and the commands are removed from crowbar. This cannot be undone.",
		Default:     false,
	})
	if errors.Is(err, tui.ErrCancelled) {
		return false, nil
	}
	return confirmed, err
}

// enumerateCommands adapts registry discovery to the orchestrator's
// enumeration dependency, surfacing discovery diagnostics as warnings.
func enumerateCommands(discovery *registry.Discovery) eject.EnumerateFunc {
	return func(ctx context.Context) ([]registry.Descriptor, error) {
		result, err := discovery.Commands(ctx)
		if err != nil {
			return nil, err
		}
		for _, diag := range result.Diagnostics {
			slog.Warn(diag.Message, "code", diag.Code, "path", diag.Path)
		}
		return result.Commands, nil
	}
}

// ejectServiceError maps an eject failure to a ServiceError carrying the
// matching issue catalog entry, rendered before the CLI exits non-zero.
func ejectServiceError(err error) error {
	svcErr := newServiceError(err, issueIDForEjectError(err), ErrorStyle.Render("Error: ")+err.Error()+"\n")
	renderServiceError(os.Stderr, svcErr)
	return &ExitError{Code: 1, Err: svcErr}
}

// issueIDForEjectError selects the issue catalog entry for a failed run.
// Returns 0 when no catalog entry applies.
func issueIDForEjectError(err error) issue.Id {
	switch {
	case errors.Is(err, eject.ErrUserAborted):
		return issue.EjectAbortedId
	case errors.Is(err, eject.ErrNothingToDo):
		return issue.NothingToEjectId
	case errors.Is(err, eject.ErrCommandNotFound):
		return issue.CommandNotFoundId
	case errors.Is(err, eject.ErrCapabilityMissing):
		return issue.CapabilityMissingId
	case errors.Is(err, relocate.ErrDestinationExists):
		return issue.DestinationExistsId
	case errors.Is(err, manifest.ErrProjectRootNotFound):
		return issue.ProjectRootNotFoundId
	default:
		return 0
	}
}
