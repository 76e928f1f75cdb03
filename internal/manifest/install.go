// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"crowbar-cli/pkg/types"
)

// DefaultInstallCommand is the package-installation command run after a
// merge that changed the manifest.
var DefaultInstallCommand = []string{"npm", "install"}

// Installer runs the host project's package-installation step.
type Installer struct {
	command []string
}

// NewInstaller creates an Installer for the given command line. An empty
// command falls back to DefaultInstallCommand.
func NewInstaller(command []string) *Installer {
	if len(command) == 0 {
		command = DefaultInstallCommand
	}
	return &Installer{command: command}
}

// Install runs the installation command in dir, streaming its output to the
// process's stdout/stderr. The command may perform network work and is
// awaited to completion.
func (i *Installer) Install(ctx context.Context, dir types.FilesystemPath) error {
	cmd := exec.CommandContext(ctx, i.command[0], i.command[1:]...)
	cmd.Dir = string(dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %v in %s: %w", i.command, dir, err)
	}
	return nil
}
