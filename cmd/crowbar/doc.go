// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for crowbar.
//
// This package implements the Cobra command hierarchy for the crowbar CLI:
// the root command plus the eject, list, and version subcommands. Commands
// delegate their actual work to the internal packages and translate the
// errors that come back into styled terminal output and exit codes.
package cmd
