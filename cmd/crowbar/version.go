// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the crowbar version",
	Run: func(cobraCmd *cobra.Command, _ []string) {
		fmt.Fprintln(cobraCmd.OutOrStdout(), TitleStyle.Render("crowbar")+" "+getVersionString())
	},
}
