// SPDX-License-Identifier: MPL-2.0

package main

import cmd "crowbar-cli/cmd/crowbar"

func main() {
	cmd.Execute()
}
