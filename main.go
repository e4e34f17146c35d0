// SPDX-License-Identifier: MPL-2.0

package main

import cmd "reposeed/cmd/reposeed"

func main() {
	cmd.Execute()
}
