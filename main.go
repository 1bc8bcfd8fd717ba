// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/winepack/winepack/cmd/winepack"

func main() {
	cmd.Execute()
}
