// Command vaina runs programs written in the bilingual Spanish/English
// scripting language implemented by this module.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/vaina/cmd/vaina/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
