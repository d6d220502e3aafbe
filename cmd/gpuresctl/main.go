// Command gpuresctl inspects resource-context backends and exercises them
// under concurrent load.
package main

import (
	"fmt"
	"os"

	_ "github.com/gogpu/gpures/headless"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
