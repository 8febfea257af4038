// findcmd builds correctly quoted find(1) command lines from search criteria.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/findcmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
