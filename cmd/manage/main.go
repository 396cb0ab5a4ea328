// Command manage is the administrative surface of the site: schema
// migration, account and letting maintenance, and bulk import.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
