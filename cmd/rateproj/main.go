// Command rateproj projects what a utility bill will cost over the years and
// what a competing rate would save.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
