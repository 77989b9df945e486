package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cloudfoundry/bosh-nice/priority"
)

// Prints this process's priority once it changes from the inherited one, or
// after -timeout, since the parent applies it only after the start.
func main() {
	timeout := flag.Duration("timeout", 5*time.Second, "how long to wait for a change")
	flag.Parse()

	self := priority.Current()
	initial, err := self.Priority()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	current := initial
	deadline := time.Now().Add(*timeout)
	for current == initial && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)

		current, err = self.Priority()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println(current)
}
