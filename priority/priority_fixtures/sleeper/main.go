package main

import (
	"flag"
	"os"
	"time"
)

func main() {
	sleep := flag.Duration("sleep", 0, "how long to stay alive")
	exitStatus := flag.Int("exit", 0, "status to exit with")
	flag.Parse()

	time.Sleep(*sleep)
	os.Exit(*exitStatus)
}
