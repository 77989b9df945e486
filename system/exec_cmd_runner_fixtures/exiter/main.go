package main

import (
	"flag"
	"os"
	"time"
)

func main() {
	exitStatus := flag.Int("exit", 0, "status to exit with")
	sleep := flag.Duration("sleep", 0, "how long to stay alive")
	kill := flag.Bool("kill", false, "kill itself instead of exiting")
	flag.Parse()

	time.Sleep(*sleep)

	if *kill {
		self, err := os.FindProcess(os.Getpid())
		if err == nil {
			_ = self.Kill()
		}
		time.Sleep(time.Minute)
	}

	os.Exit(*exitStatus)
}
