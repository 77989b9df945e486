package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	stdout := flag.String("stdout", "", "print to stdout instead of echoing stdin")
	stderr := flag.String("stderr", "", "print to stderr")
	env := flag.Bool("env", false, "print the environment")
	pwd := flag.Bool("pwd", false, "print the working directory")
	flag.Parse()

	switch {
	case *env:
		for _, kv := range os.Environ() {
			fmt.Println(kv)
		}
	case *pwd:
		dir, err := os.Getwd()
		if err != nil {
			os.Exit(1)
		}
		fmt.Println(dir)
	case *stdout != "" || *stderr != "":
		if *stdout != "" {
			fmt.Fprintln(os.Stdout, *stdout)
		}
		if *stderr != "" {
			fmt.Fprintln(os.Stderr, *stderr)
		}
	default:
		if _, err := io.Copy(os.Stdout, os.Stdin); err != nil {
			os.Exit(1)
		}
	}
}
