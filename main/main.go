// Command nice runs a utility with an adjusted scheduling priority.
//
//	nice [-n increment] utility [argument...]
//
// The priority is walked increment steps away from normal, towards higher
// priority for negative increments, and clamped at the end of the range. A
// priority that cannot be applied is reported and the utility runs anyway.
// nice exits with the utility's exit status, 128+N when it was killed by
// signal N, 126 when it could not be executed and 127 when it was not found.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	goflags "github.com/jessevdk/go-flags"

	"github.com/cloudfoundry/bosh-nice/config"
	boshlog "github.com/cloudfoundry/bosh-nice/logger"
	boshsys "github.com/cloudfoundry/bosh-nice/system"
)

const mainLogTag = "main"

const (
	exitUsage         = 1
	exitCannotExecute = 126
	exitNotFound      = 127
)

type Options struct {
	Adjustment int    `short:"n" long:"adjustment" value-name:"INCREMENT" description:"Priority increment; negative values raise the priority"`
	ConfigPath string `long:"config" value-name:"PATH" description:"YAML file with default settings"`
	Debug      bool   `long:"debug" description:"Log debug output to stderr"`
}

// runnerFactory builds the runner that starts the utility, once the logger
// it should report through exists.
type runnerFactory func(boshlog.Logger) boshsys.CmdRunner

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, boshsys.NewExecCmdRunner))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, newRunner runnerFactory) int {
	var opts Options

	parser := goflags.NewParser(&opts, goflags.HelpFlag|goflags.PassDoubleDash|goflags.PassAfterNonOption)
	parser.Name = "nice"
	parser.Usage = "[OPTIONS] utility [argument...]"

	utility, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		return usageError(parser, stderr, err.Error())
	}

	if len(utility) == 0 {
		return usageError(parser, stderr, "expected a utility")
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "nice: %s\n", err)
		return exitUsage
	}

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(stderr, "nice: %s\n", err)
		return exitUsage
	}
	if opts.Debug {
		level = boshlog.LevelDebug
	}

	logger := boshlog.NewAsyncWriterLogger(level, stderr)
	defer logger.FlushTimeout(5 * time.Second) //nolint:errcheck
	defer logger.HandlePanic(mainLogTag)

	cmd := boshsys.Command{
		Name:   utility[0],
		Args:   utility[1:],
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	switch {
	case parser.FindOptionByShortName('n').IsSet():
		cmd.AdjustPriority = true
		cmd.Adjustment = opts.Adjustment
	case cfg.Adjustment != nil:
		cmd.AdjustPriority = true
		cmd.Adjustment = *cfg.Adjustment
	}

	runner := newRunner(logger)

	process, err := runner.RunComplexCommandAsync(cmd)
	if err != nil {
		logger.Error(mainLogTag, "Starting '%s': %s", cmd.Name, err)
		return startFailureStatus(err)
	}

	result := <-process.Wait()
	if result.ExitStatus < 0 {
		logger.Error(mainLogTag, "Waiting for '%s': %s", cmd.Name, result.Error)
		return exitUsage
	}

	logger.Debug(mainLogTag, "'%s' exited with %d", cmd.Name, result.ExitStatus)

	return result.ExitStatus
}

func usageError(parser *goflags.Parser, stderr io.Writer, msg string) int {
	fmt.Fprintf(stderr, "nice: %s\n\n", msg)
	parser.WriteHelp(stderr)
	return exitUsage
}

// startFailureStatus tells a utility that could not be found apart from one
// that was found but could not be invoked.
func startFailureStatus(err error) int {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return exitNotFound
	}
	return exitCannotExecute
}
