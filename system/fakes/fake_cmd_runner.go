package fakes

import (
	"fmt"
	"strings"
	"sync"

	boshsys "github.com/cloudfoundry/bosh-nice/system"
)

type FakeCmdRunner struct {
	commandResults     map[string][]FakeCmdResult
	commandResultsLock sync.Mutex

	processes     map[string][]*FakeProcess
	processesLock sync.Mutex

	RunComplexCommands   []boshsys.Command
	RunComplexCommandErr error
	RunCommands          [][]string
	RunCommandsWithInput [][]string
	RunCommandsQuietly   [][]string

	AvailableCommands map[string]bool
}

type FakeCmdResult struct {
	Stdout     string
	Stderr     string
	ExitStatus int
	Error      error

	Sticky bool // Set to true if this result should be returned for all calls
}

func NewFakeCmdRunner() *FakeCmdRunner {
	return &FakeCmdRunner{
		AvailableCommands: map[string]bool{},
		commandResults:    map[string][]FakeCmdResult{},
		processes:         map[string][]*FakeProcess{},
	}
}

func (r *FakeCmdRunner) RunComplexCommand(cmd boshsys.Command) (string, string, int, error) {
	r.RunComplexCommands = append(r.RunComplexCommands, cmd)

	runCmd := append([]string{cmd.Name}, cmd.Args...)
	r.RunCommands = append(r.RunCommands, runCmd)

	stdout, stderr, exitStatus, err := r.getOutputsForCmd(runCmd)
	return stdout, stderr, exitStatus, err
}

func (r *FakeCmdRunner) RunComplexCommandAsync(cmd boshsys.Command) (boshsys.Process, error) {
	r.RunComplexCommands = append(r.RunComplexCommands, cmd)

	runCmd := append([]string{cmd.Name}, cmd.Args...)
	r.RunCommands = append(r.RunCommands, runCmd)

	if r.RunComplexCommandErr != nil {
		return nil, r.RunComplexCommandErr
	}

	fullCmd := strings.Join(runCmd, " ")

	r.processesLock.Lock()
	defer r.processesLock.Unlock()

	processes, found := r.processes[fullCmd]
	if !found || len(processes) == 0 {
		return nil, fmt.Errorf("Failed to find process for %s", fullCmd)
	}

	r.processes[fullCmd] = processes[1:]

	return processes[0], nil
}

func (r *FakeCmdRunner) RunCommand(cmdName string, args ...string) (string, string, int, error) {
	runCmd := append([]string{cmdName}, args...)
	r.RunCommands = append(r.RunCommands, runCmd)

	return r.getOutputsForCmd(runCmd)
}

func (r *FakeCmdRunner) RunCommandQuietly(cmdName string, args ...string) (string, string, int, error) {
	runCmd := append([]string{cmdName}, args...)
	r.RunCommandsQuietly = append(r.RunCommandsQuietly, runCmd)

	return r.getOutputsForCmd(runCmd)
}

func (r *FakeCmdRunner) RunCommandWithInput(input, cmdName string, args ...string) (string, string, int, error) {
	runCmd := append([]string{input, cmdName}, args...)
	r.RunCommandsWithInput = append(r.RunCommandsWithInput, runCmd)

	return r.getOutputsForCmd(runCmd[1:])
}

func (r *FakeCmdRunner) CommandExists(cmdName string) bool {
	return r.AvailableCommands[cmdName]
}

func (r *FakeCmdRunner) AddCmdResult(fullCmd string, result FakeCmdResult) {
	r.commandResultsLock.Lock()
	defer r.commandResultsLock.Unlock()

	r.commandResults[fullCmd] = append(r.commandResults[fullCmd], result)
}

func (r *FakeCmdRunner) AddProcess(fullCmd string, process *FakeProcess) {
	r.processesLock.Lock()
	defer r.processesLock.Unlock()

	r.processes[fullCmd] = append(r.processes[fullCmd], process)
}

func (r *FakeCmdRunner) getOutputsForCmd(runCmd []string) (string, string, int, error) {
	r.commandResultsLock.Lock()
	defer r.commandResultsLock.Unlock()

	fullCmd := strings.Join(runCmd, " ")
	results, found := r.commandResults[fullCmd]
	if !found || len(results) == 0 {
		return "", "", -1, nil
	}

	result := results[0]
	if !result.Sticky {
		r.commandResults[fullCmd] = results[1:]
	}

	return result.Stdout, result.Stderr, result.ExitStatus, result.Error
}
