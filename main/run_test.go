package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	bosherr "github.com/cloudfoundry/bosh-nice/errors"
	boshlog "github.com/cloudfoundry/bosh-nice/logger"
	boshsys "github.com/cloudfoundry/bosh-nice/system"
	fakesys "github.com/cloudfoundry/bosh-nice/system/fakes"
)

var _ = Describe("run", func() {
	var (
		runner *fakesys.FakeCmdRunner
		stdout *gbytes.Buffer
		stderr *gbytes.Buffer
	)

	BeforeEach(func() {
		runner = fakesys.NewFakeCmdRunner()
		stdout = gbytes.NewBuffer()
		stderr = gbytes.NewBuffer()
	})

	runWith := func(args ...string) int {
		return run(args, nil, stdout, stderr, func(boshlog.Logger) boshsys.CmdRunner { return runner })
	}

	writeConfig := func(contents string) string {
		path := filepath.Join(GinkgoT().TempDir(), "nice.yml")
		Expect(os.WriteFile(path, []byte(contents), 0644)).To(Succeed())
		return path
	}

	It("forwards the utility's exit status", func() {
		runner.AddProcess("utility -x", &fakesys.FakeProcess{WaitResult: boshsys.Result{ExitStatus: 7}})

		Expect(runWith("-n", "3", "utility", "-x")).To(Equal(7))

		Expect(runner.RunComplexCommands).To(HaveLen(1))
		cmd := runner.RunComplexCommands[0]
		Expect(cmd.Name).To(Equal("utility"))
		Expect(cmd.Args).To(Equal([]string{"-x"}))
		Expect(cmd.AdjustPriority).To(BeTrue())
		Expect(cmd.Adjustment).To(Equal(3))
	})

	It("forwards a signal exit status", func() {
		runner.AddProcess("utility", &fakesys.FakeProcess{WaitResult: boshsys.Result{ExitStatus: 128 + 15}})

		Expect(runWith("utility")).To(Equal(143))
	})

	It("leaves the priority alone without an increment or config", func() {
		runner.AddProcess("utility", &fakesys.FakeProcess{})

		Expect(runWith("utility")).To(Equal(0))
		Expect(runner.RunComplexCommands[0].AdjustPriority).To(BeFalse())
	})

	It("falls back to the configured adjustment", func() {
		runner.AddProcess("utility", &fakesys.FakeProcess{})
		path := writeConfig("adjustment: 5\n")

		Expect(runWith("--config", path, "utility")).To(Equal(0))
		Expect(runner.RunComplexCommands[0].AdjustPriority).To(BeTrue())
		Expect(runner.RunComplexCommands[0].Adjustment).To(Equal(5))
	})

	It("prefers -n over the configured adjustment", func() {
		runner.AddProcess("utility", &fakesys.FakeProcess{})
		path := writeConfig("adjustment: 5\n")

		Expect(runWith("--config", path, "-n", "0", "utility")).To(Equal(0))
		Expect(runner.RunComplexCommands[0].AdjustPriority).To(BeTrue())
		Expect(runner.RunComplexCommands[0].Adjustment).To(Equal(0))
	})

	It("exits 127 when the utility is not found", func() {
		runner.RunComplexCommandErr = bosherr.WrapError(&exec.Error{Name: "utility", Err: exec.ErrNotFound}, "Running command: 'utility'")

		Expect(runWith("utility")).To(Equal(127))
		Expect(stderr).To(gbytes.Say("Starting 'utility'"))
	})

	It("exits 127 when the utility path does not exist", func() {
		runner.RunComplexCommandErr = bosherr.WrapError(&os.PathError{Op: "fork/exec", Path: "/missing", Err: os.ErrNotExist}, "Running command: '/missing'")

		Expect(runWith("/missing")).To(Equal(127))
	})

	It("exits 126 when the utility may not be executed", func() {
		runner.RunComplexCommandErr = bosherr.WrapError(&os.PathError{Op: "fork/exec", Path: "/utility", Err: os.ErrPermission}, "Running command: '/utility'")

		Expect(runWith("/utility")).To(Equal(126))
	})

	It("exits 126 when the utility cannot be invoked for any other reason", func() {
		runner.RunComplexCommandErr = bosherr.WrapError(errors.New("exec format error"), "Running command: '/utility'")

		Expect(runWith("/utility")).To(Equal(126))
	})

	It("exits 1 when the utility's status is unknown", func() {
		runner.AddProcess("utility", &fakesys.FakeProcess{WaitResult: boshsys.Result{ExitStatus: -1, Error: errors.New("fake-wait-err")}})

		Expect(runWith("utility")).To(Equal(1))
		Expect(stderr).To(gbytes.Say("fake-wait-err"))
	})

	It("exits 1 without starting anything for a bad log level", func() {
		path := writeConfig("log_level: loud\n")

		Expect(runWith("--config", path, "utility")).To(Equal(1))
		Expect(stderr).To(gbytes.Say("Unknown log level 'loud'"))
		Expect(runner.RunComplexCommands).To(BeEmpty())
	})

	It("exits 1 without a utility", func() {
		Expect(runWith("-n", "3")).To(Equal(1))
		Expect(stderr).To(gbytes.Say("expected a utility"))
		Expect(runner.RunComplexCommands).To(BeEmpty())
	})
})
