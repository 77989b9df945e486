package fakes

import (
	boshsys "github.com/cloudfoundry/bosh-nice/system"
)

type FakeProcess struct {
	PidValue int

	// WaitCh, when set, is handed out by every Wait call instead of a channel
	// carrying WaitResult.
	WaitCh     chan boshsys.Result
	WaitResult boshsys.Result
}

func (p *FakeProcess) Pid() int {
	return p.PidValue
}

func (p *FakeProcess) Wait() <-chan boshsys.Result {
	if p.WaitCh != nil {
		return p.WaitCh
	}

	waitCh := make(chan boshsys.Result, 1)
	waitCh <- p.WaitResult
	close(waitCh)
	return waitCh
}
