package system

import (
	"os"

	bosherr "github.com/cloudfoundry/bosh-nice/errors"
	boshlog "github.com/cloudfoundry/bosh-nice/logger"
	"github.com/cloudfoundry/bosh-nice/priority"
)

//counterfeiter:generate . PriorityAdjuster

type PriorityAdjuster interface {
	// Adjust walks adjustment steps from the normal priority, clamping at the
	// end of the range, and applies the result to process. The returned
	// error wraps a *priority.UnchangedError.
	Adjust(process *os.Process, adjustment int) (priority.Priority, error)
}

type priorityAdjuster struct {
	logTag string
	logger boshlog.Logger
}

func NewPriorityAdjuster(logger boshlog.Logger) PriorityAdjuster {
	return priorityAdjuster{
		logTag: "priorityAdjuster",
		logger: logger,
	}
}

func (a priorityAdjuster) Adjust(process *os.Process, adjustment int) (priority.Priority, error) {
	target := priority.Normal().Step(adjustment)
	child := priority.FromProcess(process)

	a.logger.Debug(a.logTag, "Setting priority of process %d to %s (adjustment %d)", child.Pid(), target, adjustment)

	err := child.SetPriority(target)
	if err != nil {
		return target, bosherr.WrapErrorf(err, "Setting priority of process %d to %s", child.Pid(), target)
	}

	return target, nil
}
