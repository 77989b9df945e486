package priority

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/hekmon/processpriority"
	"golang.org/x/sys/windows"
)

// classes lists the priority classes from least to most favoured. The raw
// class values are not monotonic, so ordering always goes through this table.
var classes = []uint32{
	windows.IDLE_PRIORITY_CLASS,
	windows.BELOW_NORMAL_PRIORITY_CLASS,
	windows.NORMAL_PRIORITY_CLASS,
	windows.ABOVE_NORMAL_PRIORITY_CLASS,
	windows.HIGH_PRIORITY_CLASS,
	windows.REALTIME_PRIORITY_CLASS,
}

// level is a priority class, stored XOR NORMAL_PRIORITY_CLASS so that the
// zero value is the normal class.
type level struct {
	bits uint32
}

func levelOf(class uint32) level {
	return level{bits: class ^ windows.NORMAL_PRIORITY_CLASS}
}

func normalLevel() level {
	return levelOf(windows.NORMAL_PRIORITY_CLASS)
}

func (l level) native() uint32 {
	return l.bits ^ windows.NORMAL_PRIORITY_CLASS
}

// rank is the position of l in classes. The background processing markers
// are accepted as synonyms of the normal class.
func (l level) rank() int {
	class := l.native()
	switch class {
	case windows.PROCESS_MODE_BACKGROUND_BEGIN, windows.PROCESS_MODE_BACKGROUND_END:
		class = windows.NORMAL_PRIORITY_CLASS
	}

	rank := slices.Index(classes, class)
	if rank < 0 {
		panic(fmt.Sprintf("Internal inconsistency: undefined priority class %#x", class))
	}
	return rank
}

func (l level) higher() iter.Seq[level] {
	return func(yield func(level) bool) {
		for _, class := range classes[l.rank()+1:] {
			if !yield(levelOf(class)) {
				return
			}
		}
	}
}

func (l level) lower() iter.Seq[level] {
	return func(yield func(level) bool) {
		for i := l.rank() - 1; i >= 0; i-- {
			if !yield(levelOf(classes[i])) {
				return
			}
		}
	}
}

func (l level) compare(other level) int {
	return cmp.Compare(l.rank(), other.rank())
}

func (l level) class() processpriority.ProcessPriority {
	switch classes[l.rank()] {
	case processpriority.WinPriorityIdle:
		return processpriority.Idle
	case processpriority.WinPriorityBelowNormal:
		return processpriority.BelowNormal
	case processpriority.WinPriorityNormal:
		return processpriority.Normal
	case processpriority.WinPriorityAboveNormal:
		return processpriority.AboveNormal
	case processpriority.WinPriorityHigh:
		return processpriority.High
	case processpriority.WinPriorityRealTime:
		return processpriority.RealTime
	default:
		return processpriority.OSSpecific
	}
}

func (l level) String() string {
	return fmt.Sprintf("%s (class %#x)", l.class(), l.native())
}
