//go:build unix

package priority

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/hekmon/processpriority"
)

// level is a niceness value. Lower niceness is the more favoured level, so
// comparisons run against the numeric order.
type level struct {
	niceness int
}

func normalLevel() level {
	return level{niceness: 0}
}

func (l level) higher() iter.Seq[level] {
	return func(yield func(level) bool) {
		for n := l.niceness - 1; n >= minNiceness; n-- {
			if !yield(level{niceness: n}) {
				return
			}
		}
	}
}

func (l level) lower() iter.Seq[level] {
	return func(yield func(level) bool) {
		for n := l.niceness + 1; n <= maxNiceness; n++ {
			if !yield(level{niceness: n}) {
				return
			}
		}
	}
}

func (l level) compare(other level) int {
	return cmp.Compare(other.niceness, l.niceness)
}

func (l level) class() processpriority.ProcessPriority {
	switch {
	case l.niceness >= processpriority.UnixPriorityIdle:
		return processpriority.Idle
	case l.niceness == processpriority.UnixPriorityBelowNormal:
		return processpriority.BelowNormal
	case l.niceness == processpriority.UnixPriorityNormal:
		return processpriority.Normal
	case l.niceness == processpriority.UnixPriorityAboveNormal:
		return processpriority.AboveNormal
	case l.niceness == processpriority.UnixPriorityHigh:
		return processpriority.High
	case l.niceness <= processpriority.UnixPriorityRealTime:
		return processpriority.RealTime
	default:
		return processpriority.OSSpecific
	}
}

func (l level) String() string {
	return fmt.Sprintf("%s (nice %d)", l.class(), l.niceness)
}
