// Package priority reads and adjusts the CPU scheduling priority of
// processes on both niceness-based (unix) and class-based (windows)
// platforms.
//
// A Priority is an opaque, totally ordered level. Exactly one level is
// Normal; every other level is reached by walking Higher or Lower from it.
// A Process is a non-owning reference to an OS process, used to read and
// write its Priority.
package priority

import (
	"iter"

	"github.com/hekmon/processpriority"
)

// Priority is a scheduling priority level. Values are immutable and
// comparable with ==, which holds iff both denote the same native level.
type Priority struct {
	level level
}

// Normal is the priority every process starts with.
func Normal() Priority {
	return Priority{normalLevel()}
}

// Higher yields the levels above p, closest first, ending at the most
// favoured level. It is empty if p is already the most favoured level.
//
// Be careful with high levels: lower-priority processes may be starved
// until the high-priority process blocks.
func (p Priority) Higher() iter.Seq[Priority] {
	return wrap(p.level.higher())
}

// Lower yields the levels below p, closest first, ending at the least
// favoured level. It is empty if p is already the least favoured level.
func (p Priority) Lower() iter.Seq[Priority] {
	return wrap(p.level.lower())
}

// Step walks n levels from p, towards Higher for negative n and towards
// Lower for positive n, in the direction a nice increment moves. The walk
// stops at the end of the range instead of failing.
func (p Priority) Step(n int) Priority {
	steps := p.Lower()
	if n < 0 {
		steps = p.Higher()
		n = -n
	}

	last := p
	for next := range steps {
		if n == 0 {
			break
		}
		last = next
		n--
	}
	return last
}

// Compare returns -1 if p is less favoured than other, +1 if it is more
// favoured and 0 if both rank the same.
func (p Priority) Compare(other Priority) int {
	return p.level.compare(other.level)
}

func (p Priority) Less(other Priority) bool {
	return p.Compare(other) < 0
}

func (p Priority) Equal(other Priority) bool {
	return p == other
}

// Class maps p onto the closest universal priority label, or
// processpriority.OSSpecific when the native level has no label of its own.
func (p Priority) Class() processpriority.ProcessPriority {
	return p.level.class()
}

func (p Priority) String() string {
	return p.level.String()
}

func wrap(levels iter.Seq[level]) iter.Seq[Priority] {
	return func(yield func(Priority) bool) {
		for l := range levels {
			if !yield(Priority{l}) {
				return
			}
		}
	}
}
