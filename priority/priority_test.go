package priority_test

import (
	"iter"
	"slices"

	"github.com/hekmon/processpriority"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/cloudfoundry/bosh-nice/priority"
)

func first(seq iter.Seq[Priority]) (Priority, bool) {
	for p := range seq {
		return p, true
	}
	return Priority{}, false
}

// allPriorities lists every level from least to most favoured.
func allPriorities() []Priority {
	all := slices.Collect(Normal().Lower())
	slices.Reverse(all)
	all = append(all, Normal())
	return append(all, slices.Collect(Normal().Higher())...)
}

var _ = Describe("Priority", func() {
	var (
		mostFavoured  Priority
		leastFavoured Priority
	)

	BeforeEach(func() {
		all := allPriorities()
		leastFavoured = all[0]
		mostFavoured = all[len(all)-1]
	})

	It("has levels on both sides of normal", func() {
		Expect(slices.Collect(Normal().Higher())).ToNot(BeEmpty())
		Expect(slices.Collect(Normal().Lower())).ToNot(BeEmpty())
	})

	It("is equal to itself", func() {
		for _, p := range allPriorities() {
			Expect(p.Equal(p)).To(BeTrue())
			Expect(p.Compare(p)).To(Equal(0))
			Expect(p).To(Equal(p))
		}
	})

	It("orders all levels totally", func() {
		all := allPriorities()
		for i := range all {
			for j := range all {
				Expect(all[i].Compare(all[j])).To(Equal(-all[j].Compare(all[i])))
				Expect(all[i].Less(all[j])).To(Equal(i < j))
				Expect(all[i].Equal(all[j])).To(Equal(i == j))
			}
		}
	})

	Describe("Higher", func() {
		It("yields strictly more favoured levels", func() {
			previous := Normal()
			for p := range Normal().Higher() {
				Expect(previous.Less(p)).To(BeTrue())
				previous = p
			}
			Expect(previous).To(Equal(mostFavoured))
		})

		It("yields the same levels every time it is called", func() {
			p := Normal()
			Expect(slices.Collect(p.Higher())).To(Equal(slices.Collect(p.Higher())))
		})

		It("is empty at the most favoured level", func() {
			Expect(slices.Collect(mostFavoured.Higher())).To(BeEmpty())
		})

		It("can be abandoned part way", func() {
			count := 0
			for range leastFavoured.Higher() {
				count++
				if count == 2 {
					break
				}
			}
			Expect(count).To(Equal(2))
		})
	})

	Describe("Lower", func() {
		It("yields strictly less favoured levels", func() {
			previous := Normal()
			for p := range Normal().Lower() {
				Expect(p.Less(previous)).To(BeTrue())
				previous = p
			}
			Expect(previous).To(Equal(leastFavoured))
		})

		It("yields the same levels every time it is called", func() {
			p := Normal()
			Expect(slices.Collect(p.Lower())).To(Equal(slices.Collect(p.Lower())))
		})

		It("is empty at the least favoured level", func() {
			Expect(slices.Collect(leastFavoured.Lower())).To(BeEmpty())
		})
	})

	It("returns to the original level after one step up and one step down", func() {
		for _, p := range allPriorities() {
			up, ok := first(p.Higher())
			if !ok {
				Expect(p).To(Equal(mostFavoured))
				continue
			}
			down, ok := first(up.Lower())
			Expect(ok).To(BeTrue())
			Expect(down).To(Equal(p))
		}
	})

	It("reaches normal from every level", func() {
		for _, p := range allPriorities() {
			steps := p.Higher()
			if Normal().Less(p) {
				steps = p.Lower()
			}

			current := p
			for next := range steps {
				if current == Normal() {
					break
				}
				current = next
			}
			Expect(current).To(Equal(Normal()))
		}
	})

	Describe("Step", func() {
		It("does nothing for zero steps", func() {
			Expect(Normal().Step(0)).To(Equal(Normal()))
		})

		It("moves towards more favoured levels for negative steps", func() {
			expected, _ := first(Normal().Higher())
			Expect(Normal().Step(-1)).To(Equal(expected))
		})

		It("moves towards less favoured levels for positive steps", func() {
			expected, _ := first(Normal().Lower())
			Expect(Normal().Step(1)).To(Equal(expected))
		})

		It("takes as many steps as are available", func() {
			higher := slices.Collect(Normal().Higher())
			expected := higher[min(5, len(higher))-1]
			Expect(Normal().Step(-5)).To(Equal(expected))
		})

		It("clamps at the ends of the range", func() {
			Expect(Normal().Step(-999)).To(Equal(mostFavoured))
			Expect(Normal().Step(999)).To(Equal(leastFavoured))
			Expect(mostFavoured.Step(-1)).To(Equal(mostFavoured))
		})
	})

	Describe("Class", func() {
		It("labels the normal level", func() {
			Expect(Normal().Class()).To(Equal(processpriority.Normal))
			Expect(Normal().String()).To(HavePrefix("Normal"))
		})

		It("labels the least favoured level as idle", func() {
			Expect(leastFavoured.Class()).To(Equal(processpriority.Idle))
		})
	})
})
