package sorting_test

import (
	"context"
	"errors"
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/sorting"
)

func randomValues(seed int64, n int) []int {
	rng := rand.New(rand.NewSource(seed))
	a := array.New(n)
	a.Randomize(rng, 50, 670)
	return a.Values()
}

var _ = Describe("Algorithms", func() {
	for _, alg := range sorting.Algorithms() {
		alg := alg

		Describe(alg.Name, func() {
			It("sorts the five element scenario", func() {
				a, _, out := run(alg, []int{5, 3, 4, 1, 2})
				Expect(out).To(Equal(sorting.Completed))
				Expect(a.Values()).To(Equal([]int{1, 2, 3, 4, 5}))
			})

			It("sorts random arrays into a permutation of the input", func() {
				for seed := int64(1); seed <= 5; seed++ {
					values := randomValues(seed, 160)
					a, _, out := run(alg, values)

					Expect(out).To(Equal(sorting.Completed))
					Expect(a.IsSorted()).To(BeTrue())
					Expect(a.SameMultiset(array.FromValues(values))).To(BeTrue())
				}
			})

			It("handles duplicates and tiny inputs", func() {
				for _, values := range [][]int{{}, {7}, {2, 1}, {3, 3, 1, 3, 1}} {
					a, _, _ := run(alg, values)
					expected := append([]int{}, values...)
					sort.Ints(expected)
					Expect(a.Values()).To(Equal(expected))
				}
			})

			It("leaves an already sorted array unchanged", func() {
				values := []int{1, 2, 2, 4, 8, 16}
				a, rec, out := run(alg, values)

				Expect(out).To(Equal(sorting.Completed))
				Expect(a.Values()).To(Equal(values))
				Expect(rec.frames).NotTo(BeEmpty())
			})

			It("returns immediately when cancelled before the first step", func() {
				values := []int{9, 4, 7, 1}
				a := array.FromValues(values)
				ctx, cancel := context.WithCancel(context.Background())
				cancel()

				rec := &recorder{}
				out := sorting.Run(ctx, alg, a, rec, sorting.DefaultTiming())

				Expect(out).To(Equal(sorting.Cancelled))
				Expect(a.Values()).To(Equal(values))
				Expect(rec.frames).To(BeEmpty())
				Expect(rec.polls).To(BeZero())
			})

			It("keeps the multiset when cancelled at any poll", func() {
				values := randomValues(42, 24)
				_, full, _ := run(alg, values)
				sortPolls := full.polls - len(values) - 3

				for at := 1; at <= sortPolls; at += 3 {
					a := array.FromValues(values)
					ctx, cancel := context.WithCancel(context.Background())
					rec := &recorder{cancel: cancel, cancelAfter: at}

					out := sorting.Run(ctx, alg, a, rec, sorting.DefaultTiming())
					cancel()

					Expect(out).To(Equal(sorting.Cancelled))
					Expect(a.SameMultiset(array.FromValues(values))).To(BeTrue(),
						"cancelled at poll %d: %v", at, a.Values())
					Expect(rec.count(sorting.KindConfirm)).To(BeZero())
				}
			})

			It("polls input before every compare or move", func() {
				_, rec, _ := run(alg, randomValues(3, 40))
				steps := rec.count(sorting.KindCompare) + rec.count(sorting.KindSwap) + rec.count(sorting.KindWrite)
				// Deferred writes (an insertion key landing) follow the poll of
				// the shift that preceded them.
				Expect(rec.polls).To(BeNumerically(">=", steps/2))
			})
		})
	}
})

var _ = Describe("Steps", func() {
	It("highlights the compared pair in bubble sort", func() {
		alg, err := sorting.Lookup("bubble")
		Expect(err).NotTo(HaveOccurred())

		_, rec, _ := run(alg, []int{2, 1, 3})
		first := rec.frames[0]
		Expect(first.Kind).To(Equal(sorting.KindSwap))
		Expect(first.Highlight.Compare).To(Equal(0))
		Expect(first.Highlight.Target).To(Equal(1))
		Expect(first.Writes).To(Equal(2))
		Expect(rec.values[0]).To(Equal([]int{1, 2, 3}))
	})

	It("tracks the candidate minimum in selection sort", func() {
		alg, _ := sorting.Lookup("selection")
		_, rec, _ := run(alg, []int{3, 1, 2})

		Expect(rec.frames[0].Highlight).To(Equal(sorting.Highlight{Compare: 1, Target: 0, Min: 1}))
		Expect(rec.frames[1].Highlight).To(Equal(sorting.Highlight{Compare: 2, Target: 0, Min: 1}))
		Expect(rec.frames[2].Kind).To(Equal(sorting.KindSwap))
		Expect(rec.values[2]).To(Equal([]int{1, 3, 2}))
	})

	It("waits longer after a selection swap", func() {
		alg, _ := sorting.Lookup("selection")
		timing := sorting.Timing{Step: 1, Swap: 100}
		a := array.FromValues([]int{2, 1})
		rec := &recorder{}

		sorting.Run(context.Background(), alg, a, rec, timing)
		Expect(rec.paused).To(BeNumerically("==", 101))
	})

	It("uses the last element as the quick sort pivot", func() {
		alg, _ := sorting.Lookup("quick")
		_, rec, _ := run(alg, []int{4, 1, 3})
		for _, f := range rec.frames[:2] {
			Expect(f.Highlight.Target).To(Equal(2))
		}
	})

	It("counts comparisons", func() {
		alg, _ := sorting.Lookup("bubble")
		_, rec, _ := run(alg, []int{4, 3, 2, 1})
		total := 0
		for _, f := range rec.frames {
			total += f.Comparisons
		}
		Expect(total).To(Equal(6))
	})
})

var _ = Describe("Complete", func() {
	It("sweeps then flashes three times without touching the array", func() {
		values := []int{1, 2, 3, 4}
		a := array.FromValues(values)
		rec := &recorder{}
		timing := sorting.Timing{Sweep: 10, Flash: 200}

		sorting.Complete(context.Background(), a, rec, timing)

		Expect(a.Values()).To(Equal(values))
		Expect(rec.frames).To(HaveLen(4 + 3*2))
		for i := 0; i < 4; i++ {
			Expect(rec.frames[i].Kind).To(Equal(sorting.KindConfirm))
			Expect(rec.frames[i].Confirmed).To(Equal(i))
		}
		for f := 0; f < 3; f++ {
			Expect(rec.frames[4+2*f].Kind).To(Equal(sorting.KindFlash))
			Expect(rec.frames[5+2*f].Kind).To(Equal(sorting.KindPlain))
		}
		Expect(rec.paused).To(BeNumerically("==", 4*10+6*200))
	})

	It("stops once cancelled", func() {
		a := array.FromValues([]int{1, 2, 3, 4, 5, 6})
		ctx, cancel := context.WithCancel(context.Background())
		rec := &recorder{cancel: cancel, cancelAfter: 2}

		sorting.Complete(ctx, a, rec, sorting.DefaultTiming())
		Expect(rec.frames).To(HaveLen(2))
	})

	It("marks the prefix as confirmed", func() {
		a := array.FromValues([]int{1, 2, 3})
		f := sorting.Frame{Kind: sorting.KindConfirm, Confirmed: 1, Highlight: sorting.NoHighlight, Array: a}
		Expect(f.RoleAt(0)).To(Equal(sorting.RoleConfirmed))
		Expect(f.RoleAt(1)).To(Equal(sorting.RoleConfirmed))
		Expect(f.RoleAt(2)).To(Equal(sorting.RoleNormal))
	})
})

var _ = Describe("Registry", func() {
	It("keys the algorithms 1 to 7 in menu order", func() {
		Expect(sorting.Names()).To(Equal([]string{"selection", "bubble", "insertion", "merge", "quick", "heap", "shell"}))
		for i, alg := range sorting.Algorithms() {
			Expect(alg.Key).To(Equal(rune('1' + i)))
			got, ok := sorting.ByKey(alg.Key)
			Expect(ok).To(BeTrue())
			Expect(got.Name).To(Equal(alg.Name))
		}
	})

	It("resolves names loosely", func() {
		for _, name := range []string{"Quick", "quick_sort", "quicksort", "5"} {
			alg, err := sorting.Lookup(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(alg.Name).To(Equal("quick"))
		}
	})

	It("rejects unknown names", func() {
		_, err := sorting.Lookup("bogo")
		Expect(errors.Is(err, sorting.ErrUnknownAlgorithm)).To(BeTrue())
		_, ok := sorting.ByKey('8')
		Expect(ok).To(BeFalse())
	})
})
