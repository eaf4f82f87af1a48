package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
)

type screen struct {
	kinds    []sorting.Kind
	statuses []session.Status
	closed   int
	closeErr error
}

func (s *screen) Draw(f sorting.Frame)            { s.kinds = append(s.kinds, f.Kind) }
func (s *screen) Announce(st session.Status)      { s.statuses = append(s.statuses, st) }
func (s *screen) Close() error                    { s.closed++; return s.closeErr }
func (s *screen) count(kind sorting.Kind) (n int) {
	for _, k := range s.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// script answers the nth poll with the events returned by next.
type script struct {
	polls int
	next  func(poll int) []session.Event
}

func (s *script) Poll() []session.Event {
	s.polls++
	return s.next(s.polls)
}

func options() session.Options {
	return session.Options{
		Size:   24,
		Min:    1,
		Max:    100,
		Timing: sorting.Timing{},
		Frame:  time.Millisecond,
		Rand:   rand.New(rand.NewSource(11)),
		Sleep:  func(time.Duration) {},
	}
}

var _ = Describe("Session", func() {
	var (
		scr  *screen
		in   *script
		sess *session.Session
		opts session.Options
	)

	BeforeEach(func() {
		scr = &screen{}
		in = &script{next: func(int) []session.Event { return nil }}
		opts = options()
	})

	build := func() {
		sess = session.New(opts, scr, in)
	}

	It("starts on a randomized array within range", func() {
		build()
		a := sess.State().Array
		Expect(a.Len()).To(Equal(24))
		Expect(a.InRange(1, 100)).To(BeTrue())
		Expect(sess.State().Sorting).To(BeFalse())
	})

	It("randomizes only while idle", func() {
		build()
		before := sess.State().Array.Values()
		sess.Dispatch(session.Key(session.KeyRandomize))
		Expect(sess.State().Array.Values()).NotTo(Equal(before))
		Expect(sess.State().Array.InRange(1, 100)).To(BeTrue())
	})

	It("ignores unbound keys", func() {
		build()
		before := sess.State().Array.Values()
		sess.Dispatch(session.Key('x'))
		sess.Dispatch(session.Key('8'))
		Expect(sess.State().Array.Values()).To(Equal(before))
		Expect(sess.State().Quit).To(BeFalse())
		Expect(scr.kinds).To(BeEmpty())
	})

	It("runs an algorithm to completion synchronously", func() {
		build()
		original := sess.State().Array.Clone()
		sess.Dispatch(session.Key('2'))

		st := sess.State()
		Expect(st.Sorting).To(BeFalse())
		Expect(st.Array.IsSorted()).To(BeTrue())
		Expect(st.Array.SameMultiset(original)).To(BeTrue())
		Expect(scr.count(sorting.KindConfirm)).To(Equal(24))
		Expect(scr.count(sorting.KindFlash)).To(Equal(3))
		Expect(scr.statuses).To(Equal([]session.Status{
			{Algorithm: "bubble", Sorting: true},
			{Algorithm: "bubble", Outcome: sorting.Completed},
		}))
	})

	It("ignores start and randomize requests while an algorithm runs", func() {
		in.next = func(poll int) []session.Event {
			if poll == 3 {
				return []session.Event{session.Key('5'), session.Key(session.KeyRandomize)}
			}
			return nil
		}
		build()
		original := sess.State().Array.Clone()
		sess.Dispatch(session.Key('1'))

		Expect(sess.State().Array.IsSorted()).To(BeTrue())
		Expect(sess.State().Array.SameMultiset(original)).To(BeTrue())
		Expect(scr.statuses).To(HaveLen(2))
		Expect(scr.statuses[0].Algorithm).To(Equal("selection"))
	})

	It("quits mid-sort leaving a permutation and skipping the animation", func() {
		in.next = func(poll int) []session.Event {
			switch poll {
			case 1:
				return []session.Event{session.Key('4')}
			case 6:
				return []session.Event{session.Key(session.KeyQuit)}
			}
			return nil
		}
		build()
		original := sess.State().Array.Clone()

		Expect(sess.Run(context.Background())).To(Succeed())
		st := sess.State()
		Expect(st.Quit).To(BeTrue())
		Expect(st.Sorting).To(BeFalse())
		Expect(st.Array.SameMultiset(original)).To(BeTrue())
		Expect(scr.count(sorting.KindConfirm)).To(BeZero())
		Expect(scr.count(sorting.KindFlash)).To(BeZero())
		Expect(scr.statuses[len(scr.statuses)-1].Outcome).To(Equal(sorting.Cancelled))
		Expect(scr.closed).To(Equal(1))
		Expect(in.polls).To(Equal(6))
	})

	It("treats a close event like quit", func() {
		in.next = func(poll int) []session.Event {
			if poll == 2 {
				return []session.Event{session.Close()}
			}
			return nil
		}
		build()
		Expect(sess.Run(context.Background())).To(Succeed())
		Expect(sess.State().Quit).To(BeTrue())
		Expect(in.polls).To(Equal(2))
		Expect(scr.count(sorting.KindPlain)).To(Equal(2))
	})

	It("stops when the outer context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		in.next = func(poll int) []session.Event {
			if poll == 3 {
				cancel()
			}
			return nil
		}
		build()
		Expect(sess.Run(ctx)).To(Succeed())
		Expect(sess.State().Quit).To(BeTrue())
		Expect(scr.closed).To(Equal(1))
	})

	It("can start another run after one finished", func() {
		in.next = func(poll int) []session.Event {
			if !sess.State().Sorting {
				switch poll {
				case 1:
					return []session.Event{session.Key('7')}
				}
				return []session.Event{session.Key(session.KeyRandomize), session.Key('6'), session.Key(session.KeyQuit)}
			}
			return nil
		}
		build()
		Expect(sess.Run(context.Background())).To(Succeed())
		Expect(sess.State().Array.IsSorted()).To(BeTrue())
		names := []string{}
		for _, st := range scr.statuses {
			if st.Sorting {
				names = append(names, st.Algorithm)
			}
		}
		Expect(names).To(Equal([]string{"shell", "heap"}))
	})

	It("forwards algorithm frames to observers", func() {
		cmp := metrics.NewComparisons()
		opts.Observers = []session.Observer{cmp}
		build()
		sess.Dispatch(session.Key('3'))
		Expect(cmp.Value()).To(BeNumerically(">", 0))
	})

	It("pauses through the configured sleeper", func() {
		var slept time.Duration
		opts.Timing = sorting.Timing{Step: time.Millisecond, Swap: time.Millisecond, Sweep: time.Millisecond, Flash: time.Millisecond}
		opts.Sleep = func(d time.Duration) { slept += d }
		build()
		sess.Dispatch(session.Key('2'))
		Expect(slept).To(BeNumerically(">=", 30*time.Millisecond))
	})
})

var _ = Describe("Launch", func() {
	It("returns the open error without running", func() {
		boom := errors.New("no display")
		err := session.Launch(context.Background(), func() (session.Renderer, session.Input, error) {
			return nil, nil, boom
		}, options())
		Expect(err).To(MatchError(boom))
	})

	It("runs and releases the collaborators", func() {
		scr := &screen{}
		in := &script{next: func(int) []session.Event { return []session.Event{session.Key('q')} }}
		err := session.Launch(context.Background(), func() (session.Renderer, session.Input, error) {
			return scr, in, nil
		}, options())
		Expect(err).NotTo(HaveOccurred())
		Expect(scr.closed).To(Equal(1))
	})

	It("logs a collaborator that fails while running", func() {
		var logs bytes.Buffer
		opts := options()
		opts.Logger = slog.New(slog.NewTextHandler(&logs, nil))
		scr := &screen{closeErr: errors.New("tty gone")}
		in := &script{next: func(int) []session.Event { return []session.Event{session.Close()} }}

		err := session.Launch(context.Background(), func() (session.Renderer, session.Input, error) {
			return scr, in, nil
		}, opts)
		Expect(err).To(MatchError(ContainSubstring("tty gone")))
		Expect(logs.String()).To(ContainSubstring("level=ERROR"))
		Expect(logs.String()).To(ContainSubstring("tty gone"))
	})
})
