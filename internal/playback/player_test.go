package playback_test

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/playback"
)

type recorder struct {
	mu    sync.Mutex
	snaps []playback.Snapshot
}

func (r *recorder) OnSnapshot(s playback.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) last() playback.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snaps) == 0 {
		return playback.Snapshot{}
	}
	return r.snaps[len(r.snaps)-1]
}

func (r *recorder) steps() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, len(r.snaps))
	for _, s := range r.snaps {
		out = append(out, s.Step)
	}
	return out
}

var _ = Describe("Player", func() {
	var (
		ctrl   *playback.Controller
		player *playback.Player
		rec    *recorder
		ctx    context.Context
		cancel context.CancelFunc
		errc   chan error
	)

	BeforeEach(func() {
		ctrl = playback.New(playback.MinSpeed)
		player = playback.NewPlayer(ctrl)
		rec = &recorder{}
		player.AddObserver(rec)
		ctx, cancel = context.WithCancel(context.Background())
		errc = make(chan error, 1)
	})

	AfterEach(func() {
		cancel()
		Eventually(player.Done()).Should(BeClosed())
	})

	run := func() {
		go func() { errc <- player.Run(ctx) }()
	}

	It("auto-advances a run to completion", func() {
		player.StopWhenComplete = true
		run()
		player.Start(2)

		Eventually(errc, 3*time.Second).Should(Receive(BeNil()))
		final := rec.last()
		Expect(final.Status).To(Equal(playback.StatusComplete))
		Expect(final.Towers[2]).To(Equal(hanoi.Peg{2, 1}))
	})

	It("applies moves strictly in order", func() {
		player.StopWhenComplete = true
		run()
		player.Start(2)

		Eventually(errc, 3*time.Second).Should(Receive(BeNil()))
		steps := rec.steps()
		for i := 1; i < len(steps); i++ {
			Expect(steps[i]).To(BeNumerically(">=", steps[i-1]))
			Expect(steps[i] - steps[i-1]).To(BeNumerically("<=", 1))
		}
	})

	It("holds position while paused and steps manually", func() {
		run()
		player.Start(3)
		player.TogglePause()
		player.Step()

		Eventually(func() playback.Status { return rec.last().Status }).Should(Equal(playback.StatusPaused))
		Eventually(func() int { return rec.last().Step }).Should(Equal(1))
		Consistently(func() int { return rec.last().Step }, 500*time.Millisecond).Should(Equal(1))
	})

	Context("when the speed changes with a step pending", func() {
		It("lets the pending step fire on its original delay under the next policy", func() {
			run()
			player.Start(3)
			player.Flush()
			player.SetSpeed(playback.MaxSpeed)

			Eventually(func() int { return rec.last().Step }, 700*time.Millisecond, 10*time.Millisecond).Should(Equal(1))
			Expect(rec.last().Speed).To(Equal(playback.MaxSpeed))
			// the following step waits the new, slower delay
			Consistently(func() int { return rec.last().Step }, 800*time.Millisecond, 20*time.Millisecond).Should(Equal(1))
		})

		It("re-arms the pending step at the new delay under the immediate policy", func() {
			ctrl.Policy = playback.SpeedImmediate
			run()
			player.Start(3)
			player.Flush()
			player.SetSpeed(playback.MaxSpeed)

			Consistently(func() int { return rec.last().Step }, 700*time.Millisecond, 20*time.Millisecond).Should(Equal(0))
			Eventually(func() int { return rec.last().Step }, 1500*time.Millisecond, 10*time.Millisecond).Should(Equal(1))
		})

		It("picks up a faster speed right away under the immediate policy", func() {
			slow := playback.New(playback.MaxSpeed)
			slow.Policy = playback.SpeedImmediate
			player = playback.NewPlayer(slow)
			rec = &recorder{}
			player.AddObserver(rec)
			run()
			player.Start(3)
			player.Flush()
			player.SetSpeed(playback.MinSpeed)

			Eventually(func() int { return rec.last().Step }, 700*time.Millisecond, 10*time.Millisecond).Should(BeNumerically(">=", 1))
		})
	})

	It("returns the context error on cancel", func() {
		run()
		player.Start(7)
		cancel()
		Eventually(errc).Should(Receive(MatchError(context.Canceled)))
	})

	It("returns nil on Stop", func() {
		run()
		player.Start(3)
		player.Stop()
		Eventually(errc).Should(Receive(BeNil()))
		Expect(rec.last().Status).To(Equal(playback.StatusIdle))
	})
})
