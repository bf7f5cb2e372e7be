package playback_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/hanoisim/internal/hanoi"
	"github.com/san-kum/hanoisim/internal/playback"
)

var _ = Describe("Controller", func() {
	var c *playback.Controller

	BeforeEach(func() {
		c = playback.New(playback.DefaultSpeed)
	})

	Context("when idle", func() {
		It("reports idle and ignores every command", func() {
			Expect(c.Status()).To(Equal(playback.StatusIdle))
			c.TogglePause()
			Expect(c.Step()).To(BeFalse())
			_, ok := c.Schedule()
			Expect(ok).To(BeFalse())
			Expect(c.Status()).To(Equal(playback.StatusIdle))
			Expect(c.Snapshot().Total).To(Equal(0))
		})
	})

	Describe("Start", func() {
		It("loads the canonical start position and runs", func() {
			c.Start(3)
			s := c.Snapshot()
			Expect(s.Status).To(Equal(playback.StatusRunning))
			Expect(s.Running).To(BeTrue())
			Expect(s.Step).To(Equal(0))
			Expect(s.Total).To(Equal(7))
			Expect(s.Towers[0]).To(Equal(hanoi.Peg{3, 2, 1}))
			Expect(s.Towers[1]).To(BeEmpty())
			Expect(s.Towers[2]).To(BeEmpty())
		})

		It("replaces an in-flight run", func() {
			c.Start(3)
			c.Step()
			c.Step()
			c.Start(2)
			s := c.Snapshot()
			Expect(s.Step).To(Equal(0))
			Expect(s.Total).To(Equal(3))
			Expect(s.Towers[0]).To(Equal(hanoi.Peg{2, 1}))
		})
	})

	Describe("Step", func() {
		It("solves one disk in one move", func() {
			c.Start(1)
			Expect(c.Snapshot().Moves).To(Equal([]hanoi.Move{{From: 0, To: 2}}))
			Expect(c.Step()).To(BeTrue())
			s := c.Snapshot()
			Expect(s.Towers[0]).To(BeEmpty())
			Expect(s.Towers[2]).To(Equal(hanoi.Peg{1}))
			Expect(s.Status).To(Equal(playback.StatusComplete))
		})

		It("walks the two disk scenario", func() {
			c.Start(2)
			expected := []hanoi.Towers{
				{hanoi.Peg{2}, hanoi.Peg{1}, hanoi.Peg{}},
				{hanoi.Peg{}, hanoi.Peg{1}, hanoi.Peg{2}},
				{hanoi.Peg{}, hanoi.Peg{}, hanoi.Peg{2, 1}},
			}
			for i, want := range expected {
				Expect(c.Step()).To(BeTrue())
				s := c.Snapshot()
				Expect(s.Step).To(Equal(i + 1))
				for p := range want {
					if len(want[p]) == 0 {
						Expect(s.Towers[p]).To(BeEmpty())
					} else {
						Expect(s.Towers[p]).To(Equal(want[p]))
					}
				}
			}
		})

		It("ends with every disk on peg 2", func() {
			c.Start(3)
			for c.Step() {
			}
			s := c.Snapshot()
			Expect(s.Step).To(Equal(7))
			Expect(s.Towers[2]).To(Equal(hanoi.Peg{3, 2, 1}))
			Expect(s.Towers[0]).To(BeEmpty())
			Expect(s.Towers[1]).To(BeEmpty())
		})

		It("is a no-op once the sequence is exhausted", func() {
			c.Start(2)
			for c.Step() {
			}
			before := c.Snapshot()
			Expect(c.Step()).To(BeFalse())
			Expect(c.Snapshot()).To(Equal(before))
		})
	})

	Describe("TogglePause", func() {
		It("round-trips without touching towers or step", func() {
			c.Start(3)
			c.Step()
			before := c.Snapshot()

			c.TogglePause()
			Expect(c.Status()).To(Equal(playback.StatusPaused))
			Expect(c.Snapshot().Towers).To(Equal(before.Towers))
			Expect(c.Snapshot().Step).To(Equal(before.Step))

			c.TogglePause()
			Expect(c.Snapshot()).To(Equal(before))
		})

		It("stays complete after the run ends", func() {
			c.Start(1)
			c.Step()
			c.TogglePause()
			Expect(c.Status()).To(Equal(playback.StatusComplete))
		})
	})

	Describe("scheduling", func() {
		It("advances exactly once per pending tick", func() {
			c.Start(3)
			t, ok := c.Schedule()
			Expect(ok).To(BeTrue())
			Expect(t.Delay).To(Equal(playback.DefaultSpeed))
			Expect(c.Fire(t)).To(BeTrue())
			Expect(c.Fire(t)).To(BeFalse())
			Expect(c.Snapshot().Step).To(Equal(1))
		})

		It("drops ticks superseded by a restart", func() {
			c.Start(3)
			t, _ := c.Schedule()
			c.Start(3)
			Expect(c.Fire(t)).To(BeFalse())
			Expect(c.Snapshot().Step).To(Equal(0))
		})

		It("drops ticks superseded by a pause toggle", func() {
			c.Start(3)
			t, _ := c.Schedule()
			c.TogglePause()
			c.TogglePause()
			Expect(c.Fire(t)).To(BeFalse())
			Expect(c.Snapshot().Step).To(Equal(0))
		})

		It("drops ticks superseded by a manual step", func() {
			c.Start(3)
			t, _ := c.Schedule()
			c.Step()
			Expect(c.Fire(t)).To(BeFalse())
			Expect(c.Snapshot().Step).To(Equal(1))
		})

		It("drops the older tick when rescheduled", func() {
			c.Start(3)
			first, _ := c.Schedule()
			second, _ := c.Schedule()
			Expect(c.Fire(first)).To(BeFalse())
			Expect(c.Fire(second)).To(BeTrue())
		})

		It("schedules nothing while paused or complete", func() {
			c.Start(1)
			c.TogglePause()
			_, ok := c.Schedule()
			Expect(ok).To(BeFalse())

			c.TogglePause()
			c.Step()
			_, ok = c.Schedule()
			Expect(ok).To(BeFalse())
		})

		It("drops ticks after Stop", func() {
			c.Start(2)
			t, _ := c.Schedule()
			c.Stop()
			Expect(c.Fire(t)).To(BeFalse())
			Expect(c.Status()).To(Equal(playback.StatusIdle))
		})
	})

	Describe("SetSpeed", func() {
		It("clamps to the supported range", func() {
			c.SetSpeed(10 * time.Millisecond)
			Expect(c.Speed()).To(Equal(playback.MinSpeed))
			c.SetSpeed(time.Minute)
			Expect(c.Speed()).To(Equal(playback.MaxSpeed))
		})

		It("keeps the pending tick under the next-tick policy", func() {
			c.Start(3)
			t, _ := c.Schedule()
			c.SetSpeed(300 * time.Millisecond)

			pending, ok := c.Pending()
			Expect(ok).To(BeTrue())
			Expect(pending).To(Equal(t))
			Expect(c.Fire(t)).To(BeTrue())

			next, ok := c.Schedule()
			Expect(ok).To(BeTrue())
			Expect(next.Delay).To(Equal(300 * time.Millisecond))
		})

		It("cancels the pending tick under the immediate policy", func() {
			c.Policy = playback.SpeedImmediate
			c.Start(3)
			t, _ := c.Schedule()
			c.SetSpeed(300 * time.Millisecond)
			Expect(c.Fire(t)).To(BeFalse())
			_, pending := c.Pending()
			Expect(pending).To(BeFalse())
		})
	})

	It("hands out snapshots that do not alias controller state", func() {
		c.Start(3)
		s := c.Snapshot()
		s.Towers[0] = append(s.Towers[0][:0], 9)
		s.Moves[0] = hanoi.Move{From: 1, To: 0}
		fresh := c.Snapshot()
		Expect(fresh.Towers[0]).To(Equal(hanoi.Peg{3, 2, 1}))
		Expect(fresh.Moves[0]).To(Equal(hanoi.Move{From: 0, To: 2}))
	})
})

var _ = DescribeTable("ClampDisks",
	func(in, want int) {
		Expect(playback.ClampDisks(in)).To(Equal(want))
	},
	Entry("below range", 0, 1),
	Entry("inside range", 4, 4),
	Entry("above range", 12, 7),
)
