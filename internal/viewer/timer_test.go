package viewer_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/viewer"
)

var _ = Describe("Timer", func() {
	It("delivers only the most recent ticket", func() {
		m, first := viewer.New(catalog.Mechanical, viewer.WithDelays(viewer.Delays{
			Mount:  200 * time.Millisecond,
			Select: 20 * time.Millisecond,
		}))
		tm := viewer.NewTimer()

		var (
			mu    sync.Mutex
			fired []viewer.Ticket
		)
		deliver := func(t viewer.Ticket) {
			mu.Lock()
			defer mu.Unlock()
			fired = append(fired, t)
			m.Complete(t)
		}

		tm.Schedule(first, deliver)
		mu.Lock()
		second, err := m.Select("pump")
		mu.Unlock()
		Expect(err).NotTo(HaveOccurred())
		tm.Schedule(second, deliver)

		Eventually(func() int {
			mu.Lock()
			defer mu.Unlock()
			return len(fired)
		}).Should(Equal(1))
		Consistently(func() int {
			mu.Lock()
			defer mu.Unlock()
			return len(fired)
		}, 60*time.Millisecond).Should(Equal(1))

		mu.Lock()
		defer mu.Unlock()
		Expect(fired[0].ModelID).To(Equal("pump"))
		Expect(m.State().Loading).To(BeFalse())
		Expect(tm.Pending()).To(BeFalse())
	})

	It("drops the pending completion on Stop", func() {
		tm := viewer.NewTimer()
		called := make(chan struct{}, 1)
		tm.Schedule(viewer.Ticket{Gen: 1, Delay: 10 * time.Millisecond}, func(viewer.Ticket) {
			called <- struct{}{}
		})
		Expect(tm.Pending()).To(BeTrue())
		tm.Stop()
		Consistently(called, 40*time.Millisecond).ShouldNot(Receive())
		Expect(tm.Pending()).To(BeFalse())
	})
})
