package viewer_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/eduvision/internal/catalog"
	"github.com/san-kum/eduvision/internal/viewer"
)

var _ = Describe("Machine", func() {
	var (
		m      *viewer.Machine
		ticket viewer.Ticket
	)

	BeforeEach(func() {
		m, ticket = viewer.New(catalog.Mechanical)
	})

	Describe("mount", func() {
		It("starts loading the category default with the mount delay", func() {
			s := m.State()
			Expect(s.Loading).To(BeTrue())
			Expect(s.ModelID).To(Equal("engine"))
			Expect(ticket.ModelID).To(Equal("engine"))
			Expect(ticket.Delay).To(Equal(viewer.DefaultMountDelay))
		})

		It("settles to the documented initial state", func() {
			Expect(m.Complete(ticket)).To(BeTrue())
			Expect(m.State()).To(Equal(viewer.State{
				Loading:        false,
				Category:       catalog.Mechanical,
				ModelID:        "engine",
				Rotating:       true,
				Zoom:           1.0,
				ShowDimensions: false,
				Tab:            viewer.Overview,
			}))
		})

		It("honours custom delays", func() {
			_, t := viewer.New(catalog.Biological, viewer.WithDelays(viewer.Delays{Mount: 10, Select: 5}))
			Expect(t.Delay).To(BeEquivalentTo(10))
		})
	})

	Describe("selecting a model", func() {
		BeforeEach(func() {
			Expect(m.Complete(ticket)).To(BeTrue())
		})

		It("re-enters loading and settles on the new model", func() {
			before := m.State()
			t, err := m.Select("pump")
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Delay).To(Equal(viewer.DefaultSelectDelay))
			Expect(m.State().Loading).To(BeTrue())

			Expect(m.Complete(t)).To(BeTrue())
			after := m.State()
			Expect(after.Loading).To(BeFalse())
			Expect(after.ModelID).To(Equal("pump"))

			after.ModelID = before.ModelID
			Expect(after).To(Equal(before))
		})

		It("rejects ids outside the active catalog", func() {
			before := m.State()
			_, err := m.Select("neuron")
			Expect(err).To(MatchError(viewer.ErrNotInCatalog))
			Expect(m.State()).To(Equal(before))
		})

		It("lets only the latest selection finish loading", func() {
			a, err := m.Select("pump")
			Expect(err).NotTo(HaveOccurred())
			b, err := m.Select("valve")
			Expect(err).NotTo(HaveOccurred())

			Expect(m.Complete(a)).To(BeFalse())
			Expect(m.State().Loading).To(BeTrue())

			Expect(m.Complete(b)).To(BeTrue())
			Expect(m.State().Loading).To(BeFalse())
			Expect(m.State().ModelID).To(Equal("valve"))
		})

		It("ignores a stale completion that arrives after the latest one", func() {
			a, _ := m.Select("pump")
			b, _ := m.Select("cylinder")
			Expect(m.Complete(b)).To(BeTrue())
			Expect(m.Complete(a)).To(BeFalse())
			Expect(m.State().ModelID).To(Equal("cylinder"))
		})

		It("wraps when stepping through the catalog", func() {
			t := m.Step(-1)
			Expect(t.ModelID).To(Equal("valve"))
			t = m.Step(1)
			Expect(t.ModelID).To(Equal("engine"))
		})
	})

	Describe("switching category", func() {
		It("resets the selection to the new default mid-session", func() {
			Expect(m.Complete(ticket)).To(BeTrue())
			sel, _ := m.Select("pump")
			Expect(m.Complete(sel)).To(BeTrue())

			t := m.SetCategory(catalog.Biological)
			Expect(m.State().ModelID).To(Equal("brain"))
			Expect(m.State().Loading).To(BeTrue())
			Expect(t.Delay).To(Equal(viewer.DefaultMountDelay))

			Expect(m.Complete(t)).To(BeTrue())
			Expect(m.State().Loading).To(BeFalse())
			Expect(m.State().ModelID).To(Equal("brain"))
		})

		It("supersedes a selection still in flight", func() {
			sel, _ := m.Select("pump")
			t := m.SetCategory(catalog.Biological)
			Expect(m.Complete(sel)).To(BeFalse())
			Expect(m.Complete(t)).To(BeTrue())
		})

		DescribeTable("always lands on a member of the catalog",
			func(c catalog.Category, want string) {
				m.SetCategory(c)
				s := m.State()
				Expect(catalog.For(c).Contains(s.ModelID)).To(BeTrue())
				Expect(s.ModelID).To(Equal(want))
			},
			Entry("mechanical", catalog.Mechanical, "engine"),
			Entry("biological", catalog.Biological, "brain"),
		)
	})

	Describe("zoom", func() {
		It("stops at the upper bound", func() {
			for i := 0; i < 10; i++ {
				Expect(m.ZoomIn()).To(BeTrue())
			}
			Expect(m.State().Zoom).To(Equal(viewer.MaxZoom))
			Expect(m.ZoomIn()).To(BeFalse())
			Expect(m.State().Zoom).To(Equal(viewer.MaxZoom))
		})

		It("stops at the lower bound", func() {
			for i := 0; i < 5; i++ {
				Expect(m.ZoomOut()).To(BeTrue())
			}
			Expect(m.State().Zoom).To(Equal(viewer.MinZoom))
			Expect(m.ZoomOut()).To(BeFalse())
		})

		It("stays inside the bounds for any sequence of steps", func() {
			rng := rand.New(rand.NewSource(7))
			for i := 0; i < 500; i++ {
				if rng.Intn(2) == 0 {
					m.ZoomIn()
				} else {
					m.ZoomOut()
				}
				z := m.State().Zoom
				Expect(z).To(BeNumerically(">=", viewer.MinZoom))
				Expect(z).To(BeNumerically("<=", viewer.MaxZoom))
			}
		})
	})

	Describe("toggles", func() {
		BeforeEach(func() {
			Expect(m.Complete(ticket)).To(BeTrue())
		})

		It("returns rotation to its original value after two toggles", func() {
			orig := m.State().Rotating
			m.ToggleRotation()
			Expect(m.State().Rotating).NotTo(Equal(orig))
			m.ToggleRotation()
			Expect(m.State().Rotating).To(Equal(orig))
		})

		It("ignores rotation toggles while loading", func() {
			_, _ = m.Select("pump")
			Expect(m.ToggleRotation()).To(BeFalse())
			Expect(m.State().Rotating).To(BeTrue())
		})

		It("flips the dimension overlay in any state", func() {
			_, _ = m.Select("pump")
			m.ToggleDimensions()
			Expect(m.State().ShowDimensions).To(BeTrue())
		})

		It("selects info tabs", func() {
			Expect(m.SelectTab(viewer.Details)).To(Succeed())
			Expect(m.State().Tab).To(Equal(viewer.Details))
			Expect(m.SelectTab(viewer.Tab(9))).To(MatchError(viewer.ErrUnknownTab))
			Expect(m.State().Tab).To(Equal(viewer.Details))
		})
	})
})

var _ = DescribeTable("ParseTab",
	func(in string, want viewer.Tab, ok bool) {
		got, err := viewer.ParseTab(in)
		if !ok {
			Expect(err).To(MatchError(viewer.ErrUnknownTab))
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
	},
	Entry("overview", "Overview", viewer.Overview, true),
	Entry("specs", "specs", viewer.Specs, true),
	Entry("details", " details ", viewer.Details, true),
	Entry("unknown", "history", viewer.Overview, false),
)
