package persistent_test

import (
	"slices"

	"github.com/mgnsk/ownlist/persistent"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("sharing a suffix", func() {
	var list1, list2, list3 *persistent.List[string]

	BeforeEach(func() {
		list1 = build("A", "B", "C", "D")
		list2 = list1.Tail()
		list3 = list2.Prepend("X")
	})

	AfterEach(func() {
		list1.Release()
		list2.Release()
		list3.Release()
		Expect(persistent.LiveNodes(list1)).To(BeZero())
	})

	Specify("every list sees its own values", func() {
		Expect(slices.Collect(list1.All())).To(Equal([]string{"A", "B", "C", "D"}))
		Expect(slices.Collect(list2.All())).To(Equal([]string{"B", "C", "D"}))
		Expect(slices.Collect(list3.All())).To(Equal([]string{"X", "B", "C", "D"}))
	})

	Specify("the suffix is not copied", func() {
		Expect(persistent.LiveNodes(list1)).To(Equal(5))
		// A's link, list2 and X's link.
		Expect(persistent.HeadRefs(list2)).To(Equal(3))
	})

	Specify("the first list is unchanged", func() {
		head, ok := list1.Head()
		Expect(ok).To(BeTrue())
		Expect(head).To(Equal("A"))
		Expect(list1.Len()).To(Equal(4))
	})

	When("the first list is released", func() {
		BeforeEach(func() {
			list1.Release()
		})

		Specify("only its own node is freed", func() {
			Expect(persistent.LiveNodes(list2)).To(Equal(4))
			Expect(persistent.HeadRefs(list2)).To(Equal(2))
		})

		Specify("the other lists stay valid", func() {
			Expect(slices.Collect(list2.All())).To(Equal([]string{"B", "C", "D"}))
			Expect(slices.Collect(list3.All())).To(Equal([]string{"X", "B", "C", "D"}))
		})
	})

	When("the prepended list is released", func() {
		BeforeEach(func() {
			list3.Release()
		})

		Specify("the shared suffix is kept", func() {
			Expect(persistent.LiveNodes(list1)).To(Equal(4))
			Expect(slices.Collect(list1.All())).To(Equal([]string{"A", "B", "C", "D"}))
		})
	})

	When("the tail is released", func() {
		BeforeEach(func() {
			list2.Release()
		})

		Specify("no node is freed", func() {
			Expect(persistent.LiveNodes(list1)).To(Equal(5))
			Expect(slices.Collect(list3.All())).To(Equal([]string{"X", "B", "C", "D"}))
		})
	})
})

var _ = Describe("releasing derived lists in any order", func() {
	var lists []*persistent.List[int]

	BeforeEach(func() {
		base := build(1, 2, 3)
		tail := base.Tail()
		lists = []*persistent.List[int]{
			base,
			tail,
			tail.Tail(),
			base.Prepend(0),
			tail.Prepend(10),
			base.Clone(),
		}
	})

	Specify("front to back", func() {
		for _, l := range lists {
			l.Release()
		}
		Expect(persistent.LiveNodes(lists[0])).To(BeZero())
	})

	Specify("back to front", func() {
		for _, l := range slices.Backward(lists) {
			l.Release()
		}
		Expect(persistent.LiveNodes(lists[0])).To(BeZero())
	})
})
