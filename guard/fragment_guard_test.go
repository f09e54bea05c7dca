package guard_test

import (
	"deskgate/guard"
	"deskgate/perm"
	"deskgate/testinfra"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fragment", func() {
	set := testinfra.BuildPermissionSet(10, "ann", map[string]perm.ResourcePermission{
		perm.ResourceTickets: {CanView: true},
	})

	Describe("Render", func() {
		It("should render the content when the requirement is satisfied", func() {
			fragment := guard.Fragment{
				Requirement:  perm.Requirement{Resource: perm.ResourceTickets, Action: perm.ActionView},
				Content:      "ticket list",
				Fallback:     "no access",
				ShowFallback: true,
			}
			content, visible := fragment.Render(set)
			Expect(visible).To(BeTrue())
			Expect(content).To(Equal("ticket list"))
		})

		It("should render the fallback when denied and the fallback is wanted", func() {
			fragment := guard.Fragment{
				Requirement:  perm.Requirement{Resource: perm.ResourceTickets, Action: perm.ActionDelete},
				Content:      "delete button",
				Fallback:     "request access",
				ShowFallback: true,
			}
			content, visible := fragment.Render(set)
			Expect(visible).To(BeTrue())
			Expect(content).To(Equal("request access"))
		})

		It("should render nothing when denied without a fallback", func() {
			fragment := guard.Fragment{
				Requirement: perm.Requirement{Resource: perm.ResourceTickets, Action: perm.ActionDelete},
				Content:     "delete button",
				Fallback:    "request access",
			}
			content, visible := fragment.Render(set)
			Expect(visible).To(BeFalse())
			Expect(content).To(BeNil())
		})

		It("should render nothing when the fallback is wanted but absent", func() {
			fragment := guard.Fragment{
				Requirement:  perm.Requirement{Resource: perm.ResourceTickets, Action: perm.ActionDelete},
				Content:      "delete button",
				ShowFallback: true,
			}
			_, visible := fragment.Render(set)
			Expect(visible).To(BeFalse())
		})

		It("should render an unrestricted fragment for an absent grant set", func() {
			fragment := guard.Fragment{Content: "home link"}
			content, visible := fragment.Render(nil)
			Expect(visible).To(BeTrue())
			Expect(content).To(Equal("home link"))
		})

		It("should deny a restricted fragment for an absent grant set", func() {
			fragment := guard.Fragment{
				Requirement: perm.Requirement{Resource: perm.ResourceTickets, Action: perm.ActionView},
				Content:     "ticket list",
			}
			_, visible := fragment.Render(nil)
			Expect(visible).To(BeFalse())
		})
	})
})
