package components

// PageView is everything the landing page needs from the current
// visitor's state: the countdown display, which sections have already
// played their entrance animation, and which FAQ entries are open.
type PageView struct {
	Countdown string
	Revealed  map[string]bool
	FAQOpen   []bool
}

// Animated sections, in page order. The footer does not animate.
var sectionNames = []string{
	"hero",
	"painpoints",
	"benefits",
	"curriculum",
	"audience",
	"pricing",
	"guarantee",
	"faq",
	"cta",
}

// SectionNames returns the regions that carry a reveal trigger.
func SectionNames() []string {
	out := make([]string, len(sectionNames))
	copy(out, sectionNames)
	return out
}

// FAQCount returns the number of disclosure items on the page.
func FAQCount() int {
	return len(FAQ)
}

// StaticView is the view for renderings with no visitor state (static
// export, tests): everything visible, every FAQ entry closed.
func StaticView(initialCountdown string) PageView {
	revealed := make(map[string]bool, len(sectionNames))
	for _, s := range sectionNames {
		revealed[s] = true
	}
	return PageView{
		Countdown: initialCountdown,
		Revealed:  revealed,
		FAQOpen:   make([]bool, len(FAQ)),
	}
}

func (v PageView) revealed(section string) bool {
	return v.Revealed[section]
}

func (v PageView) faqOpen(i int) bool {
	return i >= 0 && i < len(v.FAQOpen) && v.FAQOpen[i]
}
