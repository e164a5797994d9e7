package components

import (
	"github.com/a-h/templ"
)

// Landing assembles the full funnel page for one visitor's view.
func Landing(v PageView) templ.Component {
	return Component(
		Layout(
			PageConfig{
				Title:       CourseName + " — " + CourseTitle,
				Description: "A self-paced online course taking you from scattered verses to a coherent faith: doctrine, church history and practice in six modules.",
			},
			Hero(v),
			PainPointsSection(v),
			BenefitsSection(v),
			CurriculumSection(v),
			AudienceSection(v),
			PricingSection(v),
			GuaranteeSection(v),
			FAQSection(v),
			CTASection(v),
			PageFooter(),
		),
	)
}
