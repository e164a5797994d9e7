package components

// Static copy for the Foundations of Christian Theology funnel page.
// Everything here is inert configuration: no field is read anywhere
// except by the section renderers.

const (
	CourseName  = "TheoVia"
	CourseTitle = "Foundations of Christian Theology"

	// External checkout. Payment itself happens entirely off-site.
	CheckoutURL = "https://pay.theovia.com/checkout/foundations"

	PriceFull  = "$297"
	PriceOffer = "$97"
	PriceNote  = "or 3 installments of $37"
)

type PainPoint struct {
	Title string
	Text  string
}

var PainPoints = []PainPoint{
	{"You read, but it doesn't connect", "Scripture feels like fragments with no map — you finish a chapter and can't say how it fits the whole."},
	{"Every teacher says something different", "Podcasts, videos and sermons contradict each other, and you have no framework to weigh them."},
	{"Hard questions scare you", "Suffering, the Trinity, other religions — you avoid the topics you most want answered."},
	{"Your study has stalled", "You have been a believer for years but your understanding stopped growing a long time ago."},
}

type Benefit struct {
	Icon  string
	Title string
	Text  string
}

var Benefits = []Benefit{
	{"lucide:map", "A structured path", "Six modules in a deliberate order, so each doctrine builds on the last instead of floating alone."},
	{"lucide:landmark", "Two thousand years of context", "Creeds, councils and church history explained plainly, so you know where ideas actually come from."},
	{"lucide:languages", "Original languages, gently", "Key Hebrew and Greek terms introduced without assuming you will ever open a lexicon."},
	{"lucide:users", "Study with others", "A moderated community space for every cohort, with weekly discussion prompts."},
	{"lucide:award", "Certificate of completion", "A verifiable certificate when you finish all modules and assessments."},
	{"lucide:infinity", "Lifetime access", "Every lesson, update and future revision of the course, forever."},
}

type Module struct {
	Number  int
	Title   string
	Lessons int
	Length  string
	Text    string
}

var Curriculum = []Module{
	{1, "What Theology Is (and Isn't)", 6, "1h 40m", "Why ordinary believers should study doctrine, and how to do it without losing devotion."},
	{2, "Scripture and Revelation", 8, "2h 10m", "How the canon formed, what inspiration means, and how to read each genre on its own terms."},
	{3, "God and the Trinity", 7, "2h 05m", "The classical doctrine of God, and why the Trinity is a conclusion rather than a riddle."},
	{4, "The Person and Work of Christ", 8, "2h 20m", "Incarnation, atonement and resurrection, from the Gospels through the early councils."},
	{5, "Church History Essentials", 7, "1h 55m", "From the apostles to the Reformation: the moments that still shape what your church believes."},
	{6, "Living Theology", 6, "1h 35m", "Ethics, prayer and vocation — carrying doctrine out of the notebook and into the week."},
}

var Audience = []string{
	"New believers who want a trustworthy first map of Christian doctrine",
	"Small-group and Bible-study leaders who field questions they can't yet answer",
	"Long-time churchgoers whose understanding has outgrown Sunday sermons",
	"The seminary-curious who want depth without enrolling in a degree",
}

var Included = []string{
	"42 video lessons across 6 modules",
	"Downloadable study guides and reading plans",
	"Community space with weekly prompts",
	"Certificate of completion",
	"Lifetime access, including future updates",
}

type QA struct {
	Question string
	Answer   string
}

var FAQ = []QA{
	{"How long do I have access to the course?", "Forever. One payment gives you lifetime access to every lesson, plus all future updates and revisions at no extra cost."},
	{"Is the course tied to one denomination?", "No. The course teaches the broad consensus of historic Christianity and flags honestly where traditions differ, so you can study the differences with your own church's confession in hand."},
	{"I have no background in theology. Will I keep up?", "Yes — the course assumes nothing beyond curiosity. Module 1 starts from zero, and every technical term is defined the first time it appears."},
	{"How much time does it take per week?", "Most students spend two to three hours a week and finish in about eight weeks, but the course is fully self-paced and there are no deadlines."},
	{"What if the course isn't for me?", "Email us within 30 days of purchase and we refund every cent, no questions asked and no forms to fill in."},
	{"Do I get a certificate?", "Yes. Completing all modules and the short end-of-module assessments unlocks a verifiable certificate of completion."},
}
