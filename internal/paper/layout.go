package paper

// US Letter, in points.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

const (
	LeftMargin   = 30.0
	TopMargin    = 30.0
	BottomMargin = 40.0
	LineHeight   = 20.0

	// BodyTop is the baseline of the first reply line on page one, just below the letterhead.
	BodyTop = 150.0
)

const serif = "Times"

var (
	regular12 = Font{Family: serif, Size: 12}
	bold12    = Font{Family: serif, Bold: true, Size: 12}
	bold14    = Font{Family: serif, Bold: true, Size: 14}

	// BodyFont is used for every reply line.
	BodyFont = regular12
)

// HeaderLine is one fixed line of the letterhead.
type HeaderLine struct {
	Y    float64
	Font Font
	Text string
}

// Letterhead is drawn at the top of the first page only.
var Letterhead = []HeaderLine{
	{Y: 30, Font: bold12, Text: "Visvesvaraya Technological University, Belagavi."},
	{Y: 50, Font: regular12, Text: "Model Question Paper-I with effect from 2022-23 (CBCS Scheme)"},
	{Y: 70, Font: bold14, Text: "First/Second Semester B.E. Degree Examination"},
	{Y: 90, Font: bold14, Text: "Introduction to Nanotechnology"},
	{Y: 110, Font: regular12, Text: "TIME: 03 Hours  Max. Marks: 100"},
	{Y: 130, Font: regular12, Text: "Note: Answer any FIVE full questions, choosing at least ONE question from each Module."},
}
