package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/spigell/resume-scorer/internal/scoring"
)

// EvaluationOptions controls console output of a single resume evaluation.
type EvaluationOptions struct {
	// Guide appends the improvement guide and the checklist.
	Guide bool
	// Color enables ANSI colors.
	Color bool
}

var scanMessages = map[scoring.ScanResult]string{
	scoring.ScanLikelyRejected:   "Likely rejected in first scan due to weak keyword alignment",
	scoring.ScanAverageInterest:  "May pass ATS but recruiter interest is average",
	scoring.ScanStrongImpression: "Strong first impression for recruiter",
}

const improvementGuide = `1. Bullet Point Formula
   Action Verb + What You Did + Tool/Skill + Result
   - Weak:   Worked on data analysis
   - Strong: Analyzed sales data using Python, improving forecast accuracy by 18%
2. Skills Optimization
   - Add 8-12 job-relevant skills
   - Avoid generic skills like hardworking
   - Match skills exactly as written in job descriptions
3. Keyword Placement Strategy
   - Skills section (primary)
   - Experience bullets (secondary)
   - Projects section (contextual)
   - Repeat key skills 2-3 times max
4. Experience Section
   - 3-5 bullets per role
   - Start every bullet with a strong action verb
   - Quantify impact using numbers, %, time saved
5. Projects Section
   - Problem -> Approach -> Tools -> Outcome
   - Mention datasets, APIs, or real-world use
6. ATS-Safe Formatting Rules
   - No tables, text boxes, icons, images
   - Use Arial / Calibri
   - Black & white only
   - Save as PDF
7. Tailoring Strategy
   - Modify resume keywords for every job role
   - Never send the same resume everywhere
`

var checklist = []string{
	"Clear section headings",
	"Quantified achievements",
	"Job-specific keywords",
	"Clean formatting",
	"1-2 page length",
	"PDF format",
}

type palette struct {
	heading *color.Color
	good    *color.Color
	warn    *color.Color
	bad     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		heading: color.New(color.Bold, color.FgCyan),
		good:    color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		bad:     color.New(color.FgRed),
	}

	for _, c := range []*color.Color{p.heading, p.good, p.warn, p.bad} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) forScan(scan scoring.ScanResult) *color.Color {
	switch scan {
	case scoring.ScanLikelyRejected:
		return p.bad
	case scoring.ScanAverageInterest:
		return p.warn
	default:
		return p.good
	}
}

// WriteEvaluation prints the evaluation of a single resume.
func WriteEvaluation(w io.Writer, r *scoring.Report, opts EvaluationOptions) error {
	p := newPalette(opts.Color)
	ew := &errWriter{w: w}

	p.heading.Fprintln(ew, "Resume Evaluation Summary")
	fmt.Fprintf(ew, "  ATS Score: %s%%\n", FormatATS(r.ATS))
	fmt.Fprintf(ew, "  Selection Probability: %s%%\n", FormatProbability(r.SelectionProbability))
	fmt.Fprintf(ew, "  Recruiter Verdict: %s\n\n", r.Verdict)

	p.heading.Fprintln(ew, "ATS Score Breakdown")
	fmt.Fprintf(ew, "  Keyword Match: %s\n", FormatATS(r.Breakdown.KeywordMatch))
	fmt.Fprintf(ew, "  Formatting (ATS Safe): %.0f\n", r.Breakdown.Formatting)
	fmt.Fprintf(ew, "  Section Coverage: %.0f\n", r.Breakdown.SectionCoverage)
	fmt.Fprintf(ew, "  Readability: %.0f\n\n", r.Breakdown.Readability)

	p.heading.Fprintln(ew, "Deep Resume Analysis")
	for _, s := range r.Sections {
		if s.Present {
			p.good.Fprintf(ew, "  ✔ %s section found\n", title(s.Name))
		} else {
			p.bad.Fprintf(ew, "  ✘ %s section missing\n", title(s.Name))
		}
	}
	fmt.Fprintf(ew, "  • Keyword diversity ratio: %.2f\n", r.KeywordDiversity)
	if r.LowDiversity {
		p.warn.Fprintln(ew, "  Low keyword diversity → ATS may consider content repetitive")
	}
	fmt.Fprintln(ew)

	p.heading.Fprintln(ew, "Recruiter 6-8 Second Scan Result")
	p.forScan(r.Scan).Fprintf(ew, "  %s\n", scanMessages[r.Scan])

	if opts.Guide {
		fmt.Fprintln(ew)
		p.heading.Fprintln(ew, "How to Improve Resume for Higher ATS & Selection")
		fmt.Fprint(ew, improvementGuide)
		fmt.Fprintln(ew)

		p.heading.Fprintln(ew, "High-Selection Resume Checklist")
		for _, item := range checklist {
			p.good.Fprintf(ew, "  ✔ %s\n", item)
		}
	}

	return ew.err
}

// title upper-cases the first letter of a lower-case section name.
func title(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// errWriter remembers the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(b)
	e.err = err
	return n, err
}
