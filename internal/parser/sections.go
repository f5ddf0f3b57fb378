package parser

import "strings"

type sectionKind int

const (
	secPreamble sectionKind = iota
	secSummary
	secExperience
	secEducation
	secSkills
	secCertifications
	secProjects
	secVolunteering
)

// sectionAliases maps the normalized form of a header line to its section.
// A header line is one that, after bracket/colon stripping and lowercasing,
// equals one of these names exactly.
var sectionAliases = map[string]sectionKind{
	"summary":                 secSummary,
	"professional summary":    secSummary,
	"objective":               secSummary,
	"career objective":        secSummary,
	"about me":                secSummary,
	"profile":                 secSummary,
	"experience":              secExperience,
	"work experience":         secExperience,
	"professional experience": secExperience,
	"employment history":      secExperience,
	"work history":            secExperience,
	"education":               secEducation,
	"academic background":     secEducation,
	"skills":                  secSkills,
	"technical skills":        secSkills,
	"core competencies":       secSkills,
	"certifications":          secCertifications,
	"certificates":            secCertifications,
	"licenses & certifications": secCertifications,
	"licenses and certifications": secCertifications,
	"projects":              secProjects,
	"personal projects":     secProjects,
	"side projects":         secProjects,
	"volunteering":          secVolunteering,
	"volunteer experience":  secVolunteering,
	"volunteer work":        secVolunteering,
	"community involvement": secVolunteering,
}

// scannedDocument holds the one-pass split of the raw text: the lines before
// the first recognized header, and the content lines of each section. Blank
// lines inside sections are preserved so entry splitting can use them.
type scannedDocument struct {
	preamble []string
	sections map[sectionKind][]string
}

// normalizeHeader reduces a candidate header line to its comparison form:
// surrounding brackets, a trailing colon and case are all ignored.
func normalizeHeader(line string) string {
	s := strings.TrimSpace(line)
	s = strings.Trim(s, "[](){}<>")
	s = strings.TrimSuffix(s, ":")
	return strings.ToLower(strings.TrimSpace(s))
}

// scan splits raw text into sections in a single pass over the lines. Each
// line is classified exactly once: either it is a recognized section header,
// or it belongs to the section opened by the most recent header (the
// preamble before any header is seen).
func scan(raw string) *scannedDocument {
	doc := &scannedDocument{sections: make(map[sectionKind][]string)}
	current := secPreamble
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(strings.ReplaceAll(line, "\r", ""), " \t")
		if kind, ok := sectionAliases[normalizeHeader(line)]; ok && strings.TrimSpace(line) != "" {
			current = kind
			if _, seen := doc.sections[kind]; !seen {
				doc.sections[kind] = []string{}
			}
			continue
		}
		if current == secPreamble {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				doc.preamble = append(doc.preamble, trimmed)
			}
			continue
		}
		doc.sections[current] = append(doc.sections[current], strings.TrimSpace(line))
	}
	return doc
}

// nonEmpty filters blank lines out of a section's content.
func nonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// splitBlocks groups section lines into candidate entry blocks. A new block
// starts after a blank line, or at a non-bulleted line opening with a
// capitalized word run when the previous line was a bullet (the heuristic
// start of the next entry's name line).
func splitBlocks(lines []string) [][]string {
	var blocks [][]string
	var cur []string
	prevBullet := false
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, cur)
			cur = nil
		}
	}
	for _, line := range lines {
		if line == "" {
			flush()
			prevBullet = false
			continue
		}
		if prevBullet && !isBulletLine(line) && capStartPattern.MatchString(line) {
			flush()
		}
		cur = append(cur, line)
		prevBullet = isBulletLine(line)
	}
	flush()
	return blocks
}
