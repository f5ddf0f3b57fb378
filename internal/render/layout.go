package render

import (
	"strings"

	"resumeforge/internal/types"
)

// Measurements in the layout are expressed the way OOXML stores them:
// font sizes in half-points, horizontal distances in twips (1/20 point,
// 1440 per inch) on a US-Letter page with one-inch margins.
const (
	pageWidthTwips  = 12240
	pageHeightTwips = 15840
	marginTwips     = 1440
	contentWidth    = pageWidthTwips - 2*marginTwips

	sizeName    = 32 // 16pt
	sizeTitle   = 28 // 14pt
	sizeSection = 24 // 12pt
	sizeBody    = 22 // 11pt

	bulletIndent = 720 // 0.5"

	headingSpaceBefore = 240 // 12pt
	headingSpaceAfter  = 120 // 6pt
)

// run is a span of text with uniform character formatting.
type run struct {
	text   string
	bold   bool
	italic bool
	size   int
	tab    bool // emit a tab before the text
}

// paragraph is one block-level element of the laid-out document.
type paragraph struct {
	runs          []run
	spacingBefore int  // twips
	spacingAfter  int  // twips
	indentLeft    int  // twips
	centered      bool
	rightTab      bool // right-aligned tab stop at the content edge
	bottomBorder  bool // thin rule under the paragraph
}

// layout flattens a resume document into the ordered paragraph list the
// docx writer emits. Only populated sections produce output.
func layout(doc types.ResumeDocument) []paragraph {
	var ps []paragraph

	// The name/contact/title block is the only centered content.
	if doc.Header.Name != "" {
		ps = append(ps, paragraph{
			runs:         []run{{text: doc.Header.Name, bold: true, size: sizeName}},
			spacingAfter: 60,
			centered:     true,
		})
	}
	if line := contactLine(doc.Header); line != "" {
		ps = append(ps, paragraph{
			runs:         []run{{text: line, size: sizeBody}},
			spacingAfter: 60,
			centered:     true,
		})
	}
	if doc.JobTitle != "" {
		ps = append(ps, paragraph{
			runs:         []run{{text: doc.JobTitle, bold: true, size: sizeTitle}},
			spacingAfter: 120,
			centered:     true,
		})
	}

	if len(doc.Summary) > 0 {
		ps = append(ps, headingParagraph("Summary"))
		for _, p := range doc.Summary {
			ps = append(ps, bodyParagraph(p))
		}
	}

	if len(doc.Experience) > 0 {
		ps = append(ps, headingParagraph("Experience"))
		for _, e := range doc.Experience {
			ps = append(ps, entryHeaderParagraph(labelLocation(e.Company, e.Location), e.Dates))
			if e.Title != "" {
				ps = append(ps, paragraph{
					runs:         []run{{text: e.Title, italic: true, size: sizeBody}},
					spacingAfter: 40,
				})
			}
			ps = append(ps, bulletParagraphs(e.Bullets)...)
		}
	}

	if len(doc.Education) > 0 {
		ps = append(ps, headingParagraph("Education"))
		for _, e := range doc.Education {
			if e.Degree != "" {
				ps = append(ps, paragraph{
					runs:         []run{{text: e.Degree, bold: true, size: sizeBody}},
					spacingAfter: 40,
				})
			}
			ps = append(ps, entryHeaderParagraph(labelLocation(e.Institution, e.Location), e.Dates))
			ps = append(ps, bulletParagraphs(e.Details)...)
		}
	}

	if len(doc.Skills.Technical)+len(doc.Skills.Soft)+len(doc.Skills.Other) > 0 {
		ps = append(ps, headingParagraph("Skills"))
		ps = append(ps, skillParagraphs("Technical", doc.Skills.Technical)...)
		ps = append(ps, skillParagraphs("Soft", doc.Skills.Soft)...)
		ps = append(ps, skillParagraphs("Other", doc.Skills.Other)...)
	}

	if len(doc.Certifications) > 0 {
		ps = append(ps, headingParagraph("Certifications"))
		for _, c := range doc.Certifications {
			label := c.Name
			if c.Issuer != "" {
				label += " - " + c.Issuer
			}
			ps = append(ps, entryHeaderParagraph(label, c.Date))
		}
	}

	if len(doc.Projects) > 0 {
		ps = append(ps, headingParagraph("Projects"))
		for _, p := range doc.Projects {
			ps = append(ps, entryHeaderParagraph(p.Name, p.Dates))
			if p.URL != "" {
				ps = append(ps, bodyParagraph(p.URL))
			}
			if p.Description != "" {
				ps = append(ps, bodyParagraph(p.Description))
			}
			ps = append(ps, bulletParagraphs(p.Bullets)...)
		}
	}

	if len(doc.Volunteering) > 0 {
		ps = append(ps, headingParagraph("Volunteering"))
		for _, v := range doc.Volunteering {
			ps = append(ps, entryHeaderParagraph(labelLocation(v.Organization, v.Location), v.Dates))
			if v.Role != "" {
				ps = append(ps, paragraph{
					runs:         []run{{text: v.Role, italic: true, size: sizeBody}},
					spacingAfter: 40,
				})
			}
			ps = append(ps, bulletParagraphs(v.Bullets)...)
		}
	}

	return ps
}

// headingParagraph renders a section header: upper-cased, bold, ruled,
// with extra space above to separate sections.
func headingParagraph(name string) paragraph {
	return paragraph{
		runs:          []run{{text: strings.ToUpper(name), bold: true, size: sizeSection}},
		spacingBefore: headingSpaceBefore,
		spacingAfter:  headingSpaceAfter,
		bottomBorder:  true,
	}
}

func bodyParagraph(text string) paragraph {
	return paragraph{
		runs:         []run{{text: text, size: sizeBody}},
		spacingAfter: 60,
	}
}

// entryHeaderParagraph renders "Label .... Dates" with the dates pushed to
// a right-aligned tab stop at the content edge.
func entryHeaderParagraph(label, dates string) paragraph {
	p := paragraph{
		runs:         []run{{text: label, bold: true, size: sizeBody}},
		spacingAfter: 40,
	}
	if dates != "" {
		p.rightTab = true
		p.runs = append(p.runs, run{text: dates, size: sizeBody, tab: true})
	}
	return p
}

func bulletParagraphs(items []string) []paragraph {
	ps := make([]paragraph, 0, len(items))
	for _, item := range items {
		ps = append(ps, paragraph{
			runs:         []run{{text: "• " + item, size: sizeBody}},
			spacingAfter: 20,
			indentLeft:   bulletIndent,
		})
	}
	return ps
}

func skillParagraphs(label string, items []string) []paragraph {
	if len(items) == 0 {
		return nil
	}
	return []paragraph{{
		runs: []run{
			{text: label + ": ", bold: true, size: sizeBody},
			{text: joinItems(items), size: sizeBody},
		},
		spacingAfter: 40,
	}}
}

func joinItems(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}
