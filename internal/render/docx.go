package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	apperrors "resumeforge/internal/errors"
	"resumeforge/internal/types"
)

// Docx renders the document as a Word (OOXML) file. The archive carries the
// minimal part set a .docx needs: content types, the package relationship
// and the document body. On any packaging failure no partial artifact is
// returned.
func Docx(doc types.ResumeDocument) ([]byte, error) {
	return packageDocx(layout(doc))
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// xmlEscape escapes the five XML-significant characters in text content.
func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

func writeRun(b *strings.Builder, r run) {
	b.WriteString("<w:r><w:rPr>")
	fmt.Fprintf(b, `<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/>`)
	if r.bold {
		b.WriteString("<w:b/>")
	}
	if r.italic {
		b.WriteString("<w:i/>")
	}
	size := r.size
	if size == 0 {
		size = sizeBody
	}
	fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, size, size)
	b.WriteString("</w:rPr>")
	if r.tab {
		b.WriteString("<w:tab/>")
	}
	fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t></w:r>`, xmlEscape(r.text))
}

func writeParagraph(b *strings.Builder, p paragraph) {
	// Children of w:pPr in schema order: pBdr, tabs, spacing, ind, jc.
	b.WriteString("<w:p><w:pPr>")
	if p.bottomBorder {
		b.WriteString(`<w:pBdr><w:bottom w:val="single" w:sz="6" w:space="1" w:color="auto"/></w:pBdr>`)
	}
	if p.rightTab {
		fmt.Fprintf(b, `<w:tabs><w:tab w:val="right" w:pos="%d"/></w:tabs>`, contentWidth)
	}
	if p.spacingBefore > 0 || p.spacingAfter > 0 {
		b.WriteString("<w:spacing")
		if p.spacingBefore > 0 {
			fmt.Fprintf(b, ` w:before="%d"`, p.spacingBefore)
		}
		if p.spacingAfter > 0 {
			fmt.Fprintf(b, ` w:after="%d"`, p.spacingAfter)
		}
		b.WriteString("/>")
	}
	if p.indentLeft > 0 {
		fmt.Fprintf(b, `<w:ind w:left="%d"/>`, p.indentLeft)
	}
	if p.centered {
		b.WriteString(`<w:jc w:val="center"/>`)
	}
	b.WriteString("</w:pPr>")
	for _, r := range p.runs {
		writeRun(b, r)
	}
	b.WriteString("</w:p>")
}

// documentXML builds the word/document.xml part from the laid-out
// paragraphs.
func documentXML(ps []paragraph) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range ps {
		writeParagraph(&b, p)
	}
	fmt.Fprintf(&b,
		`<w:sectPr><w:pgSz w:w="%d" w:h="%d"/><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d"/></w:sectPr>`,
		pageWidthTwips, pageHeightTwips, marginTwips, marginTwips, marginTwips, marginTwips)
	b.WriteString("</w:body></w:document>")
	return b.String()
}

// packageDocx zips the OOXML parts into a complete .docx archive.
func packageDocx(ps []paragraph) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		body string
	}{
		{name: "[Content_Types].xml", body: contentTypesXML},
		{name: "_rels/.rels", body: relsXML},
		{name: "word/document.xml", body: documentXML(ps)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, apperrors.NewRenderError(apperrors.ErrCodeRenderFailed,
				fmt.Sprintf("failed to create archive part %s", part.name), err)
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, apperrors.NewRenderError(apperrors.ErrCodeRenderFailed,
				fmt.Sprintf("failed to write archive part %s", part.name), err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, apperrors.NewRenderError(apperrors.ErrCodeRenderFailed, "failed to finalize docx archive", err)
	}
	return buf.Bytes(), nil
}
