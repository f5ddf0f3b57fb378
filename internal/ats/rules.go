package ats

import (
	"fmt"
	"regexp"
	"strings"

	"resumeforge/internal/types"
)

// ruleContext carries the pre-computed views of the input that the rule
// evaluators share. Building them once keeps the battery a single pass over
// the text per concern.
type ruleContext struct {
	text           string
	lower          string
	lines          []string
	words          []string
	tokens         map[string]struct{}
	bullets        []string
	fileType       string
	jobDescription string
	keywords       []string
}

func newRuleContext(resumeText, fileType, jobDescription string, keywords []string) ruleContext {
	ctx := ruleContext{
		text:           resumeText,
		lower:          strings.ToLower(resumeText),
		fileType:       strings.ToLower(strings.TrimPrefix(strings.TrimSpace(fileType), ".")),
		jobDescription: jobDescription,
		keywords:       keywords,
	}
	for _, line := range strings.Split(resumeText, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "\r", ""))
		ctx.lines = append(ctx.lines, line)
		if line != "" && strings.IndexAny(line, "•▪◦‣-*") == 0 {
			ctx.bullets = append(ctx.bullets, strings.TrimLeft(line, "•▪◦‣-* \t"))
		}
	}
	ctx.words = strings.Fields(resumeText)
	ctx.tokens = tokenSet(resumeText)
	return ctx
}

// rule couples a stable identifier with its evaluator. The table order is
// the order findings appear in every report.
type rule struct {
	id   string
	name string
	eval func(ctx ruleContext) types.ATSFinding
}

var ruleTable = []rule{
	{id: "file_format", name: "File format", eval: checkFileFormat},
	{id: "section_headers", name: "Standard section headers", eval: checkSectionHeaders},
	{id: "contact_information", name: "Contact information", eval: checkContactInformation},
	{id: "date_formatting", name: "Consistent date formatting", eval: checkDateFormatting},
	{id: "bullet_consistency", name: "Consistent bullet style", eval: checkBulletConsistency},
	{id: "formatting_elements", name: "Decorative formatting elements", eval: checkFormattingElements},
	{id: "keyword_density", name: "Keyword density", eval: checkKeywordDensity},
	{id: "keyword_placement", name: "Keyword placement", eval: checkKeywordPlacement},
	{id: "action_verbs", name: "Action verbs in achievements", eval: checkActionVerbs},
	{id: "quantified_achievements", name: "Quantified achievements", eval: checkQuantifiedAchievements},
	{id: "resume_length", name: "Resume length", eval: checkResumeLength},
	{id: "tables_columns", name: "Tables and columns", eval: checkTablesColumns},
	{id: "special_characters", name: "Special characters", eval: checkSpecialCharacters},
	{id: "jd_keyword_match", name: "Job description match", eval: checkJobDescriptionMatch},
	{id: "summary_presence", name: "Professional summary", eval: checkSummaryPresence},
}

var parseableFormats = map[string]struct{}{
	"": {}, "txt": {}, "text": {}, "docx": {}, "doc": {}, "rtf": {},
}

var imageFormats = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "tiff": {}, "bmp": {}, "webp": {},
}

func checkFileFormat(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "file_format", Name: "File format"}
	if _, ok := parseableFormats[ctx.fileType]; ok {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "File format is reliably parsed by ATS software"
		return f
	}
	if _, ok := imageFormats[ctx.fileType]; ok {
		f.Severity = types.SeverityCritical
		f.Message = fmt.Sprintf("Image format .%s cannot be read as text by ATS software", ctx.fileType)
		f.Recommendation = "Export the resume as .docx or plain text"
		return f
	}
	if ctx.fileType == "pdf" {
		f.Severity = types.SeverityWarning
		f.Message = "PDF parsing depends on the file carrying a text layer"
		f.Recommendation = "Prefer .docx when the posting allows it"
		return f
	}
	f.Severity = types.SeverityCritical
	f.Message = fmt.Sprintf("Format .%s is not reliably supported by ATS software", ctx.fileType)
	f.Recommendation = "Export the resume as .docx or plain text"
	return f
}

var coreSections = []struct {
	label   string
	aliases []string
}{
	{label: "experience", aliases: []string{"experience", "work experience", "professional experience", "employment history", "work history"}},
	{label: "education", aliases: []string{"education", "academic background"}},
	{label: "skills", aliases: []string{"skills", "technical skills", "core competencies"}},
}

func checkSectionHeaders(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "section_headers", Name: "Standard section headers", Severity: types.SeverityCritical}
	var missing []string
	for _, sec := range coreSections {
		if !hasSectionHeader(ctx.lines, sec.aliases) {
			missing = append(missing, sec.label)
		}
	}
	if len(missing) == 0 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "Standard section headers found"
		return f
	}
	f.Message = fmt.Sprintf("Missing conventional section headers: %s", strings.Join(missing, ", "))
	f.Recommendation = "Label sections with standard names like Experience, Education and Skills"
	return f
}

func hasSectionHeader(lines []string, aliases []string) bool {
	for _, line := range lines {
		norm := strings.ToLower(strings.TrimSuffix(strings.Trim(line, "[](){}<> "), ":"))
		for _, a := range aliases {
			if norm == a {
				return true
			}
		}
	}
	return false
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`[+(]?[0-9][0-9()\-. ]{7,20}[0-9]`)
)

func checkContactInformation(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "contact_information", Name: "Contact information", Severity: types.SeverityCritical}
	top := topLines(ctx.lines, 5)
	if emailPattern.MatchString(top) || hasPhone(top) {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "Contact details found near the top of the document"
		return f
	}
	f.Message = "No email address or phone number found in the first lines"
	f.Recommendation = "Put an email address and phone number directly under the name"
	return f
}

func topLines(lines []string, n int) string {
	var kept []string
	for _, line := range lines {
		if line == "" {
			continue
		}
		kept = append(kept, line)
		if len(kept) == n {
			break
		}
	}
	return strings.Join(kept, "\n")
}

func hasPhone(s string) bool {
	for _, cand := range phonePattern.FindAllString(s, -1) {
		digits := 0
		for _, r := range cand {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 10 && digits <= 15 {
			return true
		}
	}
	return false
}

var dateStyles = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{label: "Month YYYY", pattern: regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(?:19|20)\d{2}\b`)},
	{label: "MM/YYYY", pattern: regexp.MustCompile(`\b(?:0?[1-9]|1[0-2])/(?:19|20)\d{2}\b`)},
	{label: "YYYY-MM", pattern: regexp.MustCompile(`\b(?:19|20)\d{2}-(?:0[1-9]|1[0-2])\b`)},
}

func checkDateFormatting(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "date_formatting", Name: "Consistent date formatting", Severity: types.SeverityWarning}
	var used []string
	for _, style := range dateStyles {
		if style.pattern.MatchString(ctx.text) {
			used = append(used, style.label)
		}
	}
	if len(used) <= 1 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "Date formatting is consistent"
		return f
	}
	f.Message = fmt.Sprintf("Mixed date styles found: %s", strings.Join(used, ", "))
	f.Recommendation = "Use one date style throughout, such as MM/YYYY"
	return f
}

var bulletGlyphs = []string{"•", "▪", "◦", "‣", "- ", "* "}

func checkBulletConsistency(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "bullet_consistency", Name: "Consistent bullet style", Severity: types.SeverityWarning}
	used := map[string]struct{}{}
	for _, line := range ctx.lines {
		for _, g := range bulletGlyphs {
			if strings.HasPrefix(line, g) {
				used[strings.TrimSpace(g)] = struct{}{}
			}
		}
	}
	if len(used) <= 1 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "Bullet style is consistent"
		return f
	}
	glyphs := make([]string, 0, len(used))
	for g := range used {
		glyphs = append(glyphs, g)
	}
	f.Message = fmt.Sprintf("%d different bullet styles in use", len(glyphs))
	f.Recommendation = "Pick a single bullet character for all achievement lines"
	return f
}

// decorativePattern catches box-drawing rules, shaded blocks and other
// glyph runs that survive a copy-paste from a designed layout.
var decorativePattern = regexp.MustCompile(`[─━│┃┄┆┈┊═║╔╗╚╝╠╣■□▀▄▌▐█▓▒░◆◇●★☆]{2,}|[=_~*]{4,}`)

func checkFormattingElements(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "formatting_elements", Name: "Decorative formatting elements", Severity: types.SeverityCritical}
	if !decorativePattern.MatchString(ctx.text) {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "No decorative layout artifacts found"
		return f
	}
	f.Message = "Decorative lines or graphic artifacts found in the text"
	f.Recommendation = "Remove borders, shading and other visual elements; ATS parsers read text only"
	return f
}

func checkKeywordDensity(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "keyword_density", Name: "Keyword density"}
	if len(ctx.keywords) == 0 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "No target keywords provided; density not evaluated"
		return f
	}
	total := len(ctx.words)
	if total == 0 {
		f.Severity = types.SeverityWarning
		f.Message = "Document contains no words"
		return f
	}
	hits := 0
	for _, kw := range ctx.keywords {
		hits += strings.Count(ctx.lower, strings.ToLower(kw))
	}
	density := 100 * float64(hits) / float64(total)
	switch {
	case density < 1:
		f.Severity = types.SeverityWarning
		f.Message = fmt.Sprintf("Keyword density %.1f%% is below the typical 1-3%% band", density)
		f.Recommendation = "Work the target keywords into achievement lines naturally"
	case density > 3:
		f.Severity = types.SeverityWarning
		f.Message = fmt.Sprintf("Keyword density %.1f%% looks like keyword stuffing", density)
		f.Recommendation = "Reduce keyword repetition; stuffing triggers ATS spam filters"
	default:
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = fmt.Sprintf("Keyword density %.1f%% is in the typical band", density)
	}
	return f
}

func checkKeywordPlacement(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "keyword_placement", Name: "Keyword placement"}
	if len(ctx.keywords) == 0 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "No target keywords provided; placement not evaluated"
		return f
	}
	end := len(ctx.words)
	if end > 100 {
		end = 100
	}
	opening := strings.ToLower(strings.Join(ctx.words[:end], " "))
	for _, kw := range ctx.keywords {
		if strings.Contains(opening, strings.ToLower(kw)) {
			f.Passed = true
			f.Severity = types.SeverityInfo
			f.Message = "Target keywords appear in the opening of the document"
			return f
		}
	}
	f.Severity = types.SeverityWarning
	f.Message = "No target keyword appears in the first 100 words"
	f.Recommendation = "Mention the most important keywords in the summary or first role"
	return f
}

var actionVerbs = map[string]struct{}{
	"achieved": {}, "automated": {}, "built": {}, "created": {},
	"delivered": {}, "designed": {}, "developed": {}, "directed": {},
	"drove": {}, "established": {}, "expanded": {}, "implemented": {},
	"improved": {}, "increased": {}, "launched": {}, "led": {},
	"managed": {}, "mentored": {}, "negotiated": {}, "optimized": {},
	"organized": {}, "oversaw": {}, "reduced": {}, "resolved": {},
	"shipped": {}, "spearheaded": {}, "streamlined": {}, "taught": {},
	"trained": {}, "transformed": {},
}

func checkActionVerbs(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "action_verbs", Name: "Action verbs in achievements", Severity: types.SeverityWarning}
	if len(ctx.bullets) == 0 {
		f.Message = "No bulleted achievement lines found"
		f.Recommendation = "Describe accomplishments as bullet points starting with strong verbs"
		return f
	}
	strong := 0
	for _, b := range ctx.bullets {
		first := strings.ToLower(firstWord(b))
		if _, ok := actionVerbs[first]; ok {
			strong++
		}
	}
	ratio := float64(strong) / float64(len(ctx.bullets))
	if ratio >= 0.5 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = fmt.Sprintf("%d of %d achievement lines open with an action verb", strong, len(ctx.bullets))
		return f
	}
	f.Message = fmt.Sprintf("Only %d of %d achievement lines open with an action verb", strong, len(ctx.bullets))
	f.Recommendation = "Start bullets with verbs like Led, Built, Delivered or Reduced"
	return f
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,;:")
}

func checkQuantifiedAchievements(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "quantified_achievements", Name: "Quantified achievements", Severity: types.SeverityWarning}
	if len(ctx.bullets) == 0 {
		f.Message = "No bulleted achievement lines found"
		f.Recommendation = "Quantify results with numbers, percentages or amounts"
		return f
	}
	quantified := 0
	for _, b := range ctx.bullets {
		if strings.ContainsAny(b, "0123456789%$€£") {
			quantified++
		}
	}
	ratio := float64(quantified) / float64(len(ctx.bullets))
	if ratio >= 0.3 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = fmt.Sprintf("%d of %d achievement lines carry a measurable result", quantified, len(ctx.bullets))
		return f
	}
	f.Message = fmt.Sprintf("Only %d of %d achievement lines carry a measurable result", quantified, len(ctx.bullets))
	f.Recommendation = "Add numbers: team size, revenue impact, time saved, request volume"
	return f
}

func checkResumeLength(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "resume_length", Name: "Resume length", Severity: types.SeverityWarning}
	n := len(ctx.words)
	switch {
	case n < 150:
		f.Message = fmt.Sprintf("Resume is very short at %d words", n)
		f.Recommendation = "Aim for one to two pages of substantive content"
	case n > 1300:
		f.Message = fmt.Sprintf("Resume is very long at %d words", n)
		f.Recommendation = "Trim to the most recent and relevant experience"
	default:
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = fmt.Sprintf("Length of %d words fits one to two pages", n)
	}
	return f
}

var multiGapPattern = regexp.MustCompile(`\S\s{3,}\S.*\S\s{3,}\S|\t.*\t`)

func checkTablesColumns(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "tables_columns", Name: "Tables and columns", Severity: types.SeverityCritical}
	columnish := 0
	for _, line := range strings.Split(ctx.text, "\n") {
		if multiGapPattern.MatchString(line) {
			columnish++
		}
	}
	if columnish < 3 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "No multi-column layout artifacts found"
		return f
	}
	f.Message = fmt.Sprintf("%d lines look like table rows or side-by-side columns", columnish)
	f.Recommendation = "Use a single-column layout; tables scramble the reading order in ATS parsers"
	return f
}

// safeCharPattern covers the characters a plain resume legitimately uses.
var safeCharPattern = regexp.MustCompile(`[A-Za-z0-9\s.,;:!?'"()\[\]{}@#$%&*+\-–—_/\\|<>=~^•▪◦‣·’‘“”…áàâäéèêëíìîïóòôöúùûüñçÁÀÂÄÉÈÊËÍÌÎÏÓÒÔÖÚÙÛÜÑÇ]`)

func checkSpecialCharacters(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "special_characters", Name: "Special characters", Severity: types.SeverityWarning}
	exotic := 0
	for _, r := range ctx.text {
		if !safeCharPattern.MatchString(string(r)) {
			exotic++
		}
	}
	if exotic <= 3 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "No problematic special characters found"
		return f
	}
	f.Message = fmt.Sprintf("%d exotic characters found in the text", exotic)
	f.Recommendation = "Replace decorative symbols and emoji with plain text equivalents"
	return f
}

func checkJobDescriptionMatch(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "jd_keyword_match", Name: "Job description match"}
	if strings.TrimSpace(ctx.jobDescription) == "" {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "No job description provided; match not evaluated"
		return f
	}
	terms := extractKeywords(ctx.jobDescription, 20)
	if len(terms) == 0 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = "Job description carries no significant terms"
		return f
	}
	matched := 0
	var missing []string
	for _, term := range terms {
		if containsTerm(ctx.tokens, term) {
			matched++
		} else if len(missing) < 5 {
			missing = append(missing, term)
		}
	}
	ratio := float64(matched) / float64(len(terms))
	if ratio >= 0.3 {
		f.Passed = true
		f.Severity = types.SeverityInfo
		f.Message = fmt.Sprintf("Resume covers %d of %d significant job description terms", matched, len(terms))
		return f
	}
	f.Severity = types.SeverityWarning
	f.Message = fmt.Sprintf("Resume covers only %d of %d significant job description terms", matched, len(terms))
	f.Recommendation = fmt.Sprintf("Consider addressing: %s", strings.Join(missing, ", "))
	return f
}

var summaryHeaders = []string{"summary", "professional summary", "objective", "career objective", "profile", "about me"}

func checkSummaryPresence(ctx ruleContext) types.ATSFinding {
	f := types.ATSFinding{ID: "summary_presence", Name: "Professional summary", Severity: types.SeverityInfo}
	// Window over content lines, so blank padding in the header block
	// cannot push the summary out of view.
	var top []string
	for _, line := range ctx.lines {
		if line == "" {
			continue
		}
		top = append(top, line)
		if len(top) == 15 {
			break
		}
	}
	if hasSectionHeader(top, summaryHeaders) {
		f.Passed = true
		f.Message = "Professional summary section found"
		return f
	}
	f.Message = "No summary or objective section near the top"
	f.Recommendation = "Open with a short summary; it is prime keyword placement"
	return f
}
