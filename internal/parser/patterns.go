package parser

import (
	"regexp"
	"strings"
)

// Every heuristic the parser relies on lives here as a named pattern, so each
// one can be exercised by its own test group instead of hiding inline in the
// extraction code.
var (
	// emailPattern matches a local@domain.tld token.
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// phoneCandidatePattern matches a run of digits with common separators
	// and an optional leading +. Candidates are confirmed by digit count
	// (10-15) in findPhone.
	phoneCandidatePattern = regexp.MustCompile(`[+(]?[0-9][0-9()\-. ]{7,20}[0-9]`)

	// linkedinPattern matches a LinkedIn profile path.
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+`)

	// websitePattern matches a bare domain or URL.
	websitePattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?[a-z0-9][a-z0-9\-]*\.[a-z]{2,}(?:/[^\s|•,]*)?`)

	// urlPattern matches explicit project URLs only (http(s):// or www.).
	urlPattern = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s|•]+`)

	// locationPattern matches a "City, State" shaped token.
	locationPattern = regexp.MustCompile(`[A-Z][A-Za-z.'\-]+(?:\s+[A-Z][A-Za-z.'\-]+)*,\s*(?:[A-Z]{2}\b|[A-Z][a-z]+)`)

	// dateRangePattern matches "MM/YYYY - MM/YYYY" and "MM/YYYY - Present".
	dateRangePattern = regexp.MustCompile(`(?i)(?:0?[1-9]|1[0-2])/(?:19|20)\d{2}\s*[-–—]\s*(?:(?:0?[1-9]|1[0-2])/(?:19|20)\d{2}|present|current)`)

	// yearRangePattern matches "YYYY - YYYY" and "YYYY - Present".
	yearRangePattern = regexp.MustCompile(`(?i)(?:19|20)\d{2}\s*[-–—]\s*(?:(?:19|20)\d{2}|present|current)`)

	// monthYearPattern matches a single MM/YYYY token.
	monthYearPattern = regexp.MustCompile(`(?:0?[1-9]|1[0-2])/(?:19|20)\d{2}`)

	// yearPattern matches a bare 4-digit year.
	yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	// titleKeywordPattern marks lines that plausibly carry a job title.
	titleKeywordPattern = regexp.MustCompile(`(?i)\b(?:manager|engineer|specialist|consultant|director|analyst|developer|designer|coordinator|assistant|lead|head|chief|officer)\b`)

	// degreePattern matches common degree abbreviations and names.
	degreePattern = regexp.MustCompile(`(?i)\b(?:B\.?S\.?c?|B\.?A\.?|M\.?S\.?c?|M\.?A\.?|Ph\.?D\.?|MBA|BBA|M\.?Eng|B\.?Eng|Bachelor(?:'s)?|Master(?:'s)?|Doctorate|Associate(?:'s)?)\b`)

	// bulletPrefixPattern strips leading bullet glyphs.
	bulletPrefixPattern = regexp.MustCompile(`^[•▪◦‣·*\-–—]\s*`)

	// capStartPattern marks lines opening with a capitalized word run,
	// the heuristic start of a new company/entry block.
	capStartPattern = regexp.MustCompile(`^[A-Z][A-Za-z&.,'()/]*(?:\s+(?:[A-Z][A-Za-z&.,'()/]*|of|and|the|for|&))*`)

	// technicalSkillPattern classifies a skill token as technical.
	technicalSkillPattern = regexp.MustCompile(`(?i)\b(?:python|java(?:script)?|typescript|golang|go|c\+\+|c#|ruby|php|swift|kotlin|rust|scala|r|sql|nosql|mysql|postgres(?:ql)?|mongodb|redis|elasticsearch|kafka|aws|azure|gcp|docker|kubernetes|terraform|ansible|jenkins|git|linux|unix|bash|react|angular|vue|node(?:\.js)?|django|flask|spring|rails|\.net|graphql|rest|api|html|css|sass|excel|tableau|power\s?bi|looker|salesforce|sap|oracle|jira|confluence|figma|sketch|photoshop|illustrator|indesign|autocad|solidworks|matlab|spss|hadoop|spark|airflow|snowflake|machine\s?learning|deep\s?learning|data\s?(?:analysis|science|engineering)|etl|ci/cd|devops|microservices|agile|scrum|seo|sem|google\s?(?:analytics|ads))\b`)

	// softSkillPattern classifies a skill token as interpersonal.
	softSkillPattern = regexp.MustCompile(`(?i)\b(?:communication|leadership|teamwork|collaboration|problem[\s-]?solving|time\s?management|adaptability|flexibility|critical\s?thinking|creativity|organization|organisation|attention\s?to\s?detail|conflict\s?resolution|negotiation|mentoring|coaching|public\s?speaking|presentation|empathy|work\s?ethic|decision[\s-]?making|multitasking|interpersonal)\b`)

	// skillsSubheaderTechnical and skillsSubheaderSoft detect explicit
	// sub-headers inside a skills section; skillsSubheaderGeneric catches
	// any other "<word> skills" grouping line.
	skillsSubheaderTechnical = regexp.MustCompile(`(?i)^(?:technical|tools?|technologies|programming|software|hard)(?:\s+skills?)?:?$`)
	skillsSubheaderSoft      = regexp.MustCompile(`(?i)^(?:soft|personal|interpersonal|communication)(?:\s+skills?)?:?$`)
	skillsSubheaderGeneric   = regexp.MustCompile(`(?i)^(?:[a-z][a-z /&-]*\s+skills?|other|additional):?$`)

	// certSeparatorPattern splits certification name/issuer pairs.
	certSeparatorPattern = regexp.MustCompile(`\s+[-–|]\s+`)

	// wideGapPattern matches a tab or a run of two or more spaces used to
	// push dates to the right of an entry header line.
	wideGapPattern = regexp.MustCompile(`\t+|\s{2,}`)
)

// countDigits reports how many ASCII digits s contains.
func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// findPhone returns the first phone-shaped token in s with 10-15 digits.
func findPhone(s string) string {
	for _, cand := range phoneCandidatePattern.FindAllString(s, -1) {
		if d := countDigits(cand); d >= 10 && d <= 15 {
			return strings.TrimSpace(cand)
		}
	}
	return ""
}

// findDates returns the first date-range or single date token in line, and
// the line with that token removed.
func findDates(line string) (dates, rest string) {
	for _, p := range []*regexp.Regexp{dateRangePattern, yearRangePattern, monthYearPattern, yearPattern} {
		if loc := p.FindStringIndex(line); loc != nil {
			dates = strings.TrimSpace(line[loc[0]:loc[1]])
			rest = strings.TrimSpace(line[:loc[0]] + " " + line[loc[1]:])
			return dates, rest
		}
	}
	return "", line
}

// hasDateRange reports whether line contains a recognizable date range.
func hasDateRange(line string) bool {
	return dateRangePattern.MatchString(line) || yearRangePattern.MatchString(line)
}

// isBulletLine reports whether line starts with a bullet glyph.
func isBulletLine(line string) bool {
	return bulletPrefixPattern.MatchString(line)
}

// stripBullet removes a leading bullet glyph and surrounding space.
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefixPattern.ReplaceAllString(line, ""))
}
