package parser

import (
	"strings"

	"resumeforge/internal/types"
)

// parseEducation turns an education section into degree entries. A block's
// first line is taken as the degree when it carries a degree token and as
// the institution otherwise; dates and a trailing location are split off
// whichever line carries them.
func parseEducation(lines []string) []types.EducationEntry {
	var out []types.EducationEntry
	for _, block := range splitBlocks(lines) {
		if e, ok := parseEducationBlock(block); ok {
			out = append(out, e)
		}
	}
	return out
}

func parseEducationBlock(block []string) (types.EducationEntry, bool) {
	e := types.EducationEntry{}
	if len(block) == 0 {
		return e, false
	}

	i := 0
	if degreePattern.MatchString(block[0]) && !looksLikeInstitution(block[0]) {
		e.Degree = block[0]
		i = 1
	}
	if i < len(block) {
		inst, dates, loc := splitInstitutionLine(block[i])
		e.Institution = inst
		e.Dates = dates
		e.Location = loc
		i++
	}
	if i < len(block) && e.Degree == "" && degreePattern.MatchString(block[i]) {
		e.Degree = block[i]
		i++
	}

	for ; i < len(block); i++ {
		line := block[i]
		if e.Dates == "" {
			if dates, rest := findDates(line); dates != "" {
				e.Dates = dates
				if e.Location == "" {
					if loc := locationPattern.FindString(rest); loc != "" {
						e.Location = loc
					}
				}
				if strings.Trim(rest, " ,|•-–—") == "" || locationPattern.MatchString(rest) {
					continue
				}
			}
		}
		detail := stripBullet(line)
		if detail != "" && detail != e.Degree && detail != e.Institution {
			e.Details = append(e.Details, detail)
		}
	}

	if e.Institution == "" {
		return e, false
	}
	return e, true
}

// looksLikeInstitution guards against degree tokens that appear inside a
// school name ("Bachelor College of Art" is rare; "University" etc. win).
func looksLikeInstitution(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range []string{"university", "college", "institute", "school", "academy", "polytechnic"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// splitInstitutionLine separates "Institution - City, ST   2015 - 2019"
// shaped lines into their parts. Any of the trailing pieces may be absent.
func splitInstitutionLine(line string) (inst, dates, location string) {
	dates, rest := findDates(line)
	if dates != "" && !hasDateRange(line) && !monthYearPattern.MatchString(line) {
		// A bare year matched; only trust it when it sits at the end of
		// the line, where graduation years live.
		if !strings.HasSuffix(strings.TrimRight(line, " ,|•"), dates) {
			dates, rest = "", line
		}
	}
	rest = strings.Trim(rest, " ,|•-–—")
	inst, location = splitCompanyLocation(rest)
	return inst, dates, location
}
