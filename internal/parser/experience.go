package parser

import (
	"strings"

	"resumeforge/internal/types"
)

// parseExperience turns an experience section into position entries. Each
// candidate block is expected to open with either a company+dates line or a
// bare company line followed by a title line; everything after that is
// achievement bullets.
func parseExperience(lines []string) []types.ExperienceEntry {
	var out []types.ExperienceEntry
	for _, block := range splitBlocks(lines) {
		if e, ok := parseExperienceBlock(block); ok {
			out = append(out, e)
		}
	}
	return out
}

func parseExperienceBlock(block []string) (types.ExperienceEntry, bool) {
	e := types.ExperienceEntry{}
	if len(block) < 2 {
		return e, false
	}

	first := block[0]
	rest := block[1:]
	if hasDateRange(first) {
		// "Company - Location    01/2020 - Present" on one line.
		dates, remainder := findDates(first)
		e.Dates = dates
		e.Company, e.Location = splitCompanyLocation(remainder)
		e.Title = rest[0]
		rest = rest[1:]
	} else {
		e.Company, e.Location = splitCompanyLocation(first)
		title := rest[0]
		if hasDateRange(title) {
			e.Dates, title = findDates(title)
		}
		e.Title = title
		rest = rest[1:]
	}

	for _, line := range rest {
		switch {
		case isBulletLine(line):
			e.Bullets = append(e.Bullets, stripBullet(line))
		case e.Dates == "" && hasDateRange(line):
			e.Dates, _ = findDates(line)
		case len(e.Bullets) > 0:
			// Wrapped continuation of the previous bullet.
			e.Bullets[len(e.Bullets)-1] += " " + line
		default:
			e.Title = strings.TrimSpace(e.Title + " " + line)
		}
	}

	if e.Company == "" || e.Title == "" {
		return e, false
	}
	return e, true
}

// splitCompanyLocation separates "Company - Location" style name lines.
// The wide gap left behind by a stripped date column is treated like a
// separator too.
func splitCompanyLocation(line string) (company, location string) {
	line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "|•"))
	for _, sep := range []string{" - ", " – ", " — "} {
		if idx := strings.Index(line, sep); idx >= 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	// "Acme Corp, Boston, MA": a trailing two-letter state claims the last
	// two comma groups as the location.
	if parts := strings.Split(line, ","); len(parts) >= 3 {
		last := strings.TrimSpace(parts[len(parts)-1])
		if len(last) == 2 && last == strings.ToUpper(last) {
			company = strings.TrimSpace(strings.Join(parts[:len(parts)-2], ","))
			location = strings.TrimSpace(parts[len(parts)-2]) + ", " + last
			return company, location
		}
	}
	if loc := locationPattern.FindStringIndex(line); loc != nil && loc[0] > 0 {
		return strings.TrimSpace(strings.Trim(line[:loc[0]], " ,|•")), strings.TrimSpace(line[loc[0]:loc[1]])
	}
	return strings.TrimSpace(line), ""
}
