package parser

import (
	"strings"

	"resumeforge/internal/types"
)

// parseCertifications reads certification entries. Every non-bulleted
// capitalized line opens a new entry; an embedded date token is stripped
// from the name, and "Name - Issuer" separators split the pair.
func parseCertifications(lines []string) []types.Certification {
	var out []types.Certification
	var cur *types.Certification
	flush := func() {
		if cur != nil && cur.Name != "" {
			out = append(out, *cur)
		}
		cur = nil
	}
	for _, line := range nonEmpty(lines) {
		if !isBulletLine(line) && capStartPattern.MatchString(line) {
			flush()
			c := parseCertificationName(line)
			cur = &c
			continue
		}
		if cur == nil {
			c := parseCertificationName(stripBullet(line))
			cur = &c
			continue
		}
		detail := stripBullet(line)
		if dates, _ := findDates(detail); dates != "" && cur.Date == "" {
			cur.Date = dates
			continue
		}
		if cur.Issuer == "" {
			cur.Issuer = detail
		}
	}
	flush()
	return out
}

func parseCertificationName(line string) types.Certification {
	c := types.Certification{}
	if dates, rest := findDates(line); dates != "" {
		c.Date = dates
		line = strings.TrimRight(rest, " ,|-–—•")
	}
	if parts := certSeparatorPattern.Split(line, 2); len(parts) == 2 {
		c.Name = strings.TrimSpace(parts[0])
		c.Issuer = strings.TrimSpace(parts[1])
	} else {
		c.Name = strings.TrimSpace(line)
	}
	return c
}

// parseProjects reads project entries. The block's first line carries the
// name, possibly with an inline URL or date range that gets split off; the
// first plain continuation line becomes the description.
func parseProjects(lines []string) []types.Project {
	var out []types.Project
	for _, block := range splitBlocks(lines) {
		if p, ok := parseProjectBlock(block); ok {
			out = append(out, p)
		}
	}
	return out
}

func parseProjectBlock(block []string) (types.Project, bool) {
	p := types.Project{}
	if len(block) == 0 {
		return p, false
	}

	name := block[0]
	if url := urlPattern.FindString(name); url != "" {
		p.URL = url
		name = strings.Replace(name, url, "", 1)
	}
	if dates, rest := findDates(name); dates != "" {
		p.Dates = dates
		name = rest
	}
	p.Name = strings.Trim(strings.TrimSpace(name), "-–—|•: ")

	for _, line := range block[1:] {
		switch {
		case isBulletLine(line):
			p.Bullets = append(p.Bullets, stripBullet(line))
		case urlPattern.MatchString(line) && p.URL == "":
			p.URL = urlPattern.FindString(line)
		case hasDateRange(line) && p.Dates == "":
			p.Dates, _ = findDates(line)
		case p.Description == "":
			p.Description = line
		case len(p.Bullets) > 0:
			p.Bullets[len(p.Bullets)-1] += " " + line
		}
	}

	if p.Name == "" {
		return p, false
	}
	return p, true
}

// parseVolunteering reads volunteer entries. The organization line may pack
// location and dates behind bullet-glyph delimiters; a plain continuation
// line supplies the role, defaulting to "Volunteer" when absent.
func parseVolunteering(lines []string) []types.Volunteering {
	var out []types.Volunteering
	for _, block := range splitBlocks(lines) {
		if v, ok := parseVolunteeringBlock(block); ok {
			out = append(out, v)
		}
	}
	return out
}

func parseVolunteeringBlock(block []string) (types.Volunteering, bool) {
	v := types.Volunteering{}
	if len(block) == 0 {
		return v, false
	}

	parts := strings.Split(block[0], "•")
	v.Organization = strings.TrimSpace(parts[0])
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
		case v.Dates == "" && (hasDateRange(part) || yearPattern.MatchString(part)):
			v.Dates, _ = findDates(part)
		case v.Location == "":
			v.Location = part
		}
	}

	for _, line := range block[1:] {
		switch {
		case isBulletLine(line):
			v.Bullets = append(v.Bullets, stripBullet(line))
		case v.Dates == "" && hasDateRange(line):
			v.Dates, _ = findDates(line)
		case v.Role == "":
			v.Role = line
		case len(v.Bullets) > 0:
			v.Bullets[len(v.Bullets)-1] += " " + line
		}
	}

	if v.Organization == "" {
		return v, false
	}
	if v.Role == "" {
		v.Role = "Volunteer"
	}
	return v, true
}
