package parser

import (
	"strings"

	"resumeforge/internal/types"
)

// parseSkills builds the grouped skills list. When the section carries its
// own sub-headers the items are bucketed by those; otherwise every item is
// classified individually by the keyword patterns.
func parseSkills(lines []string) types.SkillsGroup {
	g := types.SkillsGroup{}
	content := nonEmpty(lines)
	if len(content) == 0 {
		return g
	}

	if hasSkillSubheaders(content) {
		// Items before the first sub-header fall back to keyword
		// classification; a nil bucket marks that state.
		var bucket *[]string
		for _, line := range content {
			switch {
			case skillsSubheaderTechnical.MatchString(line):
				bucket = &g.Technical
			case skillsSubheaderSoft.MatchString(line):
				bucket = &g.Soft
			case skillsSubheaderGeneric.MatchString(line):
				bucket = &g.Other
			case bucket == nil:
				for _, item := range splitSkillItems(line) {
					g = classifySkill(g, item)
				}
			default:
				*bucket = append(*bucket, splitSkillItems(line)...)
			}
		}
		return g
	}

	for _, line := range content {
		for _, item := range splitSkillItems(line) {
			g = classifySkill(g, item)
		}
	}
	return g
}

func hasSkillSubheaders(lines []string) bool {
	for _, line := range lines {
		if skillsSubheaderTechnical.MatchString(line) || skillsSubheaderSoft.MatchString(line) || skillsSubheaderGeneric.MatchString(line) {
			return true
		}
	}
	return false
}

// splitSkillItems breaks a skills line into individual items on commas,
// semicolons, pipes and inline bullet glyphs.
func splitSkillItems(line string) []string {
	line = stripBullet(line)
	var out []string
	for _, item := range strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•' || r == '·'
	}) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// classifySkill routes a single item into the technical, soft or other
// bucket. Classification is pure keyword matching with no state, so the same
// item always lands in the same bucket.
func classifySkill(g types.SkillsGroup, item string) types.SkillsGroup {
	switch {
	case technicalSkillPattern.MatchString(item):
		g.Technical = append(g.Technical, item)
	case softSkillPattern.MatchString(item):
		g.Soft = append(g.Soft, item)
	default:
		g.Other = append(g.Other, item)
	}
	return g
}
