package parser

import (
	"reflect"
	"testing"

	"resumeforge/internal/types"
)

func TestParseSkillsFlatList(t *testing.T) {
	g := parseSkills([]string{"Go, Python, SQL", "Communication, Leadership", "Chess, Watercolors"})
	if want := []string{"Go", "Python", "SQL"}; !reflect.DeepEqual(g.Technical, want) {
		t.Errorf("technical = %v, want %v", g.Technical, want)
	}
	if want := []string{"Communication", "Leadership"}; !reflect.DeepEqual(g.Soft, want) {
		t.Errorf("soft = %v, want %v", g.Soft, want)
	}
	if want := []string{"Chess", "Watercolors"}; !reflect.DeepEqual(g.Other, want) {
		t.Errorf("other = %v, want %v", g.Other, want)
	}
}

func TestParseSkillsSubheaders(t *testing.T) {
	g := parseSkills([]string{
		"Technical:",
		"Go, Kubernetes",
		"Soft:",
		"Mentoring",
		"Other:",
		"Chess",
	})
	if want := []string{"Go", "Kubernetes"}; !reflect.DeepEqual(g.Technical, want) {
		t.Errorf("technical = %v, want %v", g.Technical, want)
	}
	if want := []string{"Mentoring"}; !reflect.DeepEqual(g.Soft, want) {
		t.Errorf("soft = %v, want %v", g.Soft, want)
	}
	if want := []string{"Chess"}; !reflect.DeepEqual(g.Other, want) {
		t.Errorf("other = %v, want %v", g.Other, want)
	}
}

func TestParseSkillsBulletedItems(t *testing.T) {
	g := parseSkills([]string{"• Python", "• Docker", "• Public Speaking"})
	if len(g.Technical) != 2 {
		t.Errorf("technical = %v", g.Technical)
	}
	if len(g.Soft) != 1 {
		t.Errorf("soft = %v", g.Soft)
	}
}

func TestClassifySkillIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		g := classifySkill(classifySkill(classifySkill(
			types.SkillsGroup{}, "Terraform"), "Empathy"), "Birdwatching")
		if len(g.Technical) != 1 || len(g.Soft) != 1 || len(g.Other) != 1 {
			t.Fatalf("unexpected grouping: %+v", g)
		}
	}
}
