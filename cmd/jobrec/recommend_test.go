package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/actuallystonmai/jobrec/internal/domain"
	"github.com/actuallystonmai/jobrec/internal/widget"
)

func TestRenderView(t *testing.T) {
	state := widget.State{
		Query: "python",
		Results: []domain.JobRecommendation{
			{JobRole: "Data Scientist", Company: "Acme", Category: "Data", RequiredSkills: "python", JobDescription: "Build models", SimilarityScore: 0.71},
			{JobRole: "Analyst", Company: "Initech", Category: "Data", RequiredSkills: "sql", JobDescription: "Reports", SimilarityScore: 0.5},
		},
		Health: &domain.APIHealth{Status: "healthy", ModelLoaded: true, TotalJobs: 1250},
	}

	var out bytes.Buffer
	renderView(&out, widget.NewView(state))
	got := out.String()

	for _, want := range []string{
		"API Status: healthy | Model Loaded: ✓ | Jobs Cached: 1250",
		"=== Top 2 Job Recommendations ===",
		"● 1. Data Scientist  [71.0%]",
		"○ 2. Analyst  [50.0%]",
		"Build models...",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}

func TestRenderViewEmptyAndError(t *testing.T) {
	var out bytes.Buffer
	renderView(&out, widget.NewView(widget.State{Query: "cobol", Error: "model not loaded"}))
	got := out.String()

	if !strings.Contains(got, "✗  model not loaded") {
		t.Errorf("missing error line:\n%s", got)
	}
	if !strings.Contains(got, widget.MsgNoResults) {
		t.Errorf("missing empty-state line:\n%s", got)
	}
	if strings.Contains(got, "API Status") {
		t.Errorf("health banner shown without a health snapshot:\n%s", got)
	}
}
