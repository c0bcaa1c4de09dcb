package widget

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/jobrec/internal/domain"
)

func TestScoreTier(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{1.0, TierHigh},
		{0.71, TierHigh},
		{0.7000001, TierHigh},
		{0.70, TierMedium},
		{0.51, TierMedium},
		{0.50, TierLow},
		{0.3, TierLow},
		{0.0, TierLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreTier(tt.score), "score %v", tt.score)
	}
}

func TestShowEmptyState(t *testing.T) {
	assert.True(t, ShowEmptyState(State{Query: "cobol"}))
	assert.False(t, ShowEmptyState(State{Query: "cobol", Loading: true}), "hidden while loading")
	assert.False(t, ShowEmptyState(State{}), "hidden before any search")
	assert.False(t, ShowEmptyState(State{Query: "go", Results: jobs("SRE")}))
}

func TestEmptyStateAfterEmptyResponse(t *testing.T) {
	f := &fakeRecommender{health: healthy(), script: []*call{{recs: []domain.JobRecommendation{}}}}
	w := mounted(t, f)
	w.SetQuery("cobol")

	require.NoError(t, w.Submit(context.Background()))
	assert.True(t, ShowEmptyState(w.Snapshot()))
	assert.True(t, NewView(w.Snapshot()).ShowEmpty)
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "71.0%", FormatScore(0.71))
	assert.Equal(t, "83.5%", FormatScore(0.835))
	assert.Equal(t, "0.0%", FormatScore(0))
	assert.Equal(t, "100.0%", FormatScore(1))
	// ties round up
	assert.Equal(t, "6.3%", FormatScore(0.0625))
	assert.Equal(t, "12.5%", FormatScore(0.125))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short...", Excerpt("short"))

	long := strings.Repeat("a", 250)
	got := Excerpt(long)
	assert.Equal(t, strings.Repeat("a", 200)+"...", got)

	// cuts on characters, not bytes
	accented := strings.Repeat("é", 201)
	assert.Equal(t, strings.Repeat("é", 200)+"...", Excerpt(accented))
}

func TestNewView(t *testing.T) {
	s := State{
		Query: "python",
		Results: []domain.JobRecommendation{
			{JobRole: "Data Scientist", Company: "Acme", Category: "Data", RequiredSkills: " python, sql ", JobDescription: "Build models", SimilarityScore: 0.82},
			{JobRole: "Analyst", Company: "Initech", Category: "Data", RequiredSkills: "excel", JobDescription: "Reports", SimilarityScore: 0.6},
			{JobRole: "Intern", Company: "Globex", Category: "Misc", RequiredSkills: "", JobDescription: "", SimilarityScore: 0.2},
		},
		Health: &domain.APIHealth{Status: "healthy", ModelLoaded: false, TotalJobs: 3},
	}

	v := NewView(s)

	assert.Equal(t, "Top 3 Job Recommendations", v.Heading)
	assert.Equal(t, LabelSubmit, v.ButtonLabel)
	assert.False(t, v.ShowEmpty)
	require.NotNil(t, v.Health)
	assert.False(t, v.Health.ModelLoaded)

	require.Len(t, v.Cards, 3)
	assert.Equal(t, 1, v.Cards[0].Rank)
	assert.Equal(t, "python, sql", v.Cards[0].RequiredSkills)
	assert.Equal(t, "82.0%", v.Cards[0].Score)
	assert.Equal(t, TierHigh, v.Cards[0].Tier)
	assert.Equal(t, TierMedium, v.Cards[1].Tier)
	assert.Equal(t, TierLow, v.Cards[2].Tier)
	assert.Equal(t, "...", v.Cards[2].Excerpt)
}

func TestNewViewLoading(t *testing.T) {
	v := NewView(State{Query: "go", Loading: true})
	assert.Equal(t, LabelLoading, v.ButtonLabel)
	assert.Empty(t, v.Heading)
	assert.Nil(t, v.Health)
}
