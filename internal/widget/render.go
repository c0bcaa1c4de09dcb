package widget

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/actuallystonmai/jobrec/internal/domain"
)

type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

const (
	excerptLen = 200

	LabelSubmit  = "Get Recommendations"
	LabelLoading = "Loading..."
	MsgNoResults = "No recommendations found. Try different skills."
	Placeholder  = "Enter your skills (e.g., python, machine learning, react)"
)

// ScoreTier maps a similarity score to its display tier. Both bounds are
// strict: 0.7 is medium and 0.5 is low.
func ScoreTier(score float64) Tier {
	switch {
	case score > 0.7:
		return TierHigh
	case score > 0.5:
		return TierMedium
	default:
		return TierLow
	}
}

// ShowEmptyState reports whether the "no recommendations" message applies:
// a search was made and came back empty.
func ShowEmptyState(s State) bool {
	return !s.Loading && len(s.Results) == 0 && s.Query != ""
}

// FormatScore renders a score as a percentage with one decimal. Ties round
// up (6.25 -> 6.3), not half-to-even.
func FormatScore(score float64) string {
	pct := math.Floor(score*100*10+0.5) / 10
	return strconv.FormatFloat(pct, 'f', 1, 64) + "%"
}

// Excerpt cuts a job description to its first 200 characters.
func Excerpt(description string) string {
	r := []rune(description)
	if len(r) > excerptLen {
		r = r[:excerptLen]
	}
	return string(r) + "..."
}

func ButtonLabel(loading bool) string {
	if loading {
		return LabelLoading
	}
	return LabelSubmit
}

type Card struct {
	Rank           int
	JobRole        string
	Company        string
	Category       string
	RequiredSkills string
	Excerpt        string
	Score          string
	Tier           Tier
}

type HealthBanner struct {
	Status      string
	ModelLoaded bool
	TotalJobs   int
}

// View is State prepared for rendering.
type View struct {
	Query       string
	Loading     bool
	Error       string
	Health      *HealthBanner
	Heading     string
	Cards       []Card
	ShowEmpty   bool
	ButtonLabel string
	Placeholder string
	EmptyText   string
}

func NewView(s State) View {
	v := View{
		Query:       s.Query,
		Loading:     s.Loading,
		Error:       s.Error,
		ShowEmpty:   ShowEmptyState(s),
		ButtonLabel: ButtonLabel(s.Loading),
		Placeholder: Placeholder,
		EmptyText:   MsgNoResults,
	}
	if s.Health != nil {
		v.Health = &HealthBanner{
			Status:      s.Health.Status,
			ModelLoaded: s.Health.ModelLoaded,
			TotalJobs:   s.Health.TotalJobs,
		}
	}
	if len(s.Results) > 0 {
		v.Heading = fmt.Sprintf("Top %d Job Recommendations", len(s.Results))
		v.Cards = make([]Card, 0, len(s.Results))
		for i, job := range s.Results {
			v.Cards = append(v.Cards, newCard(i+1, job))
		}
	}
	return v
}

func newCard(rank int, job domain.JobRecommendation) Card {
	return Card{
		Rank:           rank,
		JobRole:        job.JobRole,
		Company:        job.Company,
		Category:       job.Category,
		RequiredSkills: strings.TrimSpace(job.RequiredSkills),
		Excerpt:        Excerpt(job.JobDescription),
		Score:          FormatScore(job.SimilarityScore),
		Tier:           ScoreTier(job.SimilarityScore),
	}
}
