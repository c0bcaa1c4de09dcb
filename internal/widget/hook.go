package widget

import (
	"context"
	"sync"

	"github.com/actuallystonmai/jobrec/internal/domain"
)

// Hook is the state-light variant of the widget: it tracks loading and the
// last error, and hands results back to the caller instead of storing them.
type Hook struct {
	client Recommender

	mu      sync.Mutex
	loading bool
	err     string
}

func NewHook(client Recommender) *Hook {
	return &Hook{client: client}
}

// GetRecommendations fetches up to topN jobs for the given skills. A
// non-positive topN means the default of 10.
func (h *Hook) GetRecommendations(ctx context.Context, skills []string, topN int) ([]domain.JobRecommendation, error) {
	if topN <= 0 {
		topN = domain.DefaultTopN
	}

	h.mu.Lock()
	h.loading = true
	h.err = ""
	h.mu.Unlock()

	recs, err := h.client.Recommend(ctx, domain.RecommendationRequest{Skills: skills, TopN: topN})

	h.mu.Lock()
	defer h.mu.Unlock()
	h.loading = false
	if err != nil {
		h.err = err.Error()
		return nil, err
	}
	return recs, nil
}

func (h *Hook) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}

// Err returns the message of the last failure, or "" after a success.
func (h *Hook) Err() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}
