package widget

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/actuallystonmai/jobrec/internal/domain"
	"github.com/actuallystonmai/jobrec/internal/skills"
)

var (
	// ErrSuperseded is returned to a Submit whose response arrived after a
	// newer Submit was dispatched. Its result is discarded.
	ErrSuperseded = errors.New("response superseded by a newer request")
	// ErrUnmounted is returned when the widget is no longer mounted.
	ErrUnmounted = errors.New("widget is not mounted")
)

// Recommender is the network side of the widget.
type Recommender interface {
	CheckHealth(ctx context.Context) (*domain.APIHealth, error)
	Recommend(ctx context.Context, req domain.RecommendationRequest) ([]domain.JobRecommendation, error)
}

// State is the widget's UI state. Error is empty when there is no error.
type State struct {
	Query   string                     `json:"query"`
	Results []domain.JobRecommendation `json:"results"`
	Loading bool                       `json:"loading"`
	Error   string                     `json:"error,omitempty"`
	Health  *domain.APIHealth          `json:"health,omitempty"`
	Seq     uint64                     `json:"seq"`
}

func (s State) clone() State {
	out := s
	out.Results = append([]domain.JobRecommendation(nil), s.Results...)
	if out.Results == nil {
		out.Results = []domain.JobRecommendation{}
	}
	if s.Health != nil {
		h := *s.Health
		out.Health = &h
	}
	return out
}

type Option func(*Widget)

func WithTopN(n int) Option {
	return func(w *Widget) {
		if n > 0 {
			w.topN = n
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithOnChange registers a callback that receives a copy of the state after
// every change. It runs with the widget locked and must not call back into
// the widget.
func WithOnChange(fn func(State)) Option {
	return func(w *Widget) { w.onChange = fn }
}

// WithHealthErrorHandler receives health check failures. They never reach
// State.Error.
func WithHealthErrorHandler(fn func(error)) Option {
	return func(w *Widget) { w.onHealthError = fn }
}

// Widget holds the state of one recommendation widget instance.
type Widget struct {
	client        Recommender
	topN          int
	logger        *log.Logger
	onChange      func(State)
	onHealthError func(error)

	mu      sync.Mutex
	state   State
	mounted bool
}

func New(client Recommender, opts ...Option) *Widget {
	w := &Widget{
		client: client,
		topN:   domain.DefaultTopN,
		logger: log.New(io.Discard, "", 0),
		state:  State{Results: []domain.JobRecommendation{}},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Restore builds an unmounted widget from a saved snapshot. A request that
// was in flight when the snapshot was taken does not survive, so Loading is
// reset.
func Restore(client Recommender, snap State, opts ...Option) *Widget {
	w := New(client, opts...)
	w.state = snap.clone()
	w.state.Loading = false
	return w
}

// Mount marks the widget live and refreshes the health snapshot. A failed
// health check is logged and handed to the health error handler only.
func (w *Widget) Mount(ctx context.Context) {
	w.MarkMounted()

	health, err := w.client.CheckHealth(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.logger.Printf("[widget] API health check failed: %v", err)
		if w.onHealthError != nil {
			w.onHealthError(err)
		}
		return
	}
	if !w.mounted {
		return
	}
	w.state.Health = health
	w.changed()
}

// MarkMounted attaches the widget without running the health check, so
// Submit is accepted before Mount has returned.
func (w *Widget) MarkMounted() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mounted = true
}

// Unmount detaches the widget. Responses that resolve afterwards are
// dropped.
func (w *Widget) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mounted = false
}

func (w *Widget) Mounted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mounted
}

// SetQuery mirrors the input field.
func (w *Widget) SetQuery(query string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Query == query {
		return
	}
	w.state.Query = query
	w.changed()
}

// Submit requests recommendations for the current query. It blocks until
// the request resolves. Only the latest dispatched request may update the
// state; an older one gets ErrSuperseded.
func (w *Widget) Submit(ctx context.Context) error {
	w.mu.Lock()
	if !w.mounted {
		w.mu.Unlock()
		return ErrUnmounted
	}

	query := w.state.Query
	if strings.TrimSpace(query) == "" {
		w.state.Error = domain.MsgEmptyQuery
		w.changed()
		w.mu.Unlock()
		return &domain.ValidationError{Msg: domain.MsgEmptyQuery}
	}

	req := domain.RecommendationRequest{
		Skills: skills.Tokenize(query),
		TopN:   w.topN,
	}
	w.state.Seq++
	seq := w.state.Seq
	w.state.Loading = true
	w.state.Error = ""
	w.changed()
	w.mu.Unlock()

	recs, err := w.client.Recommend(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.mounted {
		w.logger.Printf("[widget] dropping response for request %d: unmounted", seq)
		return ErrUnmounted
	}
	if seq != w.state.Seq {
		w.logger.Printf("[widget] dropping response for request %d: superseded by %d", seq, w.state.Seq)
		return ErrSuperseded
	}

	w.state.Loading = false
	if err != nil {
		w.logger.Printf("[widget] error fetching recommendations: %v", err)
		w.state.Error = err.Error()
		w.changed()
		return err
	}

	if recs == nil {
		recs = []domain.JobRecommendation{}
	}
	w.state.Results = recs
	w.state.Error = ""
	w.changed()
	return nil
}

// Snapshot returns a copy of the current state.
func (w *Widget) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.clone()
}

// must hold w.mu
func (w *Widget) changed() {
	if w.onChange != nil {
		w.onChange(w.state.clone())
	}
}
