package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_routine_store.go -package=mocks gimnasio/internal/service RoutineStore
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks gimnasio/internal/service Embedder
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_routine_service.go -package=mocks gimnasio/internal/service RoutineService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gimnasio/internal/contextutil"
	"gimnasio/internal/gemini"
	"gimnasio/internal/markdown"
	"gimnasio/internal/storage"
	"gimnasio/internal/vectorstore"
)

const (
	// DefaultRoutineListLimit is used when List is called with a non-positive limit.
	DefaultRoutineListLimit = 20
	// MaxRoutineListLimit caps List.
	MaxRoutineListLimit = 100
	// DefaultSimilarK is used when Similar is called with a non-positive k.
	DefaultSimilarK = 5
	// MaxSimilarK caps Similar.
	MaxSimilarK = 20
)

var routineSections = []string{
	gemini.SectionWarmUp,
	gemini.SectionMainExercises,
	gemini.SectionCoolDown,
	gemini.SectionRecommendations,
}

// RoutineStore persists archived routines.
type RoutineStore interface {
	Insert(ctx context.Context, routine storage.RoutineRecord) error
	GetByID(ctx context.Context, id string) (storage.RoutineRecord, error)
	ListRecent(ctx context.Context, limit int) ([]storage.RoutineRecord, error)
	GetByIDs(ctx context.Context, ids []string) ([]storage.RoutineRecord, error)
	Delete(ctx context.Context, id string) error
}

// Embedder turns text into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// RoutineInput is a routine to archive.
type RoutineInput struct {
	Goal     string
	Level    string
	Duration string
	Content  string
	Model    string
}

// Routine is an archived routine. Sections lists the expected section
// titles found in Content.
type Routine struct {
	ID        string
	Goal      string
	Level     string
	Duration  string
	Content   string
	Model     string
	Sections  []string
	CreatedAt time.Time
}

// ScoredRoutine is a similarity search hit.
type ScoredRoutine struct {
	Routine
	Score float32
}

// RoutineService manages the routine archive.
type RoutineService interface {
	RoutineArchive
	// List returns the newest routines.
	List(ctx context.Context, limit int) ([]Routine, error)
	// Get returns one routine or ErrNotFound.
	Get(ctx context.Context, id string) (Routine, error)
	// Similar returns the routines closest to query, optionally restricted to a level.
	// ErrUnavailable is returned when vector search is not configured.
	Similar(ctx context.Context, query string, k int, level string) ([]ScoredRoutine, error)
	// Delete removes a routine and its vector, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type routineService struct {
	store      RoutineStore
	renderer   *markdown.Renderer
	embedder   Embedder
	vectors    vectorstore.VectorStore
	collection string
	now        func() time.Time
}

// RoutineOption configures a RoutineService.
type RoutineOption func(*routineService)

// WithVectorIndex enables embedding and similarity search.
func WithVectorIndex(embedder Embedder, vectors vectorstore.VectorStore, collection string) RoutineOption {
	return func(s *routineService) {
		s.embedder = embedder
		s.vectors = vectors
		s.collection = collection
	}
}

// NewRoutineService creates a RoutineService backed by store.
func NewRoutineService(store RoutineStore, renderer *markdown.Renderer, opts ...RoutineOption) RoutineService {
	s := &routineService{
		store:    store,
		renderer: renderer,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *routineService) indexed() bool {
	return s.embedder != nil && s.vectors != nil
}

// Save stores the routine in sqlite and, when enabled, in the vector index.
// Index failures are logged; the routine stays archived.
func (s *routineService) Save(ctx context.Context, input RoutineInput) (Routine, error) {
	logger := contextutil.LoggerFromContext(ctx)

	record := storage.RoutineRecord{
		ID:        uuid.NewString(),
		Goal:      input.Goal,
		Level:     input.Level,
		Duration:  input.Duration,
		Content:   input.Content,
		Model:     input.Model,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Insert(ctx, record); err != nil {
		return Routine{}, WrapError(err, "failed to store routine")
	}

	if s.indexed() {
		if err := s.index(ctx, record); err != nil {
			logger.WarnContext(ctx, "failed to index routine", "routine_id", record.ID, "error", err)
		}
	}

	return s.toRoutine(record), nil
}

func (s *routineService) index(ctx context.Context, record storage.RoutineRecord) error {
	vec, err := s.embedder.Embed(ctx, embeddingText(record))
	if err != nil {
		return WrapError(err, "failed to embed routine")
	}

	return s.vectors.Upsert(ctx, s.collection, []vectorstore.Point{{
		ID:  record.ID,
		Vec: vec,
		Meta: map[string]any{
			"routine_id": record.ID,
			"goal":       record.Goal,
			"level":      record.Level,
			"duration":   record.Duration,
		},
	}})
}

func embeddingText(record storage.RoutineRecord) string {
	return "Objetivo: " + record.Goal + "\nNivel: " + record.Level + "\nDuración: " + record.Duration + "\n\n" + record.Content
}

func (s *routineService) List(ctx context.Context, limit int) ([]Routine, error) {
	if limit <= 0 {
		limit = DefaultRoutineListLimit
	}
	if limit > MaxRoutineListLimit {
		limit = MaxRoutineListLimit
	}

	records, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, WrapError(err, "failed to list routines")
	}

	routines := make([]Routine, 0, len(records))
	for _, record := range records {
		routines = append(routines, s.toRoutine(record))
	}
	return routines, nil
}

func (s *routineService) Get(ctx context.Context, id string) (Routine, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Routine{}, ErrNotFound
	}

	record, err := s.store.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return Routine{}, ErrNotFound
	}
	if err != nil {
		return Routine{}, WrapError(err, "failed to get routine")
	}
	return s.toRoutine(record), nil
}

// Delete removes the sqlite row first. A vector left behind by a failed
// index delete is harmless: Similar skips ids with no row.
func (s *routineService) Delete(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	err := s.store.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return WrapError(err, "failed to delete routine")
	}

	if s.indexed() {
		if err := s.vectors.Delete(ctx, s.collection, []string{id}); err != nil {
			logger.WarnContext(ctx, "failed to remove routine from index", "routine_id", id, "error", err)
		}
	}

	logger.InfoContext(ctx, "routine deleted", "routine_id", id)
	return nil
}

func (s *routineService) Similar(ctx context.Context, query string, k int, level string) ([]ScoredRoutine, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if !s.indexed() {
		return nil, ErrUnavailable
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &ValidationError{Field: "q", Message: "cannot be empty"}
	}
	if k <= 0 {
		k = DefaultSimilarK
	}
	if k > MaxSimilarK {
		k = MaxSimilarK
	}

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "failed to embed query", "error", err)
		return nil, fmt.Errorf("%w: embed query: %v", ErrExternalService, err)
	}

	var filters map[string]any
	if level = strings.TrimSpace(level); level != "" {
		filters = map[string]any{"level": level}
	}

	hits, err := s.vectors.Search(ctx, s.collection, vec, k, filters)
	if err != nil {
		logger.ErrorContext(ctx, "vector search failed", "error", err)
		return nil, fmt.Errorf("%w: vector search: %v", ErrExternalService, err)
	}

	ids := make([]string, 0, len(hits))
	scores := make(map[string]float32, len(hits))
	for _, hit := range hits {
		id, _ := hit.Meta["routine_id"].(string)
		if id == "" {
			id = hit.PointID
		}
		if id == "" {
			continue
		}
		if _, dup := scores[id]; dup {
			continue
		}
		ids = append(ids, id)
		scores[id] = hit.Score
	}

	records, err := s.store.GetByIDs(ctx, ids)
	if err != nil {
		return nil, WrapError(err, "failed to load routines")
	}

	results := make([]ScoredRoutine, 0, len(records))
	for _, record := range records {
		results = append(results, ScoredRoutine{
			Routine: s.toRoutine(record),
			Score:   scores[record.ID],
		})
	}

	logger.InfoContext(ctx, "similar routines found", "k", k, "hits", len(hits), "results", len(results))
	return results, nil
}

func (s *routineService) toRoutine(record storage.RoutineRecord) Routine {
	sections := []string{}
	if s.renderer != nil {
		sections = s.renderer.FindSections(record.Content, routineSections)
	}
	return Routine{
		ID:        record.ID,
		Goal:      record.Goal,
		Level:     record.Level,
		Duration:  record.Duration,
		Content:   record.Content,
		Model:     record.Model,
		Sections:  sections,
		CreatedAt: record.CreatedAt,
	}
}
