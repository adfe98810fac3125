package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"
	"tipcloud/pkg/apperror"
	"tipcloud/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	directoryCacheTTL    = 30 * time.Second
	defaultFeaturedCount = 4
)

// DirectoryServiceImpl implements ports.DirectoryService.
type DirectoryServiceImpl struct {
	djRepo ports.DJRepository
	cache  ports.DirectoryCache
	seed   []domain.DJProfile
	log    zerolog.Logger
}

// NewDirectoryService creates a new DirectoryServiceImpl. cache may be nil.
func NewDirectoryService(djRepo ports.DJRepository, cache ports.DirectoryCache, log zerolog.Logger) *DirectoryServiceImpl {
	return &DirectoryServiceImpl{
		djRepo: djRepo,
		cache:  cache,
		seed:   seedCatalogue(time.Now().UTC()),
		log:    logger.Component(log, "directory"),
	}
}

// List returns registered and seed DJs filtered by q.
func (s *DirectoryServiceImpl) List(ctx context.Context, q ports.DJQuery) ([]domain.DJProfile, error) {
	if q.Sort == "" {
		q.Sort = domain.DJSortNewest
	}
	if !q.Sort.IsValid() {
		return nil, apperror.ErrInvalidQuery(fmt.Sprintf("unknown sort %q", q.Sort))
	}

	key := cacheKey(q)
	if cached := s.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	all, complete := s.merged(ctx)
	result := filterDJs(all, q)
	sortDJs(result, q.Sort)

	if complete {
		s.toCache(ctx, key, result)
	}
	return result, nil
}

// Genres returns the distinct genres in the directory, sorted.
func (s *DirectoryServiceImpl) Genres(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var genres []string
	all, _ := s.merged(ctx)
	for _, dj := range all {
		if _, ok := seen[dj.Genre]; ok {
			continue
		}
		seen[dj.Genre] = struct{}{}
		genres = append(genres, dj.Genre)
	}
	sort.Strings(genres)
	return genres, nil
}

// Get returns one DJ, registered profiles first.
func (s *DirectoryServiceImpl) Get(ctx context.Context, id string) (*domain.DJProfile, error) {
	dj, err := s.djRepo.GetByID(ctx, id)
	if err != nil {
		if seed := s.seedByID(id); seed != nil {
			s.log.Warn().Err(err).Str("dj_id", id).Msg("profile lookup failed, serving seed entry")
			return seed, nil
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get dj: %w", err))
	}
	if dj != nil {
		return dj, nil
	}
	if seed := s.seedByID(id); seed != nil {
		return seed, nil
	}
	return nil, apperror.ErrDJNotFound()
}

// Featured returns the limit most followed DJs.
func (s *DirectoryServiceImpl) Featured(ctx context.Context, limit int) ([]domain.DJProfile, error) {
	if limit <= 0 {
		limit = defaultFeaturedCount
	}
	all, _ := s.merged(ctx)
	sortDJs(all, domain.DJSortPopularity)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// Register creates the caller's DJ profile. An account owns at most one.
func (s *DirectoryServiceImpl) Register(ctx context.Context, userID uuid.UUID, req ports.RegisterDJRequest) (*domain.DJProfile, error) {
	owner := userID.String()

	existing, err := s.djRepo.GetByUserID(ctx, owner)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("check profile: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrProfileExists()
	}

	now := time.Now().UTC()
	dj := &domain.DJProfile{
		ID:            owner,
		UserID:        &owner,
		Name:          strings.TrimSpace(req.Name),
		Genre:         strings.TrimSpace(req.Genre),
		Bio:           strings.TrimSpace(req.Bio),
		SoundCloudURL: strings.TrimSpace(req.SoundCloudURL),
		WalletAddress: strings.TrimSpace(req.WalletAddress),
		ImageURL:      req.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.djRepo.Create(ctx, dj); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrProfileExists()
		}
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create dj: %w", err))
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to invalidate directory cache")
		}
	}

	s.log.Info().Str("dj_id", dj.ID).Str("genre", dj.Genre).Msg("DJ registered")
	return dj, nil
}

// merged combines stored profiles with the seed catalogue. Stored profiles
// win on id collisions. A failing store degrades to seed data only and
// reports complete=false so the result is not cached.
func (s *DirectoryServiceImpl) merged(ctx context.Context) (out []domain.DJProfile, complete bool) {
	stored, err := s.djRepo.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load DJ profiles, serving seed catalogue")
		stored = nil
	}

	out = make([]domain.DJProfile, 0, len(stored)+len(s.seed))
	ids := make(map[string]struct{}, len(stored))
	for _, dj := range stored {
		ids[dj.ID] = struct{}{}
		out = append(out, dj)
	}
	for _, dj := range s.seed {
		if _, ok := ids[dj.ID]; !ok {
			out = append(out, dj)
		}
	}
	return out, err == nil
}

func (s *DirectoryServiceImpl) seedByID(id string) *domain.DJProfile {
	for i := range s.seed {
		if s.seed[i].ID == id {
			dj := s.seed[i]
			return &dj
		}
	}
	return nil
}

func (s *DirectoryServiceImpl) fromCache(ctx context.Context, key string) []domain.DJProfile {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("directory cache read failed")
		return nil
	}
	if raw == nil {
		return nil
	}
	var djs []domain.DJProfile
	if err := json.Unmarshal(raw, &djs); err != nil {
		s.log.Warn().Err(err).Msg("discarding corrupt directory cache entry")
		return nil
	}
	return djs
}

func (s *DirectoryServiceImpl) toCache(ctx context.Context, key string, djs []domain.DJProfile) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(djs)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, directoryCacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("directory cache write failed")
	}
}

func cacheKey(q ports.DJQuery) string {
	return fmt.Sprintf("q=%s|g=%s|s=%s", strings.ToLower(strings.TrimSpace(q.Search)), q.Genre, q.Sort)
}

// filterDJs applies a case-insensitive substring search over name, genre
// and bio, then an exact genre match.
func filterDJs(djs []domain.DJProfile, q ports.DJQuery) []domain.DJProfile {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.DJProfile, 0, len(djs))
	for _, dj := range djs {
		if search != "" &&
			!strings.Contains(strings.ToLower(dj.Name), search) &&
			!strings.Contains(strings.ToLower(dj.Genre), search) &&
			!strings.Contains(strings.ToLower(dj.Bio), search) {
			continue
		}
		if q.Genre != "" && dj.Genre != q.Genre {
			continue
		}
		out = append(out, dj)
	}
	return out
}

func sortDJs(djs []domain.DJProfile, by domain.DJSort) {
	switch by {
	case domain.DJSortName:
		sort.SliceStable(djs, func(i, j int) bool {
			return strings.ToLower(djs[i].Name) < strings.ToLower(djs[j].Name)
		})
	case domain.DJSortPopularity:
		sort.SliceStable(djs, func(i, j int) bool {
			return djs[i].Followers > djs[j].Followers
		})
	default:
		sort.SliceStable(djs, func(i, j int) bool {
			return djs[i].CreatedAt.After(djs[j].CreatedAt)
		})
	}
}
