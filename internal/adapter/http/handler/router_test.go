package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tipcloud/internal/adapter/http/middleware"
	redisStore "tipcloud/internal/adapter/storage/redis"
	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"
	"tipcloud/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerMocks struct {
	auth      *mocks.MockAuthService
	directory *mocks.MockDirectoryService
	tips      *mocks.MockTipService
	wallet    *mocks.MockWalletService
	tokens    *mocks.MockTokenService
}

func setupRouter(t *testing.T, promptTimeout time.Duration, store *redisStore.RateLimitStore) (http.Handler, *routerMocks) {
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		auth:      mocks.NewMockAuthService(ctrl),
		directory: mocks.NewMockDirectoryService(ctrl),
		tips:      mocks.NewMockTipService(ctrl),
		wallet:    mocks.NewMockWalletService(ctrl),
		tokens:    mocks.NewMockTokenService(ctrl),
	}
	r := SetupRouter(RouterDeps{
		AuthSvc:        m.auth,
		DirectorySvc:   m.directory,
		TipSvc:         m.tips,
		WalletSvc:      m.wallet,
		TokenSvc:       m.tokens,
		RateLimitStore: store,
		AllowedOrigins: []string{"http://localhost:5173"},
		PromptTimeout:  promptTimeout,
		Logger:         zerolog.Nop(),
	})
	return r, m
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, m := setupRouter(t, 0, nil)

	m.directory.EXPECT().Featured(gomock.Any(), 0).Return([]domain.DJProfile{}, nil)
	m.directory.EXPECT().Genres(gomock.Any()).Return([]string{"House"}, nil)
	m.directory.EXPECT().Get(gomock.Any(), "seed-1").Return(&domain.DJProfile{ID: "seed-1"}, nil)
	m.tips.EXPECT().Stats(gomock.Any(), "seed-1").Return(&domain.TipStats{}, nil)
	m.tips.EXPECT().Recent(gomock.Any(), "seed-1", 0).Return([]domain.Tip{}, nil)
	m.wallet.EXPECT().Status(gomock.Any()).Return(ports.WalletStatus{Providers: []string{}})

	for _, path := range []string{
		"/health",
		"/api/v1/djs/featured",
		"/api/v1/djs/genres",
		"/api/v1/djs/seed-1",
		"/api/v1/djs/seed-1/tips",
		"/api/v1/wallet/status",
		"/api/v1/tips/options",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
	}
}

func TestRouter_RegisterRequiresToken(t *testing.T) {
	r, _ := setupRouter(t, 0, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/v1/djs", map[string]string{"name": "Nova"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_003", decodeBody(t, w)["error_code"])
}

func TestRouter_RegisterWithToken(t *testing.T) {
	r, m := setupRouter(t, 0, nil)

	userID := uuid.New()
	m.tokens.EXPECT().Validate("good").Return(&ports.TokenClaims{UserID: userID, Email: "dj@tipcloud.test"}, nil)
	m.directory.EXPECT().Register(gomock.Any(), userID, gomock.Any()).Return(&domain.DJProfile{ID: userID.String()}, nil)

	req := jsonRequest(t, http.MethodPost, "/api/v1/djs", map[string]string{
		"name":           "Nova Pulse",
		"genre":          "Techno",
		"bio":            "Warehouse techno from Berlin.",
		"soundcloud_url": "https://soundcloud.com/novapulse",
		"wallet_address": "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7",
	})
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_PromptTimeoutBoundsWalletCalls(t *testing.T) {
	r, m := setupRouter(t, 50*time.Millisecond, nil)

	m.tips.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ ports.SendTipRequest) (*domain.TipResult, error) {
		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, time.Second)
		return &domain.TipResult{ErrorKind: domain.TipErrorProvider, ErrorMessage: "context deadline exceeded"}, nil
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/v1/tips", map[string]interface{}{
		"dj_id":       "seed-1",
		"amount_sats": 1000,
	}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, _ := setupRouter(t, 0, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/tips", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig_OriginRules(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	listed := corsConfig([]string{"http://localhost:5173"})
	assert.False(t, listed.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:5173"}, listed.AllowOrigins)

	assert.True(t, allowsAnyOrigin(nil))
	assert.True(t, allowsAnyOrigin([]string{"http://localhost:5173", "*"}))
	assert.False(t, allowsAnyOrigin([]string{"http://localhost:5173"}))
}

func TestRouter_RateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	r, m := setupRouter(t, 0, redisStore.NewRateLimitStore(client))
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("token", time.Now().Add(time.Hour), nil).Times(10)

	codes := make([]int, 0, 11)
	for i := 0; i < 11; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "fan@tipcloud.test",
			"password": "password123",
		}))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, http.StatusOK, codes[9])
	assert.Equal(t, http.StatusTooManyRequests, codes[10])
}
