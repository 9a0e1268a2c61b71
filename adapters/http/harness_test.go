package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/khanhduong/smartresume/adapters/pdf"
	authUC "github.com/khanhduong/smartresume/internal/application/usecase/auth"
	recordUC "github.com/khanhduong/smartresume/internal/application/usecase/record"
	resumeUC "github.com/khanhduong/smartresume/internal/application/usecase/resume"
	webhookUC "github.com/khanhduong/smartresume/internal/application/usecase/webhook"
	"github.com/khanhduong/smartresume/internal/domain/user"
	"github.com/khanhduong/smartresume/internal/testutil"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/auth"
	"github.com/khanhduong/smartresume/pkg/logger"
)

const testWebhookSecret = "test-webhook-secret"

// memoryTokenStore is the in-process stand-in for the Redis refresh
// token store, with the same consume-on-exchange behavior.
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]*user.User
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]*user.User)}
}

func (s *memoryTokenStore) Store(_ context.Context, token string, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.tokens[token] = &cp
	return nil
}

func (s *memoryTokenStore) Exchange(_ context.Context, token string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.tokens[token]
	if !ok {
		return nil, apperror.NewUnauthorized("unknown refresh token", nil)
	}
	delete(s.tokens, token)
	return u, nil
}

type testEnv struct {
	t      *testing.T
	store  *testutil.Store
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := testutil.NewStore()
	log := logger.NewNop()

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	tokenStore := newMemoryTokenStore()

	repos := resumeUC.Repos{
		Resumes:      store.Resumes(),
		Projects:     store.Projects(),
		Experiences:  store.Experiences(),
		Educations:   store.Educations(),
		Skills:       store.Skills(),
		Achievements: store.Achievements(),
	}
	userRepo := store.Users()

	handlers := Handlers{
		Auth: NewAuthHandler(
			authUC.NewRegisterUseCase(userRepo, log),
			authUC.NewLoginUseCase(userRepo, jwtSvc, tokenStore, log),
			authUC.NewRefreshUseCase(jwtSvc, tokenStore, log),
			authUC.NewMeUseCase(userRepo),
		),
		Resumes: NewResumeHandler(
			resumeUC.NewResumeUseCase(repos, log),
			resumeUC.NewSummaryUseCase(repos, userRepo, nil, time.Second, log),
			resumeUC.NewExportUseCase(repos, userRepo, pdf.NewFpdfRenderer(), log),
		),
		Projects:     NewProjectHandler(recordUC.NewProjectUseCase(repos.Resumes, repos.Projects, log)),
		Experiences:  NewExperienceHandler(recordUC.NewExperienceUseCase(repos.Resumes, repos.Experiences, log)),
		Educations:   NewEducationHandler(recordUC.NewEducationUseCase(repos.Resumes, repos.Educations, log)),
		Skills:       NewSkillHandler(recordUC.NewSkillUseCase(repos.Resumes, repos.Skills, log)),
		Achievements: NewAchievementHandler(recordUC.NewAchievementUseCase(repos.Resumes, repos.Achievements, log)),
		Webhook:      NewWebhookHandler(webhookUC.NewIngestUseCase(repos.Resumes, repos.Projects, repos.Achievements, log), testWebhookSecret),
	}

	return &testEnv{
		t:      t,
		store:  store,
		router: NewRouter(handlers, jwtSvc, log),
	}
}

// do performs a request with an optional bearer token and JSON body.
func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) decode(w *httptest.ResponseRecorder, out any) {
	e.t.Helper()
	require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerAndLogin creates an account and returns its access token.
func (e *testEnv) registerAndLogin(username, password string) string {
	e.t.Helper()

	w := e.do("POST", "/api/auth/register", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(e.t, 201, w.Code, w.Body.String())

	w = e.do("POST", "/api/token", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(e.t, 200, w.Code, w.Body.String())

	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	e.decode(w, &pair)
	require.NotEmpty(e.t, pair.Access)
	return pair.Access
}

// createResume returns the new resume id.
func (e *testEnv) createResume(token, title string) string {
	e.t.Helper()

	w := e.do("POST", "/api/resumes", token, gin.H{"title": title})
	require.Equal(e.t, 201, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	e.decode(w, &created)
	require.NotEmpty(e.t, created.ID)
	return created.ID
}
