package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venoxy/portfolio-backend/errs"
	"github.com/venoxy/portfolio-backend/models"
	"github.com/venoxy/portfolio-backend/portfolio"
)

const testAdminPassword = "admin123"

// stubRepo is an in-memory remote store for handler tests.
type stubRepo struct {
	docs  map[string]models.Project
	order []string

	addErr    error
	deleteErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{docs: map[string]models.Project{}}
}

func (s *stubRepo) FindAll(_ context.Context) ([]models.Project, error) {
	out := make([]models.Project, 0, len(s.order))
	for _, id := range s.order {
		p := s.docs[id]
		p.ID = id
		out = append(out, p)
	}
	return out, nil
}

func (s *stubRepo) Add(_ context.Context, project models.Project) (string, error) {
	if s.addErr != nil {
		return "", s.addErr
	}
	id := "generated-id"
	s.docs[id] = project
	s.order = append(s.order, id)
	return id, nil
}

func (s *stubRepo) Update(_ context.Context, id string, project models.Project) error {
	if _, ok := s.docs[id]; !ok {
		return errs.NewDocumentNotFoundError(id)
	}
	s.docs[id] = project
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.docs[id]; !ok {
		return errs.NewDocumentNotFoundError(id)
	}
	delete(s.docs, id)
	kept := s.order[:0]
	for _, existing := range s.order {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	s.order = kept
	return nil
}

func (s *stubRepo) ReplaceAll(_ context.Context, projects []models.Project) error {
	s.docs = map[string]models.Project{}
	s.order = nil
	for _, project := range projects {
		s.docs[project.ID] = project
		s.order = append(s.order, project.ID)
	}
	return nil
}

func newTestRouter(t *testing.T, repo portfolio.ProjectRepository) (*chi.Mux, *portfolio.Store) {
	t.Helper()
	store := portfolio.NewStore(repo)
	store.Load(context.Background())

	r := chi.NewRouter()
	setupFrontendRoutes(r, initializeHandlers(store, Collaborators{}), newAdminMiddleware(testAdminPassword))
	return r, store
}

func doRequest(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetPortfolio(t *testing.T) {
	router, _ := newTestRouter(t, newStubRepo())

	rec := doRequest(router, http.MethodGet, "/portfolio", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data models.PortfolioData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Equal(t, portfolio.Seed().Name, data.Name)
	assert.Equal(t, portfolio.SeedProjects(), data.Projects)
}

func TestGetAllProjects(t *testing.T) {
	router, store := newTestRouter(t, newStubRepo())

	rec := doRequest(router, http.MethodGet, "/projects", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var collection ProjectCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &collection))
	assert.Equal(t, len(store.Projects()), collection.Total)
}

func TestGetAIShowcaseOnlyListsTaggedProjects(t *testing.T) {
	repo := newStubRepo()
	plain := models.Project{Title: "Plain", Description: "d", ImageURL: "u"}
	repo.docs["r-plain"] = plain
	tagged := plain
	tagged.Title = "Tagged"
	tagged.AIToolsUsed = []string{"Gemini"}
	repo.docs["r-tagged"] = tagged
	repo.order = []string{"r-plain", "r-tagged"}

	router, _ := newTestRouter(t, repo)

	rec := doRequest(router, http.MethodGet, "/projects/ai", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var collection ProjectCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &collection))
	for _, p := range collection.Projects {
		assert.NotEmpty(t, p.AIToolsUsed)
	}
}

func TestAdminGate(t *testing.T) {
	router, _ := newTestRouter(t, newStubRepo())

	t.Run("no token", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/portfolio/reset", "", map[string]bool{"confirm": true})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/portfolio/reset", "letmein", map[string]bool{"confirm": true})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unconfigured password rejects everyone", func(t *testing.T) {
		bare := chi.NewRouter()
		store := portfolio.NewStore(newStubRepo())
		setupFrontendRoutes(bare, initializeHandlers(store, Collaborators{}), newAdminMiddleware(""))

		rec := doRequest(bare, http.MethodPost, "/portfolio/reset", "", map[string]bool{"confirm": true})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateProject(t *testing.T) {
	router, store := newTestRouter(t, newStubRepo())
	before := len(store.Projects())

	body := models.Project{
		Title:       "Brand New",
		Description: "Fresh off the press",
		ImageURL:    "https://cdn/new.png",
		Category:    models.CategoryApplications,
	}
	rec := doRequest(router, http.MethodPost, "/projects", testAdminPassword, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "generated-id", created.ID)
	assert.Equal(t, "Brand New", created.Title)

	published := store.Projects()
	require.Len(t, published, before+1)
	assert.Equal(t, "generated-id", published[0].ID, "new projects go to the head of the list")
}

func TestCreateProjectRejectsIncompleteForm(t *testing.T) {
	router, store := newTestRouter(t, newStubRepo())
	before := store.Projects()

	body := models.Project{Title: "No description or image"}
	rec := doRequest(router, http.MethodPost, "/projects", testAdminPassword, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, before, store.Projects())
}

func TestCreateProjectRejectsMalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t, newStubRepo())

	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+testAdminPassword)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProjectRemoteFailure(t *testing.T) {
	repo := newStubRepo()
	repo.addErr = errors.New("write refused")
	router, store := newTestRouter(t, repo)
	before := store.Projects()

	body := models.Project{Title: "Doomed", Description: "d", ImageURL: "u"}
	rec := doRequest(router, http.MethodPost, "/projects", testAdminPassword, body)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, before, store.Projects())
}

func TestUpdateProject(t *testing.T) {
	repo := newStubRepo()
	repo.docs["r1"] = models.Project{Title: "Before", Description: "d", ImageURL: "u"}
	repo.order = []string{"r1"}
	router, store := newTestRouter(t, repo)

	body := models.Project{Title: "After", Description: "edited", ImageURL: "u2"}
	rec := doRequest(router, http.MethodPut, "/projects/r1", testAdminPassword, body)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "r1", updated.ID, "the path id wins over any body id")
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "After", store.Projects()[0].Title)
}

func TestUpdateProjectUnknownID(t *testing.T) {
	router, _ := newTestRouter(t, newStubRepo())

	body := models.Project{Title: "Ghost", Description: "d", ImageURL: "u"}
	rec := doRequest(router, http.MethodPut, "/projects/no-such-id", testAdminPassword, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProject(t *testing.T) {
	repo := newStubRepo()
	repo.docs["r1"] = models.Project{Title: "Going", Description: "d", ImageURL: "u"}
	repo.order = []string{"r1"}
	router, store := newTestRouter(t, repo)

	rec := doRequest(router, http.MethodDelete, "/projects/r1", testAdminPassword, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, p := range store.Projects() {
		assert.NotEqual(t, "r1", p.ID)
	}
}

func TestDeleteProjectRemoteFailureKeepsEntry(t *testing.T) {
	repo := newStubRepo()
	repo.docs["r1"] = models.Project{Title: "Sticky", Description: "d", ImageURL: "u"}
	repo.order = []string{"r1"}
	router, store := newTestRouter(t, repo)

	repo.deleteErr = errors.New("delete refused")
	rec := doRequest(router, http.MethodDelete, "/projects/r1", testAdminPassword, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	found := false
	for _, p := range store.Projects() {
		if p.ID == "r1" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestResetRequiresConfirmation(t *testing.T) {
	router, _ := newTestRouter(t, newStubRepo())

	t.Run("missing body", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/portfolio/reset", testAdminPassword, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("confirm false", func(t *testing.T) {
		rec := doRequest(router, http.MethodPost, "/portfolio/reset", testAdminPassword, map[string]bool{"confirm": false})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestResetRestoresSeedData(t *testing.T) {
	repo := newStubRepo()
	repo.docs["r1"] = models.Project{Title: "Remote Only", Description: "d", ImageURL: "u"}
	repo.order = []string{"r1"}
	router, store := newTestRouter(t, repo)

	rec := doRequest(router, http.MethodPost, "/portfolio/reset", testAdminPassword, map[string]bool{"confirm": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, portfolio.SeedProjects(), store.Projects())
}

func TestChatUnconfiguredAssistant(t *testing.T) {
	router, _ := newTestRouter(t, newStubRepo())

	rec := doRequest(router, http.MethodPost, "/assistant/chat", "", map[string]string{"message": "hi"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGenerateUnconfiguredAssistant(t *testing.T) {
	router, _ := newTestRouter(t, newStubRepo())

	rec := doRequest(router, http.MethodPost, "/assistant/generate", testAdminPassword, map[string]string{"title": "X"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
