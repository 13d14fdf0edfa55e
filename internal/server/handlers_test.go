package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/plan"
	"github.com/claude/planforge/internal/resolve"
	"github.com/claude/planforge/internal/storage"
)

// fakeStore is an in-memory Store implementation for handler tests.
type fakeStore struct {
	exercises []catalog.Exercise
	plans     map[uuid.UUID]storage.PlanRecord
}

func newFakeStore(exercises []catalog.Exercise) *fakeStore {
	return &fakeStore{exercises: exercises, plans: make(map[uuid.UUID]storage.PlanRecord)}
}

func (f *fakeStore) AllExercises(ctx context.Context) ([]catalog.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeStore) SearchExercises(ctx context.Context, nameQuery, bodyPart string, limit int) ([]catalog.Exercise, error) {
	var out []catalog.Exercise
	for _, e := range f.exercises {
		if nameQuery != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(nameQuery)) {
			continue
		}
		if bodyPart != "" && e.BodyPart != bodyPart {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) GetExercise(ctx context.Context, id string) (*catalog.Exercise, error) {
	for _, e := range f.exercises {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) CountExercises(ctx context.Context) (int, error) {
	return len(f.exercises), nil
}

func (f *fakeStore) InsertPlan(ctx context.Context, profile plan.UserProfile, generated *plan.GeneratedWorkoutPlan) (uuid.UUID, error) {
	id := uuid.New()
	f.plans[id] = storage.PlanRecord{ID: id, Profile: profile, Plan: *generated}
	return id, nil
}

func (f *fakeStore) GetPlan(ctx context.Context, id uuid.UUID) (*storage.PlanRecord, error) {
	rec, ok := f.plans[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeStore) ListPlans(ctx context.Context, limit int) ([]storage.PlanRecord, error) {
	out := make([]storage.PlanRecord, 0, len(f.plans))
	for _, rec := range f.plans {
		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

const testAPIKey = "test-key"

func testCatalog() []catalog.Exercise {
	return []catalog.Exercise{
		{ID: "0025", Name: "barbell bench press", BodyPart: "chest", Target: "pectorals", Equipment: "barbell"},
		{ID: "0289", Name: "dumbbell bench press", BodyPart: "chest", Target: "pectorals", Equipment: "dumbbell"},
		{ID: "0043", Name: "barbell full squat", BodyPart: "upper legs", Target: "glutes", Equipment: "barbell"},
		{ID: "0652", Name: "pull-up", BodyPart: "back", Target: "lats", Equipment: "body weight"},
	}
}

func newTestServer(store Store) *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := plan.NewGenerator(plan.Options{Logger: log})
	return New(store, gen, resolve.New(0), testAPIKey, log)
}

func postPlan(t *testing.T, s *Server, body string, withKey bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", bytes.NewBufferString(body))
	if withKey {
		req.Header.Set("X-API-Key", testAPIKey)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestGeneratePlanEndpoint verifies a valid profile produces a stored
// plan with one workout day per requested training day.
func TestGeneratePlanEndpoint(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))
	body := `{"age":25,"gender":"male","goal":"gain_muscle","experience":"novice","daysPerWeek":3}`
	rec := postPlan(t, s, body, true)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID   uuid.UUID         `json:"id"`
		Plan []plan.WorkoutDay `json:"plan"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.ID == uuid.Nil {
		t.Error("plan ID not set")
	}
	if len(resp.Plan) != 3 {
		t.Errorf("plan days = %d, want 3", len(resp.Plan))
	}
}

// TestGeneratePlanRequiresAPIKey verifies plan creation is rejected
// without the X-API-Key header.
func TestGeneratePlanRequiresAPIKey(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))
	rec := postPlan(t, s, `{"age":25,"gender":"male","goal":"gain_muscle","experience":"novice","daysPerWeek":3}`, false)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// TestGeneratePlanInvalidProfile verifies profile validation failures
// return 422 with the offending field named.
func TestGeneratePlanInvalidProfile(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))
	rec := postPlan(t, s, `{"age":25,"gender":"male","goal":"gain_muscle","experience":"novice","daysPerWeek":7}`, true)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["field"] != "daysPerWeek" {
		t.Errorf("field = %q, want daysPerWeek", resp["field"])
	}
}

// TestGeneratePlanBadJSON verifies malformed bodies return 400.
func TestGeneratePlanBadJSON(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))
	rec := postPlan(t, s, `{not json`, true)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestGetPlanRoundTrip verifies a generated plan can be fetched back by ID.
func TestGetPlanRoundTrip(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))
	rec := postPlan(t, s, `{"age":40,"gender":"female","goal":"lose_weight","experience":"experienced","daysPerWeek":4}`, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var created struct {
		ID uuid.UUID `json:"id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+created.ID.String(), nil)
	getRec := httptest.NewRecorder()
	s.ServeHTTP(getRec, req)

	if getRec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", getRec.Code)
	}
	var fetched storage.PlanRecord
	if err := json.NewDecoder(getRec.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if fetched.ID != created.ID {
		t.Errorf("fetched ID = %s, want %s", fetched.ID, created.ID)
	}
	if len(fetched.Plan.Days) != 4 {
		t.Errorf("fetched plan days = %d, want 4", len(fetched.Plan.Days))
	}
}

// TestGetPlanNotFound verifies unknown and malformed plan IDs.
func TestGetPlanNotFound(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/plans/not-a-uuid", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestSearchExercises verifies the q filter narrows results.
func TestSearchExercises(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises?q=bench", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var entries []catalog.Exercise
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("results = %d, want 2", len(entries))
	}
}

// TestGetExercise verifies lookup by catalog ID and the 404 path.
func TestGetExercise(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/0025", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var e catalog.Exercise
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if e.Name != "barbell bench press" {
		t.Errorf("name = %q", e.Name)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/exercises/9999", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// TestResolveExercise verifies the resolve endpoint surfaces the exact
// match as the top candidate.
func TestResolveExercise(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/resolve?name=Barbell+Bench+Press", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Candidates []struct {
			Exercise catalog.Exercise `json:"exercise"`
			Score    float64          `json:"score"`
			Exact    bool             `json:"exact"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Candidates) == 0 {
		t.Fatal("no candidates")
	}
	top := resp.Candidates[0]
	if top.Exercise.ID != "0025" || !top.Exact {
		t.Errorf("top candidate = %+v, want exact 0025", top)
	}
}

// TestResolveExerciseRequiresName verifies the name parameter is mandatory.
func TestResolveExerciseRequiresName(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/resolve", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHealth verifies the health endpoint reports the catalog size.
func TestHealth(t *testing.T) {
	s := newTestServer(newFakeStore(testCatalog()))
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %v, want ok", resp["status"])
	}
	if resp["exercises"] != float64(4) {
		t.Errorf("exercises = %v, want 4", resp["exercises"])
	}
}
