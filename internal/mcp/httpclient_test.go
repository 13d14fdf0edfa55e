package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/claude/planforge/internal/catalog"
	"github.com/claude/planforge/internal/plan"
	"github.com/claude/planforge/internal/storage"
)

// newTestAPIServer creates an httptest server that routes requests to
// handler functions keyed by path. Verifies the HTTP client sends
// correct paths and query params.
func newTestAPIServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestSearchExercisesHTTP verifies the HTTP client sends the right
// query params and parses the JSON array response.
func TestSearchExercisesHTTP(t *testing.T) {
	ts := newTestAPIServer(t, map[string]http.HandlerFunc{
		"/api/v1/exercises": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "bench" {
				t.Errorf("q=%q, want bench", got)
			}
			if got := r.URL.Query().Get("bodyPart"); got != "chest" {
				t.Errorf("bodyPart=%q, want chest", got)
			}
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("limit=%q, want 5", got)
			}
			writeTestJSON(t, w, []catalog.Exercise{
				{ID: "0025", Name: "barbell bench press", BodyPart: "chest"},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	entries, err := client.SearchExercises(context.Background(), "bench", "chest", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].ID != "0025" {
		t.Errorf("id=%q, want 0025", entries[0].ID)
	}
}

// TestAllExercisesHTTP verifies the full-catalog fetch uses the search
// endpoint with no filters.
func TestAllExercisesHTTP(t *testing.T) {
	ts := newTestAPIServer(t, map[string]http.HandlerFunc{
		"/api/v1/exercises": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "" {
				t.Errorf("q=%q, want empty", got)
			}
			writeTestJSON(t, w, []catalog.Exercise{
				{ID: "0025", Name: "barbell bench press"},
				{ID: "0032", Name: "barbell full squat"},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	entries, err := client.AllExercises(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}

// TestGetExerciseHTTP verifies single-exercise fetch by ID.
func TestGetExerciseHTTP(t *testing.T) {
	ts := newTestAPIServer(t, map[string]http.HandlerFunc{
		"/api/v1/exercises/0652": func(w http.ResponseWriter, _ *http.Request) {
			writeTestJSON(t, w, catalog.Exercise{ID: "0652", Name: "pull up", BodyPart: "back"})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	e, err := client.GetExercise(context.Background(), "0652")
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != "pull up" {
		t.Errorf("name=%q, want 'pull up'", e.Name)
	}
}

// TestCountExercisesHTTP verifies the count comes from the health
// endpoint.
func TestCountExercisesHTTP(t *testing.T) {
	ts := newTestAPIServer(t, map[string]http.HandlerFunc{
		"/healthz": func(w http.ResponseWriter, _ *http.Request) {
			writeTestJSON(t, w, map[string]any{"status": "ok", "exercises": 1324})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	count, err := client.CountExercises(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 1324 {
		t.Errorf("count=%d, want 1324", count)
	}
}

// TestInsertPlanHTTP verifies plan storage posts the profile with the
// API key and returns the server-assigned ID.
func TestInsertPlanHTTP(t *testing.T) {
	id := uuid.New()
	ts := newTestAPIServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method=%s, want POST", r.Method)
			}
			if got := r.Header.Get("X-API-Key"); got != "secret" {
				t.Errorf("X-API-Key=%q, want secret", got)
			}
			var profile plan.UserProfile
			if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
				t.Fatal(err)
			}
			if profile.DaysPerWeek != 3 {
				t.Errorf("daysPerWeek=%d, want 3", profile.DaysPerWeek)
			}
			w.WriteHeader(http.StatusCreated)
			writeTestJSON(t, w, map[string]any{"id": id})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "secret")
	profile := plan.UserProfile{Age: 25, Gender: plan.GenderMale, Goal: plan.GoalGainMuscle, Experience: plan.ExperienceNovice, DaysPerWeek: 3}
	got, err := client.InsertPlan(context.Background(), profile, &plan.GeneratedWorkoutPlan{})
	if err != nil {
		t.Fatal(err)
	}
	if got != id {
		t.Errorf("id=%s, want %s", got, id)
	}
}

// TestGetPlanHTTP verifies plan fetch by ID and the 404 mapping to
// storage.ErrNotFound.
func TestGetPlanHTTP(t *testing.T) {
	id := uuid.New()
	ts := newTestAPIServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans/" + id.String(): func(w http.ResponseWriter, _ *http.Request) {
			writeTestJSON(t, w, storage.PlanRecord{
				ID:        id,
				CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	rec, err := client.GetPlan(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != id {
		t.Errorf("id=%s, want %s", rec.ID, id)
	}
}

// TestGetPlanHTTPNotFound verifies a 404 response surfaces as
// storage.ErrNotFound.
func TestGetPlanHTTPNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"plan not found"}`))
	}))
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	_, err := client.GetPlan(context.Background(), uuid.New())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

// TestListPlansHTTP verifies the limit param and array parsing.
func TestListPlansHTTP(t *testing.T) {
	ts := newTestAPIServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("limit=%q, want 5", got)
			}
			writeTestJSON(t, w, []storage.PlanRecord{{ID: uuid.New()}})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	records, err := client.ListPlans(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

// TestHTTPClientServerError verifies the client returns an error on
// non-200 responses.
func TestHTTPClientServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database down"}`))
	}))
	defer ts.Close()

	client := NewHTTPClient(ts.URL, "")
	_, err := client.AllExercises(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}
