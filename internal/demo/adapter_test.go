package demo

import (
	"encoding/json"
	"net/http"
	"testing"

	"go.uber.org/zap"
)

func newTestAdapter() (*Adapter, *Store) {
	store := NewStore()
	return NewAdapter(store, zap.NewNop()), store
}

func TestHandleEnvelopeShape(t *testing.T) {
	adapter, _ := newTestAdapter()

	result := adapter.Handle(Request{Method: http.MethodGet, Path: "/users/profile"})

	if result.Status != http.StatusOK || result.Envelope.Code != http.StatusOK {
		t.Errorf("status/code = %d/%d, want 200/200", result.Status, result.Envelope.Code)
	}
	if result.Envelope.Message != "success" {
		t.Errorf("message = %q, want success", result.Envelope.Message)
	}

	// Single entities arrive wrapped in a one-element array.
	raw, err := json.Marshal(result.Envelope.Data)
	if err != nil {
		t.Fatal(err)
	}
	var data []json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("data is not an array: %s", raw)
	}
	if len(data) != 1 {
		t.Errorf("data has %d elements, want 1", len(data))
	}
}

func TestHandleListRoutes(t *testing.T) {
	adapter, _ := newTestAdapter()

	tests := []struct {
		path string
		want int
	}{
		{"/users/rewards", 6},
		{"/quizzes", 5},
		{"/users/bike-logs", 2},
		{"/users/course-recommendations", 1},
		{"/news", 3},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			result := adapter.Handle(Request{Method: http.MethodGet, Path: tt.path})
			if result.Status != http.StatusOK {
				t.Fatalf("status = %d, want 200", result.Status)
			}
			raw, _ := json.Marshal(result.Envelope.Data)
			var data []json.RawMessage
			if err := json.Unmarshal(raw, &data); err != nil {
				t.Fatalf("data is not an array: %s", raw)
			}
			if len(data) != tt.want {
				t.Errorf("data has %d elements, want %d", len(data), tt.want)
			}
		})
	}
}

func TestHandleAuthRoutes(t *testing.T) {
	adapter, _ := newTestAdapter()

	login := adapter.Handle(Request{Method: http.MethodPost, Path: "/users"})
	if login.Status != http.StatusCreated {
		t.Errorf("login status = %d, want 201", login.Status)
	}
	raw, _ := json.Marshal(login.Envelope.Data)
	var tokens []map[string]string
	if err := json.Unmarshal(raw, &tokens); err != nil || len(tokens) != 1 {
		t.Fatalf("login data = %s", raw)
	}
	if tokens[0]["access_token"] != DemoAccessToken {
		t.Errorf("access_token = %q, want %q", tokens[0]["access_token"], DemoAccessToken)
	}

	refresh := adapter.Handle(Request{Method: http.MethodPost, Path: "/users/refresh"})
	if refresh.Status != http.StatusOK {
		t.Errorf("refresh status = %d, want 200", refresh.Status)
	}

	logout := adapter.Handle(Request{Method: http.MethodPost, Path: "/users/logout"})
	if logout.Status != http.StatusOK {
		t.Errorf("logout status = %d, want 200", logout.Status)
	}
}

func TestHandleLevelRouteIgnoresPathID(t *testing.T) {
	adapter, store := newTestAdapter()

	result := adapter.Handle(Request{Method: http.MethodGet, Path: "/users/42/level"})
	if result.Status != http.StatusOK {
		t.Fatalf("status = %d, want 200", result.Status)
	}

	raw, _ := json.Marshal(result.Envelope.Data)
	var data []struct {
		Level            int    `json:"level"`
		LevelName        string `json:"level_name"`
		ExperiencePoints int    `json:"experience_points"`
	}
	if err := json.Unmarshal(raw, &data); err != nil || len(data) != 1 {
		t.Fatalf("level data = %s", raw)
	}

	profile := store.Profile()
	if data[0].Level != profile.Level || data[0].ExperiencePoints != profile.ExperiencePoints {
		t.Errorf("level payload = %+v, want profile values", data[0])
	}
}

func TestHandleScoreUpdate(t *testing.T) {
	adapter, store := newTestAdapter()

	result := adapter.Handle(Request{
		Method: http.MethodPut,
		Path:   "/users/score",
		Body:   []byte(`{"experience_points": 150, "reward_reason": "보너스"}`),
	})
	if result.Status != http.StatusOK {
		t.Fatalf("status = %d, want 200", result.Status)
	}

	p := store.Profile()
	if p.ExperiencePoints != 300 || p.Level != 4 {
		t.Errorf("profile = %d xp level %d, want 300 xp level 4", p.ExperiencePoints, p.Level)
	}
}

func TestHandleQuizAttempt(t *testing.T) {
	adapter, store := newTestAdapter()

	result := adapter.Handle(Request{
		Method: http.MethodPost,
		Path:   "/quizzes/2/attempt",
		Body:   []byte(`{"answer": "o"}`),
	})
	if result.Status != http.StatusOK {
		t.Fatalf("status = %d, want 200", result.Status)
	}

	if p := store.Profile(); p.ExperiencePoints != 160 {
		t.Errorf("experience = %d, want 160 after correct answer", p.ExperiencePoints)
	}
}

func TestHandleCoursePostThreadsBody(t *testing.T) {
	adapter, store := newTestAdapter()

	result := adapter.Handle(Request{
		Method: http.MethodPost,
		Path:   "/users/course-recommendations",
		Body:   []byte(`{"places": [{"name": "난지한강공원", "description": "출발지", "x": "126.8754", "y": "37.5663"}]}`),
	})
	if result.Status != http.StatusCreated {
		t.Fatalf("status = %d, want 201", result.Status)
	}

	head := store.Courses()[0]
	if head.CourseName != "난지한강공원" || len(head.Places) != 1 {
		t.Errorf("created course = %q with %d places, want submitted data", head.CourseName, len(head.Places))
	}
}

func TestHandleCounts(t *testing.T) {
	adapter, store := newTestAdapter()
	store.AddBikeLog()
	store.AddCourse(nil)

	bike := adapter.Handle(Request{Method: http.MethodGet, Path: "/users/bike-logs/today/count"})
	raw, _ := json.Marshal(bike.Envelope.Data)
	var counts []struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(raw, &counts); err != nil || len(counts) != 1 || counts[0].Count != 1 {
		t.Errorf("bike count payload = %s, want count 1", raw)
	}

	course := adapter.Handle(Request{Method: http.MethodGet, Path: "/users/course-recommendations/week/count"})
	raw, _ = json.Marshal(course.Envelope.Data)
	if err := json.Unmarshal(raw, &counts); err != nil || len(counts) != 1 || counts[0].Count != 1 {
		t.Errorf("course count payload = %s, want count 1", raw)
	}
}

func TestHandleUnmatchedRoute(t *testing.T) {
	adapter, _ := newTestAdapter()

	result := adapter.Handle(Request{Method: http.MethodDelete, Path: "/users/bike-logs/1"})

	if result.Status != http.StatusNotFound || result.Envelope.Code != http.StatusNotFound {
		t.Errorf("status/code = %d/%d, want 404/404", result.Status, result.Envelope.Code)
	}
	if result.Envelope.Message != "Not found" {
		t.Errorf("message = %q, want Not found", result.Envelope.Message)
	}
	raw, _ := json.Marshal(result.Envelope.Data)
	if string(raw) != "[]" {
		t.Errorf("data = %s, want []", raw)
	}
}

func TestHandleMalformedBody(t *testing.T) {
	adapter, store := newTestAdapter()
	before := store.Profile()

	result := adapter.Handle(Request{
		Method: http.MethodPut,
		Path:   "/users/score",
		Body:   []byte(`{not json`),
	})

	if result.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", result.Status)
	}
	if after := store.Profile(); after.ExperiencePoints != before.ExperiencePoints {
		t.Error("malformed body still mutated the store")
	}
}

func TestHandleEmptyBodyDefaults(t *testing.T) {
	adapter, _ := newTestAdapter()

	result := adapter.Handle(Request{Method: http.MethodPut, Path: "/users/score"})
	if result.Status != http.StatusOK {
		t.Errorf("status = %d, want 200 for empty body", result.Status)
	}
}

func TestMatchOrderFirstWins(t *testing.T) {
	adapter, _ := newTestAdapter()

	// /users/profile must hit the exact route, not the level pattern.
	result := adapter.Handle(Request{Method: http.MethodGet, Path: "/users/profile"})
	if result.Status != http.StatusOK {
		t.Errorf("profile status = %d, want 200", result.Status)
	}

	// A non-numeric id does not match the level pattern.
	miss := adapter.Handle(Request{Method: http.MethodGet, Path: "/users/abc/level"})
	if miss.Status != http.StatusNotFound {
		t.Errorf("non-numeric id status = %d, want 404", miss.Status)
	}
}
