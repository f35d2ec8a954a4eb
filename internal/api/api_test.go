package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/MJE43/keno-time-patterns-go/internal/analyze"
	"github.com/MJE43/keno-time-patterns-go/internal/patterns"
	"github.com/MJE43/keno-time-patterns-go/internal/store"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	return NewServer(patterns.Default, nil, zerolog.Nop()).Routes()
}

func doGet(t *testing.T, h http.Handler, url string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return rec
}

func TestHandleNumbers(t *testing.T) {
	h := testServer(t)

	var resp numbersResponse
	rec := doGet(t, h, "/api/v1/numbers?time=01:05&balls=2", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if want := []int{64, 1, 6, 80}; !reflect.DeepEqual(resp.Numbers, want) {
		t.Errorf("Expected %v, got %v", want, resp.Numbers)
	}
	if resp.Fallback {
		t.Error("Expected a table hit, got fallback")
	}

	// Unknown slot: always-hot fallback at the default ball count.
	rec = doGet(t, h, "/api/v1/numbers?time=07:35", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !resp.Fallback {
		t.Error("Expected fallback for unknown slot")
	}
	if len(resp.Numbers) != 8 {
		t.Errorf("Expected 8 fallback numbers, got %d", len(resp.Numbers))
	}
	if resp.BallCount != 4 {
		t.Errorf("Expected default ball count 4, got %d", resp.BallCount)
	}
}

func TestHandleNumbersBadRequest(t *testing.T) {
	h := testServer(t)

	cases := []struct {
		url      string
		wantType string
	}{
		{"/api/v1/numbers", ErrTypeInvalidRequest},
		{"/api/v1/numbers?time=25:00", ErrTypeInvalidTimeKey},
		{"/api/v1/numbers?time=1pm", ErrTypeInvalidTimeKey},
		{"/api/v1/numbers?time=01:00&balls=four", ErrTypeInvalidRequest},
	}
	for _, tc := range cases {
		rec := doGet(t, h, tc.url, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.url, rec.Code)
			continue
		}
		var serviceErr ServiceError
		if err := json.Unmarshal(rec.Body.Bytes(), &serviceErr); err != nil {
			t.Fatalf("%s: decode error body: %v", tc.url, err)
		}
		if serviceErr.Type != tc.wantType {
			t.Errorf("%s: expected error type %s, got %s", tc.url, tc.wantType, serviceErr.Type)
		}
	}
}

func TestHandleCombinations(t *testing.T) {
	h := testServer(t)

	var resp combinationsResponse
	rec := doGet(t, h, "/api/v1/combinations?time=01:00", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if len(resp.Combinations) != 5 {
		t.Fatalf("Expected 5 combinations, got %d", len(resp.Combinations))
	}
	if resp.Combinations[0].Numbers != [2]int{15, 17} || resp.Combinations[0].Frequency != 16 {
		t.Errorf("Unexpected leading combination %+v", resp.Combinations[0])
	}

	// Unknown slot: empty list, not an error and not a fallback.
	rec = doGet(t, h, "/api/v1/combinations?time=07:35", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if len(resp.Combinations) != 0 {
		t.Errorf("Expected no combinations, got %v", resp.Combinations)
	}
}

func TestHandleConfidence(t *testing.T) {
	h := testServer(t)

	var resp confidenceResponse
	doGet(t, h, "/api/v1/confidence?time=07:35", &resp)
	if resp.Confidence != 60 {
		t.Errorf("Expected neutral confidence 60, got %v", resp.Confidence)
	}

	doGet(t, h, "/api/v1/confidence?time=01:00", &resp)
	if resp.Confidence != 95 {
		t.Errorf("Expected clamped confidence 95, got %v", resp.Confidence)
	}
}

func TestHandleMultiplier(t *testing.T) {
	h := testServer(t)

	var resp multiplierResponse
	rec := doGet(t, h, "/api/v1/multipliers/4", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if resp.Multiplier != 240.0 {
		t.Errorf("Expected 240, got %v", resp.Multiplier)
	}

	// Not offered is still a 200 with multiplier 0.
	rec = doGet(t, h, "/api/v1/multipliers/9", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if resp.Multiplier != 0 {
		t.Errorf("Expected 0 for unoffered count, got %v", resp.Multiplier)
	}

	rec = doGet(t, h, "/api/v1/multipliers/four", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric count, got %d", rec.Code)
	}
}

func TestHandleRecommendations(t *testing.T) {
	h := testServer(t)

	var resp recommendationResponse
	rec := doGet(t, h, "/api/v1/recommendations?time=01:00&balls=4&risk=high", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if want := []int{15, 17, 9, 33}; !reflect.DeepEqual(resp.Primary, want) {
		t.Errorf("Expected primary %v, got %v", want, resp.Primary)
	}
	if resp.CorrectedTime != "00:55" {
		t.Errorf("Expected corrected time 00:55, got %s", resp.CorrectedTime)
	}
	if resp.TimingOffset != -5 {
		t.Errorf("Expected timing offset -5, got %d", resp.TimingOffset)
	}
	if resp.OptimalBallCount != 6 {
		t.Errorf("Expected high-risk ball count 6, got %d", resp.OptimalBallCount)
	}
}

func TestHandleOptimalTimes(t *testing.T) {
	h := testServer(t)

	var resp optimalTimesResponse
	rec := doGet(t, h, "/api/v1/optimal-times", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if len(resp.OptimalTimes) != 10 {
		t.Errorf("Expected 10 optimal times, got %d", len(resp.OptimalTimes))
	}
	if len(resp.TopActiveHours) != 5 {
		t.Errorf("Expected 5 active hours, got %d", len(resp.TopActiveHours))
	}
}

func TestHandleNextOptimal(t *testing.T) {
	h := testServer(t)

	var resp patterns.NextOptimal
	rec := doGet(t, h, "/api/v1/next-optimal?after=13:00", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if resp.TimeKey != "13:20" || resp.WaitMinutes != 20 {
		t.Errorf("Expected 13:20 in 20m, got %s in %dm", resp.TimeKey, resp.WaitMinutes)
	}

	rec = doGet(t, h, "/api/v1/next-optimal?after=quarter-past", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestHandleAnalyzeWithoutStore(t *testing.T) {
	h := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 without a draw store, got %d", rec.Code)
	}
}

func TestHandleAnalyzeRebuildsTable(t *testing.T) {
	db, err := store.NewSQLiteDB(filepath.Join(t.TempDir(), "api_test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	draws := make([]analyze.Draw, 0, 6)
	for i := 0; i < 6; i++ {
		draws = append(draws, analyze.Draw{
			Issue:   string(rune('a' + i)),
			TimeKey: "09:30",
			Balls:   []int{7, 8, 9, 10 + i, 30 + i},
		})
	}
	if err := db.SaveDraws(draws); err != nil {
		t.Fatalf("SaveDraws: %v", err)
	}

	srv := NewServer(patterns.Default, db, zerolog.Nop())
	h := srv.Routes()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode analyze response: %v", err)
	}
	if resp.RunID == "" || resp.TotalDraws != 6 || resp.PatternCount != 1 {
		t.Errorf("Unexpected analyze response %+v", resp)
	}

	// The rebuilt table is in service: 09:30 is now a known slot.
	var numbers numbersResponse
	doGet(t, h, "/api/v1/numbers?time=09:30&balls=2", &numbers)
	if numbers.Fallback {
		t.Error("Expected 09:30 to be a table hit after reanalysis")
	}
	if len(numbers.Numbers) != 4 || numbers.Numbers[0] != 7 {
		t.Errorf("Unexpected numbers %v", numbers.Numbers)
	}

	run, err := db.LatestAnalysisRun()
	if err != nil {
		t.Fatalf("LatestAnalysisRun: %v", err)
	}
	if run == nil || run.ID != resp.RunID {
		t.Errorf("Expected recorded run %s, got %+v", resp.RunID, run)
	}
}

func TestHandleHealth(t *testing.T) {
	h := testServer(t)

	var resp healthResponse
	rec := doGet(t, h, "/health", &resp)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if resp.Status != "ok" {
		t.Errorf("Expected status ok, got %s", resp.Status)
	}
	if resp.Version != ServiceVersion {
		t.Errorf("Expected version %s, got %s", ServiceVersion, resp.Version)
	}
	if resp.PatternCount != len(patterns.Default.Patterns) {
		t.Errorf("Expected %d slots, got %d", len(patterns.Default.Patterns), resp.PatternCount)
	}
}
