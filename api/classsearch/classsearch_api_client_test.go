package classsearch

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"class-search-server/api"
	"class-search-server/apperrors"
	"class-search-server/models"
)

func TestSearch(t *testing.T) {
	var received map[string]interface{}
	wantResp := models.ClassSearchResponse{
		TotalHits: 2,
		Documents: []models.ClassDocument{{ClassNumber: "10001"}, {ClassNumber: "10002"}},
	}

	// Handler to verify request and return stubbed JSON
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST; got %s", r.Method)
		}
		if r.URL.Path != "/api/search" {
			t.Errorf("expected path /api/search; got %s", r.URL.Path)
		}

		b, _ := io.ReadAll(r.Body)
		json.Unmarshal(b, &received)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewClassSearchApiClient(api.NewHTTPClient(srv.URL))

	req := models.ClassSearchRequest{
		Term:           "1263",
		Page:           1,
		ResultsPerPage: 10,
		Subject:        "CS",
		CatalogPrefix:  "1",
	}
	got, err := client.Search(req)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalHits != wantResp.TotalHits {
		t.Errorf("TotalHits = %d; want %d", got.TotalHits, wantResp.TotalHits)
	}

	// verify payload field names on the wire
	checks := []struct {
		key  string
		want interface{}
	}{
		{"term", "1263"},
		{"page", 1.0},
		{"resultsPerPage", 10.0},
		{"subjectCode", "CS"},
		{"catalogNumberPrefix", "1"},
	}
	for _, c := range checks {
		if got, ok := received[c.key]; !ok || got != c.want {
			t.Errorf("body[%q] = %v; want %v", c.key, got, c.want)
		}
	}
	if _, present := received["catalogNumber"]; present {
		t.Error("empty catalogNumber should be omitted from the payload")
	}
}

func TestGetClasses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/api/class/1263/10001,10002" {
			t.Errorf("expected /api/class/1263/10001,10002; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.ClassDocument{{ClassNumber: "10001"}, {ClassNumber: "10002"}})
	}))
	defer srv.Close()

	client := NewClassSearchApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetClasses("1263", []string{"10001", "10002"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 documents, got %d", len(got))
	}
}

func TestGetClasses_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such class", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClassSearchApiClient(api.NewHTTPClient(srv.URL))

	_, err := client.GetClasses("1263", []string{"99999"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestGetAvailability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/class/1263/20001/availability" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ClassDocument{ClassNumber: "20001", ClassCapacity: 30, EnrollmentTotal: 30})
	}))
	defer srv.Close()

	client := NewClassSearchApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetAvailability("1263", "20001")
	if err != nil {
		t.Fatal(err)
	}
	if got.ClassNumber != "20001" {
		t.Errorf("ClassNumber = %s; want 20001", got.ClassNumber)
	}
}

func TestSearchByInstructor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search/1263/professor" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("query"); q != "van der Berg" {
			t.Errorf("query = %q; want %q", q, "van der Berg")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ClassSearchResponse{TotalHits: 1})
	}))
	defer srv.Close()

	client := NewClassSearchApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.SearchByInstructor("1263", "van der Berg")
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalHits != 1 {
		t.Errorf("TotalHits = %d; want 1", got.TotalHits)
	}
}

func TestGetFilterOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/1263/filter-options/subject" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.FilterOptionsResponse{
			Options: []models.FilterOption{{Value: "CS", DocCount: 84}},
		})
	}))
	defer srv.Close()

	client := NewClassSearchApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetFilterOptions("1263", "subject")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Value != "CS" {
		t.Errorf("unexpected options %v", got)
	}
}

func TestSearch_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClassSearchApiClient(api.NewHTTPClient(srv.URL))

	_, err := client.Search(models.ClassSearchRequest{Term: "1263"})
	if !errors.Is(err, apperrors.ErrSearchBackendUnavailable) {
		t.Errorf("expected SearchBackendUnavailable, got %v", err)
	}
}
