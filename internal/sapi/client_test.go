package sapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tradecut/internal/domain"
	"tradecut/internal/network"
	"tradecut/internal/qubo"
	"tradecut/internal/sapi"
)

func newTestClient(srv *httptest.Server) *sapi.Client {
	c := sapi.NewClient(srv.URL, "test-token", "test-solver")
	c.PollInterval = time.Millisecond
	return c
}

// TestSampleQUBO_SubmitAndPoll runs the happy path: submit, two polls, then
// a completed answer decoded into best-first samples.
func TestSampleQUBO_SubmitAndPoll(t *testing.T) {
	polls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /problems/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Auth-Token") != "test-token" {
			t.Errorf("missing auth token header")
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["solver"] != "test-solver" || req["type"] != "qubo" {
			t.Errorf("bad problem document: %v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "p-1", "status": "PENDING"})
	})
	mux.HandleFunc("GET /problems/p-1/", func(w http.ResponseWriter, r *http.Request) {
		polls++
		if polls < 2 {
			json.NewEncoder(w).Encode(map[string]any{"id": "p-1", "status": "IN_PROGRESS"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "p-1",
			"status": "COMPLETED",
			"answer": map[string]any{
				"variables":       []string{"A", "B"},
				"solutions":       [][]int{{0, 0}, {1, 0}},
				"energies":        []float64{0, -1},
				"num_occurrences": []int{400, 600},
			},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	n := network.New()
	n.AddDesire("A", "B")
	set, err := newTestClient(srv).SampleQUBO(context.Background(), qubo.Build(n), 1000)
	if err != nil {
		t.Fatalf("SampleQUBO: %v", err)
	}

	best, ok := set.First()
	if !ok {
		t.Fatal("empty sample set")
	}
	if best.Energy != -1 {
		t.Fatalf("want best energy -1 (re-sorted ascending), got %g", best.Energy)
	}
	if best.Assignment["A"] != 1 || best.Assignment["B"] != 0 {
		t.Fatalf("bad best assignment: %v", best.Assignment)
	}
	if best.Occurrences != 600 {
		t.Fatalf("want 600 occurrences, got %d", best.Occurrences)
	}
}

// TestSampleQUBO_Failed maps a FAILED problem to a ServiceError carrying the
// service's message.
func TestSampleQUBO_Failed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /problems/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"id":            "p-2",
			"status":        "FAILED",
			"error_message": "no embedding found",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := newTestClient(srv).SampleQUBO(context.Background(), domain.QUBO{}, 10)
	var svcErr *domain.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("want *domain.ServiceError, got %v", err)
	}
	if svcErr.Message != "no embedding found" {
		t.Fatalf("want service message passed through, got %q", svcErr.Message)
	}
}

// TestSampleQUBO_HTTPError maps a non-2xx response to a ServiceError.
func TestSampleQUBO_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).SampleQUBO(context.Background(), domain.QUBO{}, 10)
	var svcErr *domain.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("want *domain.ServiceError, got %v", err)
	}
}

// TestSampleQUBO_ContextCancel stops the poll loop when the context is
// cancelled.
func TestSampleQUBO_ContextCancel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /problems/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "p-3", "status": "PENDING"})
	})
	mux.HandleFunc("GET /problems/p-3/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "p-3", "status": "IN_PROGRESS"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv).SampleQUBO(ctx, domain.QUBO{}, 10)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want context deadline error, got %v", err)
	}
}

// TestSolvers decodes the solver listing.
func TestSolvers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /solvers/remote/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "Advantage_system4.1", "status": "ONLINE", "num_qubits": 5760},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	solvers, err := newTestClient(srv).Solvers(context.Background())
	if err != nil {
		t.Fatalf("Solvers: %v", err)
	}
	if len(solvers) != 1 || solvers[0].ID != "Advantage_system4.1" || solvers[0].Qubits != 5760 {
		t.Fatalf("bad solver list: %+v", solvers)
	}
}
