package sapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"tradecut/internal/domain"
)

// Problem statuses reported by the service.
const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusCancelled  = "CANCELLED"
)

// Client talks to an annealing service's problem API.
type Client struct {
	Base         string
	Token        string
	Solver       string
	HTTP         *http.Client
	PollInterval time.Duration
}

// NewClient returns a client for the service at base, authenticating with
// token and submitting problems to the named solver.
func NewClient(base, token, solver string) *Client {
	return &Client{
		Base:         base,
		Token:        token,
		Solver:       solver,
		HTTP:         http.DefaultClient,
		PollInterval: 500 * time.Millisecond,
	}
}

var _ domain.Sampler = (*Client)(nil)

// quadTerm is one off-diagonal coefficient on the wire.
type quadTerm struct {
	U    string  `json:"u"`
	V    string  `json:"v"`
	Bias float64 `json:"bias"`
}

// problemRequest is the submitted problem document.
type problemRequest struct {
	Solver string             `json:"solver"`
	Type   string             `json:"type"`
	Linear map[string]float64 `json:"linear"`
	Quad   []quadTerm         `json:"quadratic"`
	Params problemParams      `json:"params"`
}

type problemParams struct {
	NumReads int `json:"num_reads"`
}

// problemStatus is the service's view of a submitted problem.
type problemStatus struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Answer       *answer `json:"answer,omitempty"`
}

// answer carries parallel arrays: solutions[k][i] is the bit assigned to
// Variables[i] in the k-th sample.
type answer struct {
	Variables   []string  `json:"variables"`
	Solutions   [][]int   `json:"solutions"`
	Energies    []float64 `json:"energies"`
	Occurrences []int     `json:"num_occurrences"`
}

// SampleQUBO submits q with the given read count, blocks until the service
// reaches a terminal status, and returns the samples ordered ascending by
// energy.
func (c *Client) SampleQUBO(ctx context.Context, q domain.QUBO, numReads int) (domain.SampleSet, error) {
	req := problemRequest{
		Solver: c.Solver,
		Type:   "qubo",
		Linear: make(map[string]float64),
		Quad:   make([]quadTerm, 0, len(q)),
		Params: problemParams{NumReads: numReads},
	}
	for p, bias := range q {
		if p.IsDiagonal() {
			req.Linear[p.I] = bias
		} else {
			req.Quad = append(req.Quad, quadTerm{U: p.I, V: p.J, Bias: bias})
		}
	}
	// Stable submission order for the quadratic terms.
	sort.Slice(req.Quad, func(i, j int) bool {
		if req.Quad[i].U != req.Quad[j].U {
			return req.Quad[i].U < req.Quad[j].U
		}
		return req.Quad[i].V < req.Quad[j].V
	})

	var st problemStatus
	if err := c.post(ctx, "/problems/", req, &st); err != nil {
		return nil, err
	}

	for !terminal(st.Status) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.PollInterval):
		}
		if err := c.getJSON(ctx, "/problems/"+url.PathEscape(st.ID)+"/", &st); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, err
		}
	}

	if st.Status != StatusCompleted {
		msg := st.ErrorMessage
		if msg == "" {
			msg = "problem " + st.Status
		}
		return nil, &domain.ServiceError{Op: "solve", Message: msg}
	}
	if st.Answer == nil {
		return nil, &domain.ServiceError{Op: "solve", Message: "completed without an answer"}
	}
	return decodeAnswer(st.Answer)
}

// SolverInfo describes one remote solver.
type SolverInfo struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Qubits int    `json:"num_qubits"`
}

// Solvers lists the solvers the service offers.
func (c *Client) Solvers(ctx context.Context) ([]SolverInfo, error) {
	var out []SolverInfo
	if err := c.getJSON(ctx, "/solvers/remote/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func terminal(status string) bool {
	switch status {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// decodeAnswer converts the wire answer to a SampleSet, re-sorting by energy
// to enforce the best-first contract.
func decodeAnswer(a *answer) (domain.SampleSet, error) {
	if len(a.Solutions) != len(a.Energies) {
		return nil, &domain.ServiceError{
			Op:      "solve",
			Message: fmt.Sprintf("answer has %d solutions but %d energies", len(a.Solutions), len(a.Energies)),
		}
	}
	set := make(domain.SampleSet, 0, len(a.Solutions))
	for k, bits := range a.Solutions {
		if len(bits) != len(a.Variables) {
			return nil, &domain.ServiceError{
				Op:      "solve",
				Message: fmt.Sprintf("solution %d has %d bits for %d variables", k, len(bits), len(a.Variables)),
			}
		}
		s := domain.Sample{
			Assignment: make(map[string]int, len(a.Variables)),
			Energy:     a.Energies[k],
		}
		if k < len(a.Occurrences) {
			s.Occurrences = a.Occurrences[k]
		}
		for i, v := range a.Variables {
			s.Assignment[v] = bits[i]
		}
		set = append(set, s)
	}
	sort.SliceStable(set, func(i, j int) bool { return set[i].Energy < set[j].Energy })
	return set, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("X-Auth-Token", c.Token)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &domain.ServiceError{Op: req.Method + " " + req.URL.Path, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return &domain.ServiceError{Op: req.Method + " " + req.URL.Path, Message: resp.Status}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
