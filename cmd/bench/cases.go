// README: Benchmark cases; API contract checks for estimates and quotes plus a load run.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
	redis *redis.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	if r.cfg.RedisAddr != "" {
		r.redis = redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
		defer r.redis.Close()
	}

	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name: "Env: Redis connect (distance cache)",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.redis == nil {
					return Result{Status: StatusSkip, Note: "redis not configured"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				if err := r.redis.Ping(ctx).Err(); err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass}
			},
		},
		statusCase("Health", http.MethodGet, base+"/health", nil, http.StatusOK),
		totalCase("Estimate: default distance", base+"/api/estimates",
			map[string]any{"clothing_item": "Jeans hemming"}, 74),
		totalCase("Estimate: jacket at zero distance", base+"/api/estimates",
			map[string]any{"clothing_item": "Jacket alteration", "distance_one_way": 0}, 64),
		totalCase("Estimate: first keyword wins", base+"/api/estimates",
			map[string]any{"clothing_item": "my shirt-jacket combo", "distance_one_way": 0}, 24),
		statusCase("Estimate: negative distance rejected", http.MethodPost, base+"/api/estimates",
			map[string]any{"clothing_item": "dress", "distance_one_way": -1}, http.StatusBadRequest),
		statusCase("Quotes: review listing", http.MethodGet, base+"/api/quotes", nil, http.StatusOK),
		statusCase("Quotes: submit", http.MethodPost, base+"/api/quotes",
			map[string]any{"name": "Bench", "clothing_item": "Dress repair", "images": []string{"file:///bench.jpg"}},
			http.StatusCreated),
		statusCase("Quotes: accept sample quote", http.MethodPost, base+"/api/quotes/1/accept", nil, http.StatusOK),
		statusCase("Quotes: accept unknown quote", http.MethodPost, base+"/api/quotes/missing/accept", nil, http.StatusNotFound),
		statusCase("Estimate: overflowing distance rejected", http.MethodPost, base+"/api/estimates",
			map[string]any{"clothing_item": "dress", "distance_one_way": 1e308}, http.StatusBadRequest),
		statusCase("Quotes: submit without images rejected", http.MethodPost, base+"/api/quotes",
			map[string]any{"name": "Bench", "clothing_item": "Dress repair"}, http.StatusBadRequest),
		{
			Name: "Perf: estimate load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/api/estimates", map[string]any{
					"clothing_item":    "Dress repair",
					"distance_one_way": 3.5,
				})
			},
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, []byte, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	return resp.StatusCode, data, time.Since(start), err
}

func statusCase(name, method, url string, body any, want int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			status, _, latency, err := r.do(ctx, method, url, body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			note := fmt.Sprintf("status=%d", status)
			if status != want {
				return Result{Status: StatusFail, Latency: latency, Note: note}
			}
			return Result{Status: StatusPass, Latency: latency, Note: note}
		},
	}
}

func totalCase(name, url string, body any, wantTotal float64) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			status, data, latency, err := r.do(ctx, http.MethodPost, url, body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			if status != http.StatusOK {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			var out struct {
				Total float64 `json:"total"`
			}
			if err := json.Unmarshal(data, &out); err != nil {
				return Result{Status: StatusFail, Latency: latency, Note: err.Error()}
			}
			if math.Abs(out.Total-wantTotal) > 1e-9 {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("total=%v want=%v", out.Total, wantTotal)}
			}
			return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("total=%v", out.Total)}
		},
	}
}

func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount int64
	var mu sync.Mutex
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				status, _, _, err := r.do(ctx, http.MethodPost, url, payload)
				mu.Lock()
				if err != nil || status != http.StatusOK {
					errCount++
				} else {
					count++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if count == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount)}
}
