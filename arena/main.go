package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// arena drives the backend through its HTTP API: it switches the game
// to AI-vs-AI, plays a batch of rounds, and reports the tally. Useful
// for sanity-checking AI changes without a front end.
type arena struct {
	client       *http.Client
	baseURL      string
	pollInterval time.Duration
	logger       *log.Logger
	rounds       int
	gameTimeout  time.Duration
}

type statusResponse struct {
	Status string `json:"status"`
	Winner int    `json:"winner"`
	Scores struct {
		CrossWins   int `json:"cross_wins"`
		NoughtWins  int `json:"nought_wins"`
		Draws       int `json:"draws"`
		GamesPlayed int `json:"games_played"`
	} `json:"scores"`
	History []json.RawMessage `json:"history"`
	Config  map[string]any    `json:"config"`
}

func main() {
	logger := log.New(os.Stdout, "", 0)

	a := &arena{
		client:       &http.Client{Timeout: 10 * time.Second},
		baseURL:      getenv("BACKEND_URL", "http://localhost:8080"),
		pollInterval: time.Duration(getenvInt("POLL_INTERVAL_MS", 200)) * time.Millisecond,
		logger:       logger,
		rounds:       getenvInt("ARENA_ROUNDS", 20),
		gameTimeout:  time.Duration(getenvInt("ARENA_GAME_TIMEOUT_SEC", 60)) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.waitForBackend(ctx); err != nil {
		logger.Fatalf("backend unreachable: %v", err)
	}
	if err := a.run(ctx); err != nil {
		logger.Fatalf("arena stopped: %v", err)
	}
}

func (a *arena) run(ctx context.Context) error {
	// Drop the presentation delay so rounds finish quickly.
	config := map[string]any{"ai_move_delay_ms": 0, "ai_search_depth": 4, "ai_search_empty_limit": 16, "ai_strategic_min_lines": 4, "ai_enable_fork_checks": true}
	if err := a.postJSON("/api/settings", map[string]any{"config": config}, nil); err != nil {
		return err
	}

	crossWins, noughtWins, draws := 0, 0, 0
	for round := 1; round <= a.rounds; round++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		payload := map[string]any{
			"settings": map[string]any{"mode": "ai_vs_ai", "human_player": 1},
		}
		if err := a.postJSON("/api/start", payload, nil); err != nil {
			return err
		}
		status, err := a.waitForResult(ctx)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		switch status.Winner {
		case 1:
			crossWins++
		case 2:
			noughtWins++
		default:
			draws++
		}
		a.logf("round %d/%d: %s after %d moves (cross %d / nought %d / draw %d)",
			round, a.rounds, status.Status, len(status.History), crossWins, noughtWins, draws)
	}
	a.logf("done: cross %d, nought %d, draws %d over %d rounds", crossWins, noughtWins, draws, a.rounds)
	return nil
}

func (a *arena) waitForResult(ctx context.Context) (statusResponse, error) {
	deadline := time.Now().Add(a.gameTimeout)
	for {
		var status statusResponse
		if err := a.getJSON("/api/status", &status); err != nil {
			return statusResponse{}, err
		}
		if status.Status != "running" {
			return status, nil
		}
		if time.Now().After(deadline) {
			return statusResponse{}, fmt.Errorf("game did not finish within %s", a.gameTimeout)
		}
		if !sleepWithContext(ctx, a.pollInterval) {
			return statusResponse{}, ctx.Err()
		}
	}
}

func (a *arena) waitForBackend(ctx context.Context) error {
	for attempt := 0; attempt < 60; attempt++ {
		if err := a.ping(); err == nil {
			return nil
		}
		if !sleepWithContext(ctx, 1*time.Second) {
			return ctx.Err()
		}
	}
	return fmt.Errorf("timeout after 60s")
}

func (a *arena) ping() error {
	req, err := http.NewRequest(http.MethodGet, a.baseURL+"/api/ping", nil)
	if err != nil {
		return err
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping status %d", resp.StatusCode)
	}
	return nil
}

func (a *arena) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("GET %s -> %d: %s", path, resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (a *arena) postJSON(path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("POST %s -> %d: %s", path, resp.StatusCode, string(respBody))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (a *arena) logf(format string, args ...any) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	a.logger.Printf("[%s] %s", ts, fmt.Sprintf(format, args...))
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var parsed int
	if _, err := fmt.Sscanf(value, "%d", &parsed); err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
