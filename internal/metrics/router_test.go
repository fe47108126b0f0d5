package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/ratelimit"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func get(t *testing.T, ts *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading %s body failed: %v", path, err)
	}
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	ts := httptest.NewServer(NewRouter(RouterConfig{DisableLogging: true}))
	defer ts.Close()

	status, body := get(t, ts, "/healthz")
	if status != http.StatusOK || body != "ok" {
		t.Errorf("healthz = %d %q", status, body)
	}
}

func TestMetricsExposeRunnerCollectors(t *testing.T) {
	RecordEvents([]runner.Event{
		{Kind: runner.EventJump},
		{Kind: runner.EventCoin},
		{Kind: runner.EventCoin},
	})
	SessionOpened("tui")
	RecordRun(12, 40*time.Second)
	RecordScoreSave(nil)
	RecordTick(200 * time.Microsecond)
	SessionClosed()

	ts := httptest.NewServer(NewRouter(RouterConfig{DisableLogging: true}))
	defer ts.Close()

	status, body := get(t, ts, "/metrics")
	if status != http.StatusOK {
		t.Fatalf("metrics status = %d", status)
	}
	for _, want := range []string{
		`runner_events_total{kind="coin"}`,
		`runner_events_total{kind="jump"}`,
		`runner_sessions_total{host="tui"}`,
		`runner_score_saves_total{result="ok"}`,
		"runner_run_score_bucket",
		"runner_tick_duration_seconds_count",
		"runner_sessions_active",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

func TestRouterRateLimited(t *testing.T) {
	l := ratelimit.New(ratelimit.Config{PerSecond: 0.001, Burst: 2, CleanupInterval: time.Minute})
	defer l.Stop()

	ts := httptest.NewServer(NewRouter(RouterConfig{Limiter: l, DisableLogging: true}))
	defer ts.Close()

	for i := range 2 {
		if status, _ := get(t, ts, "/healthz"); status != http.StatusOK {
			t.Fatalf("request %d: status %d", i, status)
		}
	}
	if status, _ := get(t, ts, "/healthz"); status != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", status)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", nil, "192.0.2.1:5555", "192.0.2.1"},
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "10.0.0.1:80", "203.0.113.9"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.7 "}, "10.0.0.1:80", "198.51.100.7"},
		{"no port", nil, "192.0.2.1", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
