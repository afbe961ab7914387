package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewChecker(t *testing.T) {
	checker := NewChecker("table", func(ctx context.Context) CheckResult {
		return Healthy("118 elements", nil)
	})

	if checker.Name() != "table" {
		t.Errorf("Name() = %v, want table", checker.Name())
	}

	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", result.Status)
	}
	if result.Message != "118 elements" {
		t.Errorf("Message = %v", result.Message)
	}
}

func TestRegistry_Check(t *testing.T) {
	registry := NewRegistry("chemformula", "0.3.0")
	registry.RegisterFunc("elements", func(ctx context.Context) CheckResult {
		return Healthy("ok", nil)
	})
	registry.RegisterFunc("catalog", func(ctx context.Context) CheckResult {
		return CheckResult{Message: "no status set"}
	})

	report := registry.Check(context.Background())

	if report.App != "chemformula" || report.Version != "0.3.0" {
		t.Errorf("report = %+v", report)
	}
	if report.Status != StatusHealthy || !report.Healthy() {
		t.Errorf("Status = %v, want healthy", report.Status)
	}
	if len(report.Checks) != 2 {
		t.Fatalf("len(Checks) = %d, want 2", len(report.Checks))
	}
	// sorted by name, names filled in
	if report.Checks[0].Name != "catalog" || report.Checks[1].Name != "elements" {
		t.Errorf("order = %s, %s", report.Checks[0].Name, report.Checks[1].Name)
	}
	if report.Checks[0].Status != StatusHealthy {
		t.Errorf("empty status should default to healthy, got %v", report.Checks[0].Status)
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []CheckResult
		expected Status
		healthy  bool
	}{
		{"all healthy", []CheckResult{Healthy("", nil), Healthy("", nil)}, StatusHealthy, true},
		{"degraded", []CheckResult{Healthy("", nil), Degraded("partial table", nil)}, StatusDegraded, true},
		{"unhealthy wins", []CheckResult{Degraded("", nil), Unhealthy(errors.New("db locked"))}, StatusUnhealthy, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("chemformula", "0.3.0")
			for i, result := range tt.statuses {
				result := result
				registry.RegisterFunc(string(rune('a'+i)), func(ctx context.Context) CheckResult {
					return result
				})
			}

			report := registry.Check(context.Background())
			if report.Status != tt.expected {
				t.Errorf("Status = %v, want %v", report.Status, tt.expected)
			}
			if report.Healthy() != tt.healthy {
				t.Errorf("Healthy() = %v, want %v", report.Healthy(), tt.healthy)
			}
		})
	}
}

func TestRegistry_Replace(t *testing.T) {
	registry := NewRegistry("chemformula", "0.3.0")
	registry.RegisterFunc("config", func(ctx context.Context) CheckResult {
		return Unhealthy(errors.New("first"))
	})
	registry.RegisterFunc("config", func(ctx context.Context) CheckResult {
		return Healthy("second", nil)
	})

	report := registry.Check(context.Background())
	if len(report.Checks) != 1 || report.Checks[0].Message != "second" {
		t.Errorf("Checks = %+v", report.Checks)
	}
}

func TestRegistry_CheckWithTimeout(t *testing.T) {
	registry := NewRegistry("chemformula", "0.3.0")
	registry.RegisterFunc("slow", func(ctx context.Context) CheckResult {
		select {
		case <-ctx.Done():
			return Unhealthy(ctx.Err())
		case <-time.After(time.Second):
			return Healthy("finished", nil)
		}
	})

	report := registry.CheckWithTimeout(20 * time.Millisecond)
	if report.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", report.Status)
	}
}

func TestRegistry_ConcurrentChecks(t *testing.T) {
	registry := NewRegistry("chemformula", "0.3.0")

	var running, maxRunning int32
	for _, name := range []string{"a", "b", "c", "d"} {
		registry.RegisterFunc(name, func(ctx context.Context) CheckResult {
			n := atomic.AddInt32(&running, 1)
			for {
				m := atomic.LoadInt32(&maxRunning)
				if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
					break
				}
			}
			time.Sleep(30 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return Healthy("", nil)
		})
	}

	report := registry.Check(context.Background())
	if len(report.Checks) != 4 {
		t.Fatalf("len(Checks) = %d, want 4", len(report.Checks))
	}
	if atomic.LoadInt32(&maxRunning) < 2 {
		t.Errorf("checks did not run concurrently (max %d)", maxRunning)
	}
	for _, c := range report.Checks {
		if c.Duration <= 0 {
			t.Errorf("%s: Duration not recorded", c.Name)
		}
	}
}

func TestReport_String(t *testing.T) {
	report := &Report{App: "chemformula", Version: "0.3.0", Status: StatusDegraded, Checks: make([]CheckResult, 3)}
	if got := report.String(); got != "chemformula 0.3.0: degraded (3 checks)" {
		t.Errorf("String() = %q", got)
	}
}
