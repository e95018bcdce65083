package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestCheckHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	up := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer up.Close()
	down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer down.Close()

	status := CheckHealth(context.Background(), map[string]*redis.Client{"cache": up, "queue": down})
	if !status.Redis["cache"] {
		t.Fatalf("expected cache healthy")
	}
	if status.Redis["queue"] {
		t.Fatalf("expected queue unhealthy")
	}
	if got := GetHealthStatus(); got.CheckedAt != status.CheckedAt {
		t.Fatalf("expected stored status, got %+v", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "debug"},
		{"warn", "warn"},
		{"error", "error"},
		{"", "info"},
		{"loud", "info"},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input).String(); got != tt.want {
			t.Errorf("input=%q, got=%v, want=%v", tt.input, got, tt.want)
		}
	}
}
