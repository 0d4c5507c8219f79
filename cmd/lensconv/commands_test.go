package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"lensconv/config"
	"lensconv/state"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t)
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	env.Cfg = cfg
	return ctx
}

func TestDumpConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"default", []string{"--default"}},
		{"effective", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := filepath.Join(t.TempDir(), "out.yaml")
			args := append([]string{"dumpconfig"}, tt.args...)
			args = append(args, dst, "ignored")

			if err := dumpConfigCommand().Run(testContext(t), args); err != nil {
				t.Fatalf("dumpconfig: %v", err)
			}
			data, err := os.ReadFile(dst)
			if err != nil {
				t.Fatalf("read result: %v", err)
			}
			if !strings.Contains(string(data), "publishers") {
				t.Fatalf("unexpected configuration:\n%s", data)
			}
		})
	}
}

func TestDumpConfigBadDestination(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "missing", "out.yaml")
	if err := dumpConfigCommand().Run(testContext(t), []string{"dumpconfig", dst}); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestNewApp(t *testing.T) {
	app := newApp()
	names := map[string]bool{}
	for _, c := range app.Commands {
		names[c.Name] = true
	}
	for _, want := range []string{"convert", "dumpconfig"} {
		if !names[want] {
			t.Fatalf("command %q missing", want)
		}
	}
	if app.Before == nil || app.After == nil {
		t.Fatalf("environment hooks are not installed")
	}
}
