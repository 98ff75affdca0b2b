package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimDeterministic(t *testing.T) {
	args := []string{"sim", "--duration", "2s", "--seed", "5", "--field", "dense", "--fps", "60", "--log-level", "error"}

	first, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("sim error = %v", err)
	}
	second, err := runCLI(t, args...)
	if err != nil {
		t.Fatalf("sim error = %v", err)
	}

	if first != second {
		t.Errorf("sim output differs:\n%s\nvs\n%s", first, second)
	}
	if !strings.Contains(first, "ticks:     120") {
		t.Errorf("unexpected summary:\n%s", first)
	}
}

func TestConfigPrintsYAML(t *testing.T) {
	out, err := runCLI(t, "config", "--field", "sparse", "--check=false")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	if !strings.Contains(out, "kill_reward:") || !strings.Contains(out, "count: 20") {
		t.Errorf("unexpected config output:\n%s", out)
	}
}

func TestRejectsUnknownPreset(t *testing.T) {
	if _, err := runCLI(t, "config", "--check", "--field", "crowded"); err == nil {
		t.Error("unknown preset accepted")
	}
}

func TestRejectsBadFPS(t *testing.T) {
	if _, err := runCLI(t, "sim", "--fps", "0", "--field", "normal"); err == nil {
		t.Error("zero fps accepted")
	}
}
