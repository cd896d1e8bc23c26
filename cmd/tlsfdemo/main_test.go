package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunDemo_PrintsFinalUsage(t *testing.T) {
	var out bytes.Buffer
	cfg := demoConfig{poolSize: 64 * 1024, allocSize: 256}

	if err := runDemo(cfg, &out); err != nil {
		t.Fatalf("runDemo() error = %v", err)
	}

	if !strings.Contains(out.String(), "final: used=") {
		t.Fatalf("output missing final usage line:\n%s", out.String())
	}
}

func TestRunDemo_VerboseLogsEachStep(t *testing.T) {
	var out bytes.Buffer
	cfg := demoConfig{poolSize: 64 * 1024, allocSize: 256, verbose: true}

	if err := runDemo(cfg, &out); err != nil {
		t.Fatalf("runDemo() error = %v", err)
	}

	for _, want := range []string{"init:", "allocate #0:", "free #0:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunDemo_AddsExtraArea(t *testing.T) {
	var out bytes.Buffer
	cfg := demoConfig{poolSize: 64 * 1024, extraSize: 16 * 1024, allocSize: 256, verbose: true}

	if err := runDemo(cfg, &out); err != nil {
		t.Fatalf("runDemo() error = %v", err)
	}

	if !strings.Contains(out.String(), "add-area:") {
		t.Fatalf("output missing add-area line:\n%s", out.String())
	}
}

func TestRunDemo_RejectsUndersizedPool(t *testing.T) {
	var out bytes.Buffer
	cfg := demoConfig{poolSize: 8, allocSize: 256}

	if err := runDemo(cfg, &out); err == nil {
		t.Fatal("expected error for an undersized pool region")
	}
}
