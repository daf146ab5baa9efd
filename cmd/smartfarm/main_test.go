package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestScreensCommandListsRegistry(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"screens"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Fields(out.String())
	if len(lines) != 10 || lines[0] != "onboarding" || lines[4] != "sensorDetails" {
		t.Fatalf("screens = %v", lines)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "smartfarm ") {
		t.Fatalf("version output = %q", out.String())
	}
}

func TestLoadDataDefaultsToEmbedded(t *testing.T) {
	data, err := loadData("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(data.Sensors) == 0 {
		t.Fatal("expected embedded sensors")
	}
}
