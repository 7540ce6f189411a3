package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestOptimizeCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"optimize"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Maximum of objective function: 35") {
		t.Fatalf("missing objective line:\n%s", out)
	}
	if !strings.Contains(out, "status   : OPTIMAL") {
		t.Fatalf("missing status line:\n%s", out)
	}
}
