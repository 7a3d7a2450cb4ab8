package main

import (
	"testing"

	"github.com/alexandramedway/odds/pkg/oddspb"
)

func TestAnalyzeReturnsFormattedSourceOnSuccess(t *testing.T) {
	resp := analyze(oddspb.AnalyzeRequest{Source: "do 1 + 2"})
	if !resp.OK {
		t.Fatalf("OK = false, want true (message: %s)", resp.Message)
	}
	if resp.Formatted == "" {
		t.Error("Formatted is empty on success")
	}
}

func TestAnalyzeReturnsDiagnosticOnFailure(t *testing.T) {
	resp := analyze(oddspb.AnalyzeRequest{Source: "do x + 1"})
	if resp.OK {
		t.Fatal("OK = true, want false for an undefined variable")
	}
	if resp.DiagnosticCode != "A001" {
		t.Errorf("DiagnosticCode = %q, want %q", resp.DiagnosticCode, "A001")
	}
	if resp.Line == 0 {
		t.Error("Line is 0, want the token's actual line")
	}
}

func TestAnalyzeHonorsExtraPrelude(t *testing.T) {
	resp := analyze(oddspb.AnalyzeRequest{Source: "do print(clamp)", Prelude: []string{"clamp"}})
	if !resp.OK {
		t.Fatalf("OK = false with prelude seeded, want true (message: %s)", resp.Message)
	}
}
