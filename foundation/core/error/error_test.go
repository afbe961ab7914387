// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code lookup through the
//              standard errors package, and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-17 v0.2.0: Chain lookups through fmt.Errorf wrapping

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("boom"),
			message: "loading table",
			wantMsg: "loading table: boom",
		},
		{
			name:    "wrap structured error",
			err:     New("no such formula").WithCode(CodeNotFound),
			message: "catalog lookup",
			wantMsg: "catalog lookup: no such formula",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsCodeAndDetails(t *testing.T) {
	inner := New("duplicate name").
		WithCode(CodeDuplicateEntry).
		WithDetail("name", "water")
	outer := Wrap(inner, "adding formula")

	if outer.Code() != CodeDuplicateEntry {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeDuplicateEntry)
	}
	if outer.Details()["name"] != "water" {
		t.Errorf("Details()[name] = %v, want water", outer.Details()["name"])
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	err := New("db gone").WithCode(CodeDatabaseError)
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}

	explicit := New("db gone").WithSeverity(SeverityLow).WithCode(CodeDatabaseError)
	if explicit.Severity() != SeverityLow {
		t.Errorf("explicit Severity() = %v, want %v", explicit.Severity(), SeverityLow)
	}
}

func TestHasCodeThroughStandardWrapping(t *testing.T) {
	base := New("bad formula").WithCode(CodeFormulaSyntax)
	chained := fmt.Errorf("command failed: %w", Wrap(base, "parse").WithCode(CodeInvalidInput))

	if !HasCode(chained, CodeFormulaSyntax) {
		t.Error("HasCode() should find the inner code")
	}
	if !HasCode(chained, CodeInvalidInput) {
		t.Error("HasCode() should find the outer code")
	}
	if HasCode(chained, CodeDatabaseError) {
		t.Error("HasCode() found a code that is not in the chain")
	}
	if GetCode(chained) != CodeInvalidInput {
		t.Errorf("GetCode() = %v, want %v", GetCode(chained), CodeInvalidInput)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestStringIncludesSortedDetails(t *testing.T) {
	err := New("invalid table").
		WithCode(CodeInvalidTable).
		WithOperation("elements.NewTable").
		WithDetail("symbol", "Xx").
		WithDetail("index", 3)

	s := err.String()
	for _, want := range []string{
		"Error: invalid table",
		"Code: INVALID_TABLE",
		"Operation: elements.NewTable",
		"Details: {index=3, symbol=Xx}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("disk full"), "saving catalog").
		WithCode(CodeDatabaseError).
		WithOperation("catalog.Add").
		WithDetail("path", "/tmp/catalog.db")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("json.Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uErr)
	}

	if decoded["code"] != "DATABASE_ERROR" {
		t.Errorf("code = %v, want DATABASE_ERROR", decoded["code"])
	}
	if decoded["cause"] != "disk full" {
		t.Errorf("cause = %v, want disk full", decoded["cause"])
	}
	if decoded["operation"] != "catalog.Add" {
		t.Errorf("operation = %v, want catalog.Add", decoded["operation"])
	}
}
