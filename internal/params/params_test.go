// Copyright (c) 2025 Tracectl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package params

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"tracectl/cli/internal/errs"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		want        map[string]any
		expectError bool
	}{
		{
			name: "two pairs",
			raw:  "a=1;b=2",
			want: map[string]any{"a": "1", "b": "2"},
		},
		{
			name:        "second pair missing equals",
			raw:         "a=1;b",
			expectError: true,
		},
		{
			name: "value containing equals",
			raw:  "expr=a=b",
			want: map[string]any{"expr": "a=b"},
		},
		{
			name: "trailing semicolon tolerated",
			raw:  "a=1;",
			want: map[string]any{"a": "1"},
		},
		{
			name: "empty value",
			raw:  "a=",
			want: map[string]any{"a": ""},
		},
		{
			name:        "only separators",
			raw:         ";;",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw, "")

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errs.Is(err, errs.MalformedParameter) {
					t.Errorf("error kind = %v, want malformed_parameter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeFile(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		want        map[string]any
		expectError bool
	}{
		{
			name:    "plain json",
			file:    "p.json",
			content: `{"cpus": [0, 1], "name": "rules"}`,
			want:    map[string]any{"cpus": []any{float64(0), float64(1)}, "name": "rules"},
		},
		{
			name: "json with comments",
			file: "p.json",
			content: `{
				// filter to the first core
				"cpus": [0],
			}`,
			want: map[string]any{"cpus": []any{float64(0)}},
		},
		{
			name:    "yaml document",
			file:    "p.yaml",
			content: "name: rules\nthreshold: 5\n",
			want:    map[string]any{"name": "rules", "threshold": 5},
		},
		{
			name:        "empty document",
			file:        "p.json",
			content:     `{}`,
			expectError: true,
		},
		{
			name:        "unparseable document",
			file:        "p.json",
			content:     `not json at all`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			got, err := Decode("", path)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errs.Is(err, errs.MalformedParameter) {
					t.Errorf("error kind = %v, want malformed_parameter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The inline form and a string-valued JSON document describing the same
// parameters must be interchangeable at the call site.
func TestDecodeFormsAreInterchangeable(t *testing.T) {
	fromString, err := Decode("a=1;b=2", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "p.json")
	if err := os.WriteFile(path, []byte(`{"a": "1", "b": "2"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	fromFile, err := Decode("", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(fromString)
	b, _ := json.Marshal(fromFile)
	if string(a) != string(b) {
		t.Errorf("payloads differ: %s vs %s", a, b)
	}
}

func TestDecodeSources(t *testing.T) {
	t.Run("neither source", func(t *testing.T) {
		_, err := Decode("", "")
		if err == nil {
			t.Fatal("expected error but got none")
		}
		if !errs.Is(err, errs.MissingArgument) {
			t.Errorf("error kind = %v, want missing_argument", err)
		}
	})

	t.Run("both sources", func(t *testing.T) {
		_, err := Decode("a=1", "params.json")
		if err == nil {
			t.Fatal("expected error but got none")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Decode("", filepath.Join(t.TempDir(), "absent.json"))
		if !errs.Is(err, errs.MalformedParameter) {
			t.Errorf("error kind = %v, want malformed_parameter", err)
		}
	})
}
