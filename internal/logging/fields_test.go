package logging

import (
	"log/slog"
	"testing"
)

func TestWithCommon(t *testing.T) {
	existing := slog.String("existing", "x")
	cases := []struct {
		name     string
		service  string
		version  string
		wantKeys []string
	}{
		{"both", "football-api", "v1", []string{"existing", FieldService, FieldVersion}},
		{"service only", "football-api", "", []string{"existing", FieldService}},
		{"version only", "", "v1", []string{"existing", FieldVersion}},
		{"neither", "", "", []string{"existing"}},
	}

	for _, tc := range cases {
		attrs := WithCommon([]slog.Attr{existing}, tc.service, tc.version)
		if len(attrs) != len(tc.wantKeys) {
			t.Fatalf("%s: expected %d attrs, got %+v", tc.name, len(tc.wantKeys), attrs)
		}
		for i, key := range tc.wantKeys {
			if attrs[i].Key != key {
				t.Fatalf("%s: attr %d expected key %s, got %s", tc.name, i, key, attrs[i].Key)
			}
		}
	}
}

func TestFieldKeysAreDistinct(t *testing.T) {
	keys := []string{
		FieldService, FieldVersion, FieldAction, FieldErrorKind, FieldRequestID,
		FieldPath, FieldMethod, FieldStatusCode, FieldCompID, FieldMatchID,
		FieldDurationMS, FieldError,
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate field key %q", k)
		}
		seen[k] = true
	}
}
