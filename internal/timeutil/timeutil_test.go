package timeutil

import (
	"testing"
	"time"
)

func TestFormatMatchDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2015, 2, 10, 23, 0, 0, 0, loc)
	if got := FormatMatchDate(value); got != "10.02.2015" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestResolveMatchDate(t *testing.T) {
	now := time.Date(2015, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := map[string]string{
		"today":      "01.03.2015",
		" Yesterday": "28.02.2015",
		"tomorrow":   "02.03.2015",
		"10.02.2015": "10.02.2015",
		"":           "",
		"not-a-date": "not-a-date",
	}
	for in, want := range cases {
		if got := ResolveMatchDate(in, now); got != want {
			t.Fatalf("ResolveMatchDate(%q) = %q, want %q", in, got, want)
		}
	}
}
