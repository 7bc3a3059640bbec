package util_test

import (
	"encoding/json"
	"testing"
	"time"

	util "github.com/habitloop/habitloop-lambda/internal/utils"
)

func TestStartOfWeek(t *testing.T) {
	cases := map[string]string{
		"2025-01-06": "2025-01-06", // Monday maps to itself
		"2025-01-08": "2025-01-06",
		"2025-01-12": "2025-01-06", // Sunday belongs to the preceding Monday
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			parsed, err := time.Parse("2006-01-02", in)
			if err != nil {
				t.Fatalf("failed to parse fixture date: %v", err)
			}
			got := util.NewDateOnly(parsed).StartOfWeek().String()
			if got != want {
				t.Errorf("StartOfWeek(%s) = %s, want %s", in, got, want)
			}
		})
	}
}

func TestDateOnlyJSON(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		d := util.NewDateOnly(time.Date(2025, 3, 14, 17, 30, 0, 0, time.UTC))

		b, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(b) != `"2025-03-14"` {
			t.Errorf("Marshal produced %s, want %q", b, "2025-03-14")
		}

		var back util.DateOnly
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if !back.Equal(d) {
			t.Errorf("round trip mismatch: got %s, want %s", back, d)
		}
	})

	t.Run("ZeroMarshalsNull", func(t *testing.T) {
		var d util.DateOnly
		b, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if string(b) != "null" {
			t.Errorf("zero date marshaled to %s, want null", b)
		}
	})
}
