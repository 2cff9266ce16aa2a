package services

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Canelones", "canelones"},
		{"CANELONES ", "canelones"},
		{"cañelones", "canelones"},
		{"  Atlántida", "atlantida"},
		{"SANTA LUCÍA", "santa lucia"},
		{"", ""},
		{"   ", ""},
	}

	for _, c := range cases {
		if got := NormalizeKey(c.in); got != c.want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	once := NormalizeKey("Cañelones")
	twice := NormalizeKey(once)
	if once != twice {
		t.Fatalf("normalization is not idempotent: %q vs %q", once, twice)
	}
}
