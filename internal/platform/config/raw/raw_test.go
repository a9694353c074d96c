package raw

import "testing"

func TestConfGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " trustlens ")

	log := New().Prefix("LOG_")
	if got := log.Get("SERVICE", "x"); got != "trustlens" {
		t.Fatalf("Get = %q, want trustlens", got)
	}
	if got := log.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get missing = %q, want def", got)
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("B_")
	t.Setenv("B_T1", "true")
	t.Setenv("B_T2", "1")
	t.Setenv("B_T3", "YES")
	t.Setenv("B_T4", " on ")
	t.Setenv("B_F1", "false")
	t.Setenv("B_F2", "nope")

	tests := []struct {
		key  string
		def  bool
		want bool
	}{
		{"T1", false, true},
		{"T2", false, true},
		{"T3", false, true},
		{"T4", false, true},
		{"F1", true, false},
		{"F2", true, false},
		{"MISSING", true, true},
		{"MISSING", false, false},
	}
	for _, tt := range tests {
		if got := c.GetBool(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tt.key, tt.def, got, tt.want)
		}
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("N_")
	t.Setenv("N_OK", "42")
	t.Setenv("N_WS", "  7 ")
	t.Setenv("N_BAD", "12x")
	t.Setenv("N_NEG", "-5")

	tests := []struct {
		key       string
		def, want int
	}{
		{"OK", 0, 42},
		{"WS", 1, 7},
		{"BAD", 9, 9},
		{"NEG", 3, 3},
		{"MISSING", 11, 11},
	}
	for _, tt := range tests {
		if got := c.GetInt(tt.key, tt.def); got != tt.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestPrefixComposition(t *testing.T) {
	t.Setenv("CORE_SCORE_WORKERS", "8")
	c := New().Prefix("CORE_").Prefix("SCORE_")
	if got := c.GetInt("WORKERS", 1); got != 8 {
		t.Fatalf("nested prefix lookup = %d, want 8", got)
	}
}
