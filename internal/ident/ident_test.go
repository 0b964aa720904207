package ident

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		raw     string
		source  string
		localID string
	}{
		{"A|1", "A", "1"},
		{"CRM|cust-42", "CRM", "cust-42"},
		{"X", "", "X"},
		{"", "", ""},
		{"|9", "", "9"},
		{"A|", "A", ""},
		{"A|1|2", "A", "1|2"},
		{"||", "", "|"},
	}
	for _, c := range cases {
		source, localID := Parse(c.raw)
		if source != c.source || localID != c.localID {
			t.Errorf("Parse(%q) = (%q, %q), want (%q, %q)",
				c.raw, source, localID, c.source, c.localID)
		}
	}
}

func TestJoinRoundTrip(t *testing.T) {
	for _, raw := range []string{"A|1", "X", "", "A|1|2", "A|"} {
		source, localID := Parse(raw)
		if got := Join(source, localID); got != raw {
			t.Errorf("Join(Parse(%q)) = %q, want %q", raw, got, raw)
		}
	}
}

func TestJoinEmptySource(t *testing.T) {
	if got := Join("", "42"); got != "42" {
		t.Errorf("Join with empty source = %q, want %q", got, "42")
	}
}
