package application

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want Status
		ok   bool
	}{
		{"applied", StatusApplied, true},
		{"  Shortlisted ", StatusShortlisted, true},
		{"SELECTED", StatusSelected, true},
		{"rejected", StatusRejected, true},
		{"interview", Status("interview"), false},
		{"", Status(""), false},
	}
	for _, tc := range cases {
		got, ok := ParseStatus(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[Status][]Status{
		StatusApplied:     {StatusShortlisted, StatusRejected},
		StatusShortlisted: {StatusSelected, StatusRejected},
	}
	all := []Status{StatusApplied, StatusShortlisted, StatusSelected, StatusRejected}

	for _, from := range all {
		for _, to := range all {
			want := from == to
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			if got := CanTransition(from, to); got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if !StatusSelected.IsTerminal() || !StatusRejected.IsTerminal() {
		t.Fatalf("selected and rejected must be terminal")
	}
	if StatusApplied.IsTerminal() || StatusShortlisted.IsTerminal() {
		t.Fatalf("applied and shortlisted must not be terminal")
	}
}
