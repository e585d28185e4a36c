package readtime

import "testing"

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{0, "0 sec"},
		{1, "1 sec"},
		{59, "59 sec"},
		{60, "1 min"},
		{61, "2 min"},
		{119, "2 min"},
		{120, "2 min"},
		{121, "3 min"},
		{3600, "60 min"},
	}

	for _, tc := range cases {
		if got := FormatSeconds(tc.total); got != tc.want {
			t.Fatalf("FormatSeconds(%d) = %q, want %q", tc.total, got, tc.want)
		}
	}
}

func TestReadTimeMinutes(t *testing.T) {
	cases := []struct {
		seconds int
		want    int
	}{
		{0, 0},
		{1, 1},
		{59, 1},
		{60, 1},
		{61, 2},
		{120, 2},
		{121, 3},
	}

	for _, tc := range cases {
		rt := ReadTime{TotalSeconds: tc.seconds}
		if got := rt.Minutes(); got != tc.want {
			t.Fatalf("Minutes() for %d seconds = %d, want %d", tc.seconds, got, tc.want)
		}
	}
}
