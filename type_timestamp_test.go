package stockstat

import "testing"

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name  string
		in    string
		want  string // canonical form, "" for unknown
		isErr bool
	}{
		{name: "full layout", in: "2024-10-21 14:47:28", want: "2024-10-21 14:47:28"},
		{name: "no seconds", in: "2024-10-21 14:47", want: "2024-10-21 14:47:00"},
		{name: "compact time", in: "2024-10-21 144728", want: "2024-10-21 14:47:28"},
		{name: "compact date and time", in: "20241021 144728", want: "2024-10-21 14:47:28"},
		{name: "blank is unknown", in: "   ", want: ""},
		{name: "empty is unknown", in: "", want: ""},
		{name: "garbage", in: "yesterday", isErr: true},
		{name: "date only", in: "2024-10-21", isErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tc.in)
			if tc.isErr {
				if err == nil {
					t.Fatalf("ParseTimestamp(%q) accepted, want error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := ts.String(); got != tc.want {
				t.Errorf("ParseTimestamp(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTimestampCompare_UnknownSortsLast(t *testing.T) {
	known := mustTS(t, "2024-10-21 14:47:28")
	later := mustTS(t, "2024-10-22 09:00:00")
	var unknown Timestamp

	if got := known.Compare(later); got != -1 {
		t.Errorf("known.Compare(later) = %d, want -1", got)
	}
	if got := known.Compare(unknown); got != -1 {
		t.Errorf("known.Compare(unknown) = %d, want -1", got)
	}
	if got := unknown.Compare(known); got != 1 {
		t.Errorf("unknown.Compare(known) = %d, want 1", got)
	}
	if got := unknown.Compare(Timestamp{}); got != 0 {
		t.Errorf("unknown.Compare(unknown) = %d, want 0", got)
	}
}
