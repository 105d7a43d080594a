package buildinfo

import "testing"

func TestSummary(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = origVersion, origCommit, origDate })

	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"defaults", "dev", "", "", "dev"},
		{"empty version falls back", "", "", "", "dev"},
		{"release", "1.2.0", "", "", "1.2.0"},
		{"commit truncated", "1.2.0", "0123456789abcdef", "", "1.2.0 (commit=0123456)"},
		{"commit and date", "1.2.0", "0123456", "2026-08-29", "1.2.0 (commit=0123456, date=2026-08-29)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			if got := Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
