package version

import "testing"

func TestString(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version, GitCommit, BuildDate = "dev", "unknown", "unknown"
	if got := String(); got != "dev" {
		t.Errorf("String failed: expected dev, got %q", got)
	}

	Version, GitCommit, BuildDate = "v1.0.0", "abc123", "2026-10-01"
	expected := "v1.0.0 (commit abc123, built 2026-10-01)"
	if got := String(); got != expected {
		t.Errorf("String failed: expected %q, got %q", expected, got)
	}
}
