package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"dev build", Info{Version: "dev", Commit: "none", Date: "unknown"}, "dev (development build)"},
		{"release", Info{Version: "v0.3.0", Commit: "abc1234", Date: "2026-10-01"}, "v0.3.0 (commit: abc1234, built: 2026-10-01)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGetStamped(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	Version, Commit, Date = "v1.2.3", "deadbee", "2026-10-14"

	assert.Equal(t, Info{Version: "v1.2.3", Commit: "deadbee", Date: "2026-10-14"}, Get())
	assert.Equal(t, "v1.2.3 (commit: deadbee, built: 2026-10-14)", GetVersion())
}
