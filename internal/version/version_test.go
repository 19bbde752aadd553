package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "1.2.3"},
		{"1.2", "1.2.0"},
		{"v2.0.0-rc.1", "2.0.0-rc.1"},
		{"dev", "dev"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestIsRelease(t *testing.T) {
	assert.True(t, IsRelease("v1.0.0"))
	assert.False(t, IsRelease("v1.0.0-beta"))
	assert.False(t, IsRelease("dev"))
}

func TestInfoString(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"v0.3.1", "deisrc version 0.3.1 (commit: abc123, built: 2026-01-02)"},
		{"v0.4.0-rc.1", "deisrc version 0.4.0-rc.1 (commit: abc123, built: 2026-01-02) [pre-release]"},
		{"dev", "deisrc version dev (commit: abc123, built: 2026-01-02) [pre-release]"},
	}
	for _, tt := range tests {
		i := Info{Version: tt.version, Commit: "abc123", Date: "2026-01-02"}
		assert.Equal(t, tt.want, i.String("deisrc"), tt.version)
	}
}
