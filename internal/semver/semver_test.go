package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, Version{Major: 1, Minor: 2, Patch: 3}, v)
	assert.Equal(t, "1.2.3", v.String())
	assert.Equal(t, "v1.2.3", v.Tag())
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "1.2", "v1.2.3", "1.2.3.4", "1.2.x", "1.2.3-rc1", "a.b.c"} {
		_, err := Parse(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestBump(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3}

	assert.Equal(t, "1.2.4", v.Bump(PartPatch).String())
	assert.Equal(t, "1.3.0", v.Bump(PartMinor).String())
	assert.Equal(t, "2.0.0", v.Bump(PartMajor).String())
}

func TestLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.2.3", "1.2.4", true},
		{"1.2.3", "1.3.0", true},
		{"1.9.9", "2.0.0", true},
		{"2.0.0", "1.9.9", false},
		{"1.2.3", "1.2.3", false},
	}
	for _, tt := range tests {
		a, err := Parse(tt.a)
		require.NoError(t, err)
		b, err := Parse(tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, a.Less(b), "%s < %s", tt.a, tt.b)
	}
}
