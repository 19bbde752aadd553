package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Tiers(t *testing.T) {
	names := []string{"foobar", "car", "bar"}

	tests := []struct {
		query string
		want  string
		tier  Tier
	}{
		{query: "ar", want: "bar", tier: TierPattern},
		{query: "foo", want: "foobar", tier: TierPrefix},
		{query: "foobar", want: "foobar", tier: TierExact},
		{query: "c", want: "car", tier: TierPrefix},
		{query: "b.r", want: "bar", tier: TierPattern},
		{query: "^f", want: "foobar", tier: TierPattern},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, tier, err := ResolveTier(tt.query, names)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestResolve_ExactBeatsPrefix(t *testing.T) {
	got, err := Resolve("work", []string{"workshop", "work"})
	require.NoError(t, err)
	assert.Equal(t, "work", got)
}

func TestResolve_PrefixBeatsEarlierPattern(t *testing.T) {
	// "aprod" sorts first and contains "prod", but "prod-eu" starts with it.
	got, err := Resolve("prod", []string{"prod-eu", "aprod"})
	require.NoError(t, err)
	assert.Equal(t, "prod-eu", got)
}

func TestResolve_NoMatch(t *testing.T) {
	_, err := Resolve("zzz", []string{"bar", "car"})
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Resolve("", []string{"bar"})
	assert.ErrorIs(t, err, ErrNoMatch)

	_, err = Resolve("bar", nil)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolve_InvalidPatternMatchedLiterally(t *testing.T) {
	got, err := Resolve("a(b", []string{"xa(by", "zzz"})
	require.NoError(t, err)
	assert.Equal(t, "xa(by", got)

	_, err = Resolve("[", []string{"bar"})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	names := []string{"foobar", "car", "bar"}
	_, _ = Resolve("ar", names)
	assert.Equal(t, []string{"foobar", "car", "bar"}, names)
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "exact", TierExact.String())
	assert.Equal(t, "prefix", TierPrefix.String())
	assert.Equal(t, "pattern", TierPattern.String())
	assert.Equal(t, "none", TierNone.String())
}
