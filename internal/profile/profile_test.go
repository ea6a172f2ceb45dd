package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-beans/internal/profile"
)

func TestSelect_SingleToken(t *testing.T) {
	tests := []struct {
		token string
		want  profile.Strategy
	}{
		{"pf", profile.PropertiesFile},
		{"jc", profile.JavaConfig},
		{"xml", profile.XMLConfig},
		{"cs", profile.ComponentScan},
		{"fn", profile.Functional},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok, err := profile.Select(profile.NewSet(tt.token, "unrelated"))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.token, got.Token())
		})
	}
}

func TestSelect_None(t *testing.T) {
	for _, set := range []profile.Set{profile.NewSet(), profile.NewSet("dev", "local")} {
		_, ok, err := profile.Select(set)
		require.NoError(t, err)
		assert.False(t, ok, "set %s", set)
	}
}

func TestSelect_Conflict(t *testing.T) {
	_, ok, err := profile.Select(profile.NewSet("xml", "jc"))
	require.ErrorIs(t, err, profile.ErrConflictingProfiles)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "jc, xml")
}

func TestNewSet_Normalises(t *testing.T) {
	s := profile.NewSet(" jc ", "", "jc", "a")
	assert.Equal(t, []string{"a", "jc"}, s.Names())
	assert.True(t, s.Active("jc"))
	assert.False(t, s.Active(" jc "))
	assert.Equal(t, "[a,jc]", s.String())
}

func TestParseStrategy(t *testing.T) {
	for _, st := range profile.Strategies {
		got, err := profile.ParseStrategy(st.Token())
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := profile.ParseStrategy("yaml")
	assert.ErrorIs(t, err, profile.ErrUnknownStrategy)
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "component scan", profile.ComponentScan.String())
	assert.Equal(t, "Strategy(99)", profile.Strategy(99).String())
}
