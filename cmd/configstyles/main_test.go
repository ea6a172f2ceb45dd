package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/km-arc/go-beans/framework/config"
	"github.com/km-arc/go-beans/internal/profile"
	"github.com/km-arc/go-beans/internal/styles"
)

func testConfig(profiles ...string) *config.Config {
	return &config.Config{App: config.AppConfig{Name: "test", Env: "testing", Profiles: profiles}}
}

func TestParseFlags(t *testing.T) {
	cfg := testConfig("fn")
	require.NoError(t, parseFlags(cfg, []string{"-profiles", "jc, other", "-xml", "beans.xml"}))

	assert.Equal(t, []string{"jc", "other"}, cfg.App.Profiles)
	assert.Equal(t, "beans.xml", cfg.Resources.XMLPath)
	assert.Empty(t, cfg.Resources.PropertiesPath)
}

func TestParseFlags_KeepsConfiguredProfiles(t *testing.T) {
	cfg := testConfig("fn")
	require.NoError(t, parseFlags(cfg, nil))
	assert.Equal(t, []string{"fn"}, cfg.App.Profiles)
}

func TestParseFlags_Unknown(t *testing.T) {
	assert.Error(t, parseFlags(testConfig(), []string{"-nope"}))
}

func TestRun_EveryStyle(t *testing.T) {
	for _, st := range profile.Strategies {
		t.Run(st.Token(), func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			require.NoError(t, run(testConfig(st.Token()), zap.New(core)))

			confirmed := logs.FilterMessage("beans confirmed").All()
			require.Len(t, confirmed, 1)
			assert.Equal(t, st.Token(), confirmed[0].ContextMap()["label"])
		})
	}
}

func TestRun_NoStyleFails(t *testing.T) {
	err := run(testConfig("other"), zap.NewNop())
	assert.ErrorIs(t, err, styles.ErrBeanCount)
	assert.ErrorContains(t, err, "there should be 1 instances of DataSource, found 0")
}

func TestRun_ConflictingStylesFail(t *testing.T) {
	err := run(testConfig("jc", "xml"), zap.NewNop())
	assert.ErrorIs(t, err, profile.ErrConflictingProfiles)
}

func TestRun_PropertiesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beans.properties")
	require.NoError(t, os.WriteFile(path, []byte(
		"dataSource.class=EmbeddedDataSource\n"+
			"customerService.class=CustomerService\n"+
			"customerService.arg.0.ref=dataSource\n"+
			"customerService.arg.1.value=from-file\n"), 0o644))

	cfg := testConfig()
	require.NoError(t, parseFlags(cfg, []string{"-profiles", "pf", "-properties", path}))

	core, logs := observer.New(zap.InfoLevel)
	require.NoError(t, run(cfg, zap.New(core)))
	assert.Equal(t, 1, logs.FilterMessage("config style is 'from-file'").Len())
}

func TestRun_MissingXMLFile(t *testing.T) {
	cfg := testConfig("xml")
	cfg.Resources.XMLPath = filepath.Join(t.TempDir(), "missing.xml")
	assert.ErrorIs(t, run(cfg, zap.NewNop()), os.ErrNotExist)
}
