package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("../conf/scenario.yaml")
	require.NoError(t, err)
	assert.Equal(t, "demo", s.Name)
	require.Len(t, s.Spans, 2)
	assert.Equal(t, 800.0, s.Spans[1].Current)
	assert.Equal(t, 0.0286, s.Spans[1].Diameter)
	assert.Equal(t, 1200.0, s.Spans[1].Altitude)
}

func TestLoadScenarioErrors(t *testing.T) {
	_, err := LoadScenario("missing.yaml")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: empty\nspans: []\n"), 0o644))
	_, err = LoadScenario(path)
	assert.ErrorIs(t, err, ErrEmptyScenario)

	require.NoError(t, os.WriteFile(path, []byte("spans: [\n"), 0o644))
	_, err = LoadScenario(path)
	assert.Error(t, err)
}
