package grind

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

func TestBuiltinSamplesAreValid(t *testing.T) {
	samples := BuiltinSamples()
	require.Len(t, samples, 4)

	names := make([]string, len(samples))
	for i, s := range samples {
		names[i] = s.Name()
		assert.GreaterOrEqual(t, s.Len(), 2, s.Name())
	}
	assert.Equal(t, []string{"Ditting", "Colombini Test 1", "Colombini Test 2", "Plastic Pod Sample"}, names)
}

func TestSampleAccessorsCopy(t *testing.T) {
	s, err := NewSample("s", []float64{10, 20}, []float64{0, 100})
	require.NoError(t, err)

	sizes := s.Sizes()
	sizes[0] = 999
	assert.Equal(t, 10.0, s.Sizes()[0])
}

func TestLoadSamplesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samples.yaml")
	content := `samples:
  - name: Lab Run A
    sizes: [10, 100, 1000]
    undersize: [0, 50, 100]
  - name: Broken Run
    sizes: [10, 100, 1000]
    undersize: [0, 50]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	samples, errs, err := LoadSamplesFile(path)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "Lab Run A", samples[0].Name())

	// The broken sample is reported, not fatal for the file.
	require.Len(t, errs, 1)
	var integrity *models.DataIntegrityError
	require.True(t, errors.As(errs["Broken Run"], &integrity))
	assert.Equal(t, 3, integrity.SizesLen)
	assert.Equal(t, 2, integrity.UndersizeLen)
}

func TestLoadSamplesFileMissing(t *testing.T) {
	_, _, err := LoadSamplesFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var missing *models.MissingInputError
	assert.True(t, errors.As(err, &missing))
}
