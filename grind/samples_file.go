package grind

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

type samplesFile struct {
	Samples []struct {
		Name      string    `yaml:"name"`
		Sizes     []float64 `yaml:"sizes"`
		Undersize []float64 `yaml:"undersize"`
	} `yaml:"samples"`
}

// LoadSamplesFile reads a YAML sample-set override. An unreadable or
// unparseable file is a *models.MissingInputError and fatal for the caller;
// a single invalid sample inside the file is not — it lands in the returned
// error map and the remaining samples load anyway.
func LoadSamplesFile(path string) ([]Sample, map[string]error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &models.MissingInputError{Path: path, Err: err}
	}

	var file samplesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, &models.MissingInputError{Path: path, Err: err}
	}
	if len(file.Samples) == 0 {
		return nil, nil, &models.MissingInputError{Path: path, Err: fmt.Errorf("no samples defined")}
	}

	samples := make([]Sample, 0, len(file.Samples))
	errs := map[string]error{}
	for i, raw := range file.Samples {
		name := raw.Name
		if name == "" {
			name = fmt.Sprintf("sample_%d", i+1)
		}
		s, err := NewSample(name, raw.Sizes, raw.Undersize)
		if err != nil {
			errs[name] = err
			continue
		}
		samples = append(samples, s)
	}
	return samples, errs, nil
}
