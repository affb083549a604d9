package props

import (
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// LoadDataset decodes YAML dataset. Unknown fields are rejected so typos in
// hand written datasets do not silently drop information. Returned dataset
// is not validated, New does that.
func LoadDataset(r io.Reader) (Dataset, error) {
	var ds Dataset

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, errors.New("dataset is empty")
		}
		return Dataset{}, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if len(ds.Properties) == 0 {
		return Dataset{}, errors.New("dataset has no properties")
	}
	return ds, nil
}

// LoadDatasetFile reads YAML dataset from the file at the given path.
func LoadDatasetFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("unable to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := LoadDataset(f)
	if err != nil {
		return Dataset{}, fmt.Errorf("unable to load dataset from '%s': %w", path, err)
	}
	return ds, nil
}

// MarshalDataset encodes dataset as YAML suitable for LoadDataset.
func MarshalDataset(ds Dataset) ([]byte, error) {
	data, err := yaml.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dataset to yaml: %w", err)
	}
	return data, nil
}
