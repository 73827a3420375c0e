package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string        `json:"logLevel,omitempty"`
	Workers  int           `json:"workers,omitempty"`
	Output   *ConfigOutput `json:"output,omitempty"`
	Jobs     []*Job        `json:"jobs,omitempty"`
}

type ConfigOutput struct {
	// File receives the results as JSON; empty means stdout.
	File string `json:"file,omitempty"`
	// Compact writes one line instead of indented JSON.
	Compact bool `json:"compact,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c := new(Config)
	d := json.NewDecoder(f)
	d.DisallowUnknownFields()
	if err := d.Decode(c); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if len(c.Jobs) == 0 {
		return errors.New("no job configured")
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.Output == nil {
		c.Output = new(ConfigOutput)
	}
	names := make(map[string]bool, len(c.Jobs))
	for i, j := range c.Jobs {
		if j == nil {
			return errors.Errorf("job %d is empty", i)
		}
		if j.Name == "" {
			return errors.Errorf("job %d has no name", i)
		}
		if names[j.Name] {
			return errors.Errorf("duplicate job %s", j.Name)
		}
		names[j.Name] = true
		if !j.Kind.Valid() {
			return errors.Errorf("job %s has unknown kind %q", j.Name, j.Kind)
		}
		if j.Count < 0 {
			return errors.Errorf("job %s has negative count %d", j.Name, j.Count)
		}
		if j.Kind == JobKindTiles && (j.Columns <= 0 || j.Rows <= 0) {
			return errors.Errorf("job %s needs a positive tile grid, got %dx%d", j.Name, j.Columns, j.Rows)
		}
	}
	return nil
}

var DefaultConfig = &Config{
	LogLevel: "info",
	Workers:  4,
	Output:   &ConfigOutput{},
	Jobs: []*Job{
		{Name: "doubles", Kind: JobKindDoubles, Seed: "{{ SEED }}", Count: 5},
		{Name: "chapter", Kind: JobKindShuffle, Seed: "{{ SEED }}", Items: []string{"page-1", "page-2", "page-3", "page-4"}},
		{Name: "order", Kind: JobKindPerm, Seed: "{{ SEED }}", Count: 10},
		{Name: "page", Kind: JobKindTiles, Seed: "{{ SEED }}", Columns: 4, Rows: 4, Width: 800, Height: 1200},
	},
}
