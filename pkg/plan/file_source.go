package plan

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSource implements Source by reading a YAML catalog file.
//
// Expected layout, one entry per tier:
//
//	tiers:
//	  free:
//	    quota: 10
//	    cache_tier: none
//	    advanced_options: limited
//	    template_access: core
//	    history_retention_days: 7
type fileSource struct {
	path string
}

// NewFileSource returns a Source that loads tier configs from a YAML file.
// The file is read on every Load call so a catalog rebuild picks up edits.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

type catalogFile struct {
	Tiers map[string]Config `yaml:"tiers"`
}

// Load reads and parses the catalog file. Unknown tier names are rejected
// here rather than at validation so the error points at the file.
func (s *fileSource) Load(ctx context.Context) (map[Tier]Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(ErrFailedToLoadCatalog, err)
	}

	configs := make(map[Tier]Config, len(file.Tiers))
	for name, cfg := range file.Tiers {
		tier, err := ParseTier(name)
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadCatalog,
				fmt.Errorf("%s: unknown tier %q", s.path, name))
		}
		configs[tier] = cfg
	}

	return configs, nil
}
