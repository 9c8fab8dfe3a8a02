package settings

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Profiles is a named set of Settings loaded from YAML.
type Profiles map[string]Settings

// profileFile is the on-disk layout:
//
//	profiles:
//	  ci:
//	    max_iterations: 5000
//	  dev:
//	    max_iterations: 100
//	    seed: 42
type profileFile struct {
	Profiles map[string]yaml.Node `yaml:"profiles"`
}

// LoadProfiles decodes named profiles from r. Each profile starts from
// Default, so it only needs to list the knobs it changes.
func LoadProfiles(r io.Reader) (Profiles, error) {
	var file profileFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return Profiles{}, nil
		}
		return nil, fmt.Errorf("yaml decode: %w", err)
	}

	out := make(Profiles, len(file.Profiles))
	for name, node := range file.Profiles {
		s := Default()
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
}

// Get returns the named profile.
func (p Profiles) Get(name string) (Settings, error) {
	s, ok := p[name]
	if !ok {
		return Settings{}, fmt.Errorf("profile %q: %w", name, ErrUnknownProfile)
	}
	return s, nil
}

// Names returns the profile names in sorted order.
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
