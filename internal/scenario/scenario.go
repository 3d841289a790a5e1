// Package scenario loads layout scenarios from YAML and runs them through the
// flow engine.
//
// A scenario describes a container, a layout configuration, the items to
// place and an optional list of container resizes. Running it produces one
// frame per layout pass.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rupor-github/gencfg"
	"gopkg.in/yaml.v3"

	flow "github.com/grindlemire/go-flow"
)

//go:embed scenario.yaml.tmpl
var defaultsTmpl []byte

// Version is the only scenario format version understood.
const Version = 1

type Extent struct {
	Width  int `yaml:"width" json:"width" validate:"gte=0"`
	Height int `yaml:"height" json:"height" validate:"gte=0"`
}

func (e Extent) size() flow.Size { return flow.Size{Width: e.Width, Height: e.Height} }

func extentOf(s flow.Size) Extent { return Extent{Width: s.Width, Height: s.Height} }

type Container struct {
	Width    int     `yaml:"width" validate:"gte=0"`
	Height   int     `yaml:"height" validate:"gte=0"`
	AutoSize bool    `yaml:"auto_size"`
	MinSize  *Extent `yaml:"min_size,omitempty"`
	MaxSize  *Extent `yaml:"max_size,omitempty"`
	// Size reported when the engine measures an unmeasured container.
	Measured *Extent `yaml:"measured_size,omitempty"`
}

type Layout struct {
	Margin         int                 `yaml:"margin"`
	Padding        int                 `yaml:"padding"`
	WrapCount      *int                `yaml:"wrap_count,omitempty"`
	Distribution   flow.Distribution   `yaml:"distribution"`
	Alignment      flow.Alignment      `yaml:"alignment"`
	AlignScope     flow.AlignScope     `yaml:"align_scope"`
	AutoSizePolicy flow.AutoSizePolicy `yaml:"auto_size_policy"`
	Type           flow.LayoutType     `yaml:"type"`
}

type Item struct {
	Name   string    `yaml:"name,omitempty"`
	Width  int       `yaml:"width" validate:"gte=0"`
	Height int       `yaml:"height" validate:"gte=0"`
	Repeat int       `yaml:"repeat,omitempty" validate:"gte=0"`
	Hidden bool      `yaml:"hidden,omitempty"`
	Dock   flow.Dock `yaml:"dock,omitempty"`
	Anchor bool      `yaml:"anchored,omitempty"`
}

// Scenario is a decoded scenario file.
type Scenario struct {
	Version   int       `yaml:"version" validate:"eq=1"`
	Container Container `yaml:"container"`
	Layout    Layout    `yaml:"layout"`
	Items     []Item    `yaml:"items" validate:"dive"`
	Resizes   []Extent  `yaml:"resizes,omitempty" validate:"dive"`
}

// Load reads the scenario file at path. See Parse.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario over the built-in defaults and checks its
// structure. Layout problems the engine tolerates are not errors here; see
// Problems.
func Parse(data []byte) (*Scenario, error) {
	defaults, err := gencfg.Process(defaultsTmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to process scenario template: %w", err)
	}
	s := &Scenario{}
	if err := decode(defaults, s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario defaults: %w", err)
	}
	if err := decode(data, s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := gencfg.Validate(s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return s, nil
}

func decode(data []byte, s *Scenario) error {
	// Only fields we defined are allowed, so yaml.Unmarshal is not enough.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Dump encodes the scenario, defaults included, as YAML.
func Dump(s *Scenario) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scenario to yaml: %w", err)
	}
	return data, nil
}

// Config returns the engine configuration the scenario describes.
func (s *Scenario) Config() flow.Config {
	return flow.Config{
		Margin:         s.Layout.Margin,
		Padding:        s.Layout.Padding,
		WrapCount:      s.Layout.WrapCount,
		Distribution:   s.Layout.Distribution,
		Alignment:      s.Layout.Alignment,
		AlignScope:     s.Layout.AlignScope,
		AutoSizePolicy: s.Layout.AutoSizePolicy,
		Type:           s.Layout.Type,
	}
}
