package tooltip

import (
	"bytes"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is a complete controller configuration. Build one with
// DefaultConfig or MergeConfig; a Config is treated as immutable once handed
// to a controller.
type Config struct {
	// Components are the subtrees whose descendants can trigger the tooltip.
	Components []Anchor
	// Container bounds placement. Nil means the scene viewport.
	Container Anchor

	FollowCursor bool
	AllowHover   bool

	HorizontalPlacement Position
	HorizontalShift     float64
	VerticalPlacement   Position
	VerticalShift       float64

	// Triggers are matched in declaration order.
	Triggers []Trigger

	Attributes map[string]string
	ClassName  string

	ShowDelay time.Duration
	HideDelay time.Duration

	Logger  *slog.Logger
	OnError func(error)
}

// DefaultConfig returns a fresh copy of the defaults.
func DefaultConfig() Config {
	return Config{
		Components:          []Anchor{},
		FollowCursor:        true,
		HorizontalPlacement: PositionAuto,
		VerticalPlacement:   PositionTop,
		Triggers:            []Trigger{},
		Attributes:          map[string]string{},
	}
}

// PartialConfig is a configuration with every field optional. Nil fields
// inherit from the defaults passed to MergeConfig. The data fields can be
// loaded from YAML; components, container, triggers and callbacks are set in
// code.
type PartialConfig struct {
	Components []Anchor `yaml:"-"`
	Container  Anchor   `yaml:"-"`
	// ClearContainer drops an inherited container so placement is bounded
	// by the scene viewport again. It wins over Container.
	ClearContainer bool `yaml:"-"`

	FollowCursor *bool `yaml:"followCursor,omitempty"`
	AllowHover   *bool `yaml:"allowHover,omitempty"`

	HorizontalPlacement *Position `yaml:"horizontalPlacement,omitempty"`
	HorizontalShift     *float64  `yaml:"horizontalShift,omitempty"`
	VerticalPlacement   *Position `yaml:"verticalPlacement,omitempty"`
	VerticalShift       *float64  `yaml:"verticalShift,omitempty"`

	Triggers []Trigger `yaml:"-"`

	Attributes map[string]string `yaml:"attributes,omitempty"`
	ClassName  *string           `yaml:"className,omitempty"`

	ShowDelay *time.Duration `yaml:"showDelay,omitempty"`
	HideDelay *time.Duration `yaml:"hideDelay,omitempty"`

	Logger  *slog.Logger `yaml:"-"`
	OnError func(error)  `yaml:"-"`
}

// MergeConfig overlays partial onto defaults. It does not modify either
// argument, and the result shares no map or slice with them.
func MergeConfig(partial PartialConfig, defaults Config) Config {
	out := defaults
	out.Components = slices.Clone(defaults.Components)
	out.Triggers = slices.Clone(defaults.Triggers)
	out.Attributes = maps.Clone(defaults.Attributes)

	if partial.Components != nil {
		out.Components = slices.Clone(partial.Components)
	}
	if partial.Container != nil {
		out.Container = partial.Container
	}
	if partial.ClearContainer {
		out.Container = nil
	}
	if partial.FollowCursor != nil {
		out.FollowCursor = *partial.FollowCursor
	}
	if partial.AllowHover != nil {
		out.AllowHover = *partial.AllowHover
	}
	if partial.HorizontalPlacement != nil {
		out.HorizontalPlacement = *partial.HorizontalPlacement
	}
	if partial.HorizontalShift != nil {
		out.HorizontalShift = *partial.HorizontalShift
	}
	if partial.VerticalPlacement != nil {
		out.VerticalPlacement = *partial.VerticalPlacement
	}
	if partial.VerticalShift != nil {
		out.VerticalShift = *partial.VerticalShift
	}
	if partial.Triggers != nil {
		out.Triggers = slices.Clone(partial.Triggers)
	}
	if partial.Attributes != nil {
		out.Attributes = maps.Clone(partial.Attributes)
	}
	if partial.ClassName != nil {
		out.ClassName = *partial.ClassName
	}
	if partial.ShowDelay != nil {
		out.ShowDelay = *partial.ShowDelay
	}
	if partial.HideDelay != nil {
		out.HideDelay = *partial.HideDelay
	}
	if partial.Logger != nil {
		out.Logger = partial.Logger
	}
	if partial.OnError != nil {
		out.OnError = partial.OnError
	}

	if out.Components == nil {
		out.Components = []Anchor{}
	}
	if out.Triggers == nil {
		out.Triggers = []Trigger{}
	}
	if out.Attributes == nil {
		out.Attributes = map[string]string{}
	}
	return out
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (PartialConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PartialConfig{}, fmt.Errorf("read config file %q: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes YAML configuration data. Unknown fields are rejected.
// source names the data in error messages.
func ParseConfig(data []byte, source string) (PartialConfig, error) {
	var cfg PartialConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return PartialConfig{}, fmt.Errorf("parse YAML in %q: %w", source, err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return PartialConfig{}, fmt.Errorf("invalid config in %q: %s", source, strings.Join(errs, "; "))
	}
	return cfg, nil
}

// Validate checks the data fields and normalizes placement names. It returns
// one message per problem.
func (cfg *PartialConfig) Validate() []string {
	var errs []string

	if cfg.HorizontalPlacement != nil {
		p, ok := ParsePosition(string(*cfg.HorizontalPlacement))
		if !ok {
			errs = append(errs, fmt.Sprintf("horizontalPlacement %q is not a position", *cfg.HorizontalPlacement))
		} else {
			cfg.HorizontalPlacement = &p
		}
	}
	if cfg.VerticalPlacement != nil {
		p, ok := ParsePosition(string(*cfg.VerticalPlacement))
		if !ok {
			errs = append(errs, fmt.Sprintf("verticalPlacement %q is not a position", *cfg.VerticalPlacement))
		} else {
			cfg.VerticalPlacement = &p
		}
	}
	if cfg.ShowDelay != nil && *cfg.ShowDelay < 0 {
		errs = append(errs, "showDelay must not be negative")
	}
	if cfg.HideDelay != nil && *cfg.HideDelay < 0 {
		errs = append(errs, "hideDelay must not be negative")
	}
	return errs
}
