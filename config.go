// Package menukit loads the settings shared by menukit programs. The widget
// toolkit itself lives in the retained package and the Ebitengine host in
// backend/ebitenhost.
package menukit

import (
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/menukit/retained"
)

// DefaultConfigFile is the name LoadConfig looks for when given no path.
const DefaultConfigFile = "menukit.toml"

// Config is the menukit.toml file.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Input   InputConfig   `toml:"input"`
	Scroll  ScrollConfig  `toml:"scroll"`
	Tooltip TooltipConfig `toml:"tooltip"`
	// Debug turns on debug logging of dropped input and focus changes.
	Debug bool `toml:"debug"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// Font is a path to a TrueType font. Empty uses the built-in face.
	Font     string  `toml:"font"`
	FontSize float64 `toml:"font_size"`
}

type InputConfig struct {
	// ClickThreshold is the largest press-to-release distance of a click.
	ClickThreshold int `toml:"click_threshold"`
	// WheelStep is the host wheel delta of one notch.
	WheelStep int `toml:"wheel_step"`
	// WheelIntervalMS limits how often wheel input is forwarded.
	WheelIntervalMS int `toml:"wheel_interval_ms"`
}

type ScrollConfig struct {
	BarSize     int `toml:"bar_size"`
	SmallChange int `toml:"small_change"`
	LargeChange int `toml:"large_change"`
}

type TooltipConfig struct {
	Padding int `toml:"padding"`
	OffsetX int `toml:"offset_x"`
	OffsetY int `toml:"offset_y"`
}

// DefaultConfig returns the values used for anything a file leaves out.
func DefaultConfig() Config {
	s := retained.DefaultSettings()
	return Config{
		Window: WindowConfig{
			Title:    "menukit",
			Width:    1280,
			Height:   720,
			FontSize: 20,
		},
		Input: InputConfig{
			ClickThreshold:  s.ClickThreshold,
			WheelStep:       s.WheelStep,
			WheelIntervalMS: 0,
		},
		Scroll: ScrollConfig{
			BarSize:     s.ScrollBarSize,
			SmallChange: s.SmallChange,
			LargeChange: s.LargeChange,
		},
		Tooltip: TooltipConfig{
			Padding: s.TooltipPadding,
			OffsetX: s.TooltipOffset.X,
			OffsetY: s.TooltipOffset.Y,
		},
	}
}

// LoadConfig reads path, or menukit.toml in the working directory when path
// is empty. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a TOML document over the defaults and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the toolkit cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size %v must be positive", c.Window.FontSize))
	}
	if c.Input.ClickThreshold < 0 {
		errs = append(errs, fmt.Errorf("click_threshold %d must not be negative", c.Input.ClickThreshold))
	}
	if c.Input.WheelStep <= 0 {
		errs = append(errs, fmt.Errorf("wheel_step %d must be positive", c.Input.WheelStep))
	}
	if c.Input.WheelIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("wheel_interval_ms %d must not be negative", c.Input.WheelIntervalMS))
	}
	if c.Scroll.BarSize <= 0 {
		errs = append(errs, fmt.Errorf("bar_size %d must be positive", c.Scroll.BarSize))
	}
	if c.Scroll.SmallChange <= 0 || c.Scroll.LargeChange <= 0 {
		errs = append(errs, fmt.Errorf("small_change and large_change must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Save writes the config as TOML.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Settings converts the config into form settings.
func (c Config) Settings() retained.Settings {
	return retained.Settings{
		ClickThreshold: c.Input.ClickThreshold,
		WheelStep:      c.Input.WheelStep,
		ScrollBarSize:  c.Scroll.BarSize,
		SmallChange:    c.Scroll.SmallChange,
		LargeChange:    c.Scroll.LargeChange,
		TooltipPadding: c.Tooltip.Padding,
		TooltipOffset:  image.Pt(c.Tooltip.OffsetX, c.Tooltip.OffsetY),
	}
}

// WheelInterval returns the wheel rate limit as a duration.
func (c Config) WheelInterval() time.Duration {
	return time.Duration(c.Input.WheelIntervalMS) * time.Millisecond
}
