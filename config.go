package kanjiwall

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigPath is the config file read when CONFIG_PATH is unset.
const defaultConfigPath = "kanjiwall.yaml"

// Config carries all generator settings. The zero value is not usable;
// obtain a populated Config from LoadConfig or DefaultConfig. Defaults
// reproduce the reference wallpaper layout (1260x520 black canvas, white
// text, orange compound readings).
type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Layout LayoutConfig `yaml:"layout"`
	Theme  ThemeConfig  `yaml:"theme"`
	Font   FontConfig   `yaml:"font"`
	Output OutputConfig `yaml:"output"`
	Data   DataConfig   `yaml:"data"`
	Log    LogConfig    `yaml:"log"`
}

// CanvasConfig fixes the pixel dimensions shared by every image of a level.
type CanvasConfig struct {
	Width  int `yaml:"width" env:"KANJIWALL_CANVAS_WIDTH" env-default:"1260"`
	Height int `yaml:"height" env:"KANJIWALL_CANVAS_HEIGHT" env-default:"520"`
}

// LayoutConfig carries the coarse layout parameters: outer margins and the
// font size of each text role.
type LayoutConfig struct {
	MarginX int `yaml:"margin_x" env:"KANJIWALL_MARGIN_X" env-default:"50"`
	MarginY int `yaml:"margin_y" env:"KANJIWALL_MARGIN_Y" env-default:"30"`

	KanjiSize    float64 `yaml:"kanji_size" env:"KANJIWALL_KANJI_SIZE" env-default:"220"`
	BodySize     float64 `yaml:"body_size" env:"KANJIWALL_BODY_SIZE" env-default:"32"`
	CompoundSize float64 `yaml:"compound_size" env:"KANJIWALL_COMPOUND_SIZE" env-default:"24"`
	CodeSize     float64 `yaml:"code_size" env:"KANJIWALL_CODE_SIZE" env-default:"16"`
}

// ThemeConfig holds the wallpaper palette as hex color strings.
type ThemeConfig struct {
	Background string `yaml:"background" env:"KANJIWALL_THEME_BACKGROUND" env-default:"#000000"`
	Text       string `yaml:"text" env:"KANJIWALL_THEME_TEXT" env-default:"#FFFFFF"`
	Reading    string `yaml:"reading" env:"KANJIWALL_THEME_READING" env-default:"#FFA500"`
	BoxFill    string `yaml:"box_fill" env:"KANJIWALL_THEME_BOX_FILL" env-default:"#141414"`
	BoxLine    string `yaml:"box_line" env:"KANJIWALL_THEME_BOX_LINE" env-default:"#FFFFFF"`
}

// FontConfig selects the font file. An empty Path means the default system
// font candidates are probed in order.
type FontConfig struct {
	Path string `yaml:"path" env:"KANJIWALL_FONT_PATH" env-default:""`
}

// OutputConfig sets the root directory that per-level output directories
// are created under.
type OutputConfig struct {
	Dir string `yaml:"dir" env:"KANJIWALL_OUTPUT_DIR" env-default:"."`
}

// DataConfig points at an optional directory of additional level datasets.
// CSV files there add to the embedded levels and override them on name
// collision.
type DataConfig struct {
	Dir string `yaml:"dir" env:"KANJIWALL_DATA_DIR" env-default:""`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"KANJIWALL_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"KANJIWALL_LOG_FORMAT" env-default:"text"`
}

// LoadConfig resolves the configuration: the file named by the CONFIG_PATH
// environment variable if set, else kanjiwall.yaml in the working directory
// if present, else environment variables and defaults only.
func LoadConfig() (Config, error) {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("kanjiwall: read config %s: %w", path, err)
		}
		return cfg, nil
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := cleanenv.ReadConfig(defaultConfigPath, &cfg); err != nil {
			return Config{}, fmt.Errorf("kanjiwall: read config %s: %w", defaultConfigPath, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("kanjiwall: read config from environment: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns the configuration built from defaults and any
// KANJIWALL_* environment overrides, ignoring config files.
func DefaultConfig() Config {
	var cfg Config
	// ReadEnv only fails on malformed struct tags, which are fixed at
	// compile time here.
	_ = cleanenv.ReadEnv(&cfg)
	return cfg
}

// Validate reports the first unusable setting, if any.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0:
		return fmt.Errorf("kanjiwall: canvas width must be positive, got %d", c.Canvas.Width)
	case c.Canvas.Height <= 0:
		return fmt.Errorf("kanjiwall: canvas height must be positive, got %d", c.Canvas.Height)
	case c.Layout.MarginX < 0 || c.Layout.MarginY < 0:
		return fmt.Errorf("kanjiwall: margins must not be negative, got %dx%d", c.Layout.MarginX, c.Layout.MarginY)
	case c.Layout.KanjiSize <= 0:
		return fmt.Errorf("kanjiwall: kanji size must be positive, got %v", c.Layout.KanjiSize)
	case c.Layout.BodySize <= 0:
		return fmt.Errorf("kanjiwall: body size must be positive, got %v", c.Layout.BodySize)
	case c.Layout.CompoundSize <= 0:
		return fmt.Errorf("kanjiwall: compound size must be positive, got %v", c.Layout.CompoundSize)
	case c.Layout.CodeSize <= 0:
		return fmt.Errorf("kanjiwall: code size must be positive, got %v", c.Layout.CodeSize)
	case c.Output.Dir == "":
		return fmt.Errorf("kanjiwall: output directory must not be empty")
	}
	return nil
}
