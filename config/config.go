package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"goxel/internal/buildinfo"
)

// Prefs are the user-tunable runtime settings.
type Prefs struct {
	VSync       bool   `yaml:"vsync"`
	Diagnostics bool   `yaml:"diagnostics"`
	SelfTest    bool   `yaml:"self_test"`
	LogLevel    string `yaml:"log_level"`
	TPS         int    `yaml:"tps"`
	ClearColor  string `yaml:"clear_color"`
}

// Defaults returns the built-in preferences.
func Defaults() Prefs {
	return Prefs{
		VSync:       true,
		Diagnostics: buildinfo.Debug,
		SelfTest:    buildinfo.Debug,
		LogLevel:    "info",
		TPS:         60,
		ClearColor:  "#303030",
	}
}

// Source tells Load where to look. Zero values use the process defaults.
type Source struct {
	// File is the YAML preferences file. Empty means GOXEL_CONFIG, then the
	// user config directory.
	File string
	// EnvFiles are dotenv files loaded before reading GOXEL_* variables.
	// Nil means .env.local then .env in the working directory.
	EnvFiles []string
	// Getenv reads variables; nil means os.Getenv.
	Getenv func(string) string
}

// Load resolves defaults <- YAML file <- dotenv files / environment.
// Missing files are not errors.
func Load(src Source) (Prefs, error) {
	p := Defaults()

	getenv := src.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if src.EnvFiles == nil {
		src.EnvFiles = []string{".env.local", ".env"}
	}
	dotenv, err := readEnvFiles(src.EnvFiles)
	if err != nil {
		return p, err
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	path := src.File
	if path == "" {
		path = lookup("GOXEL_CONFIG")
	}
	if path == "" {
		path = DefaultFile()
	}
	if path != "" {
		if err := loadFile(path, &p); err != nil {
			return p, err
		}
	}

	if err := applyEnv(lookup, &p); err != nil {
		return p, err
	}
	if p.TPS <= 0 {
		return p, fmt.Errorf("tps must be positive, got %d", p.TPS)
	}
	if _, err := ParseColor(p.ClearColor); err != nil {
		return p, err
	}
	return p, nil
}

// readEnvFiles merges dotenv files; a key keeps the value of the first file
// defining it.
func readEnvFiles(names []string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, name := range names {
		m, err := godotenv.Read(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		for k, v := range m {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}
	return vars, nil
}

// DefaultFile returns the per-user preferences path, or "" if unknown.
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "goxel2", "goxel2.yaml")
}

func loadFile(path string, p *Prefs) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(getenv func(string) string, p *Prefs) error {
	bools := []struct {
		name string
		dst  *bool
	}{
		{"GOXEL_VSYNC", &p.VSync},
		{"GOXEL_DIAGNOSTICS", &p.Diagnostics},
		{"GOXEL_SELFTEST", &p.SelfTest},
	}
	for _, b := range bools {
		v := getenv(b.name)
		if v == "" {
			continue
		}
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", b.name, err)
		}
		*b.dst = on
	}

	if v := getenv("GOXEL_LOG_LEVEL"); v != "" {
		p.LogLevel = v
	}
	if v := getenv("GOXEL_TPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GOXEL_TPS: %w", err)
		}
		p.TPS = n
	}
	if v := getenv("GOXEL_CLEAR_COLOR"); v != "" {
		p.ClearColor = v
	}
	return nil
}

// ParseColor parses #rgb or #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// Clear returns the parsed clear color, falling back to the default.
func (p Prefs) Clear() color.RGBA {
	c, err := ParseColor(p.ClearColor)
	if err != nil {
		c, _ = ParseColor(Defaults().ClearColor)
	}
	return c
}
