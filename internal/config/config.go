package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type EditorOptions struct {
	TabWidth  int  `toml:"tab-width"`
	ShowStats bool `toml:"show-stats"`
}

type Theme struct {
	Foreground            string `toml:"foreground"`
	Background            string `toml:"background"`
	StatuslineForeground  string `toml:"statusline-foreground"`
	StatuslineBackground  string `toml:"statusline-background"`
	CommandlineForeground string `toml:"commandline-foreground"`
	CommandlineBackground string `toml:"commandline-background"`
}

type Config struct {
	Editor EditorOptions     `toml:"editor"`
	Theme  Theme             `toml:"theme"`
	Keys   map[string]string `toml:"keys"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabWidth:  4,
			ShowStats: true,
		},
		Theme: Theme{
			Foreground:            "#B3B1AD",
			Background:            "#0A0E14",
			StatuslineForeground:  "#B3B1AD",
			StatuslineBackground:  "#0F1419",
			CommandlineForeground: "#B3B1AD",
			CommandlineBackground: "#0F1419",
		},
		Keys: map[string]string{
			"left":      "move_left",
			"right":     "move_right",
			"up":        "move_up",
			"down":      "move_down",
			"pgup":      "page_up",
			"pgdn":      "page_down",
			"alt+left":  "word_left",
			"alt+right": "word_right",
			"alt+b":     "word_left",
			"alt+f":     "word_right",
			"cmd+left":  "word_left",
			"cmd+right": "word_right",
			"home":      "move_start",
			"end":       "move_end",
			"cmd+home":  "move_start",
			"cmd+end":   "move_end",
			"backspace": "backspace",
			"del":       "delete_char",
			"ctrl+d":    "delete_char",
			"ctrl+w":    "delete_word",
			"ctrl+k":    "copy_word",
			"ctrl+v":    "paste",
			"ctrl+s":    "save",
			"ctrl+q":    "quit",
			"ctrl+c":    "quit",
			"ctrl+e":    "enter_command",
			"enter":     "newline",
			"tab":       "insert_tab",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, err
	}

	if userCfg.Editor.TabWidth > 0 {
		cfg.Editor.TabWidth = userCfg.Editor.TabWidth
	}
	// ShowStats defaults to true, so presence must be checked through
	// the decode metadata or "= false" would be indistinguishable from
	// unset.
	if md.IsDefined("editor", "show-stats") {
		cfg.Editor.ShowStats = userCfg.Editor.ShowStats
	}
	if userCfg.Theme.Foreground != "" {
		cfg.Theme.Foreground = userCfg.Theme.Foreground
	}
	if userCfg.Theme.Background != "" {
		cfg.Theme.Background = userCfg.Theme.Background
	}
	if userCfg.Theme.StatuslineForeground != "" {
		cfg.Theme.StatuslineForeground = userCfg.Theme.StatuslineForeground
	}
	if userCfg.Theme.StatuslineBackground != "" {
		cfg.Theme.StatuslineBackground = userCfg.Theme.StatuslineBackground
	}
	if userCfg.Theme.CommandlineForeground != "" {
		cfg.Theme.CommandlineForeground = userCfg.Theme.CommandlineForeground
	}
	if userCfg.Theme.CommandlineBackground != "" {
		cfg.Theme.CommandlineBackground = userCfg.Theme.CommandlineBackground
	}
	if userCfg.Keys != nil {
		for k, v := range userCfg.Keys {
			cfg.Keys[k] = v
		}
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("LEDIT_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "ledit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ledit"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
