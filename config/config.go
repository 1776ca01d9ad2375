package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"howett.net/plist"

	"imessage-sender/applescript"
)

// Config holds the settings for talking to Messages.app. It can be stored as
// JSON or as a property list (XML, binary or OpenStep).
type Config struct {
	Application   string `json:"application" plist:"Application"`
	ServiceType   string `json:"service_type" plist:"ServiceType"`
	OSAScriptPath string `json:"osascript_path" plist:"OSAScriptPath"`
	HistoryPath   string `json:"history_path" plist:"HistoryPath"`
	Region        string `json:"region,omitempty" plist:"Region,omitempty"`
}

var ErrInvalidServiceType = errors.New("invalid service type")

func Default() Config {
	return Config{
		Application:   applescript.DefaultApplication,
		ServiceType:   applescript.ServiceIMessage,
		OSAScriptPath: applescript.DefaultOSAScriptPath,
		HistoryPath:   DefaultHistoryPath(),
	}
}

func DefaultHistoryPath() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return ""
	}
	return filepath.Join(base, "imessage-sender", "history.json")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &cfg)
	} else {
		_, err = plist.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if !applescript.ValidServiceType(c.ServiceType) {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidServiceType, c.ServiceType, applescript.ServiceIMessage, applescript.ServiceSMS)
	}
	return nil
}

// Template builds the script template this config describes.
func (c Config) Template() applescript.Template {
	return applescript.Template{Application: c.Application, ServiceType: c.ServiceType}
}
