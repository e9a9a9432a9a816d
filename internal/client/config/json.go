package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/skillswap/internal/flagx"
	"github.com/dmitrijs2005/skillswap/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values, so a file may set only some
// of them.
type JsonConfig struct {
	Delay          *timex.Duration `json:"delay"`
	CatalogBackend *string         `json:"catalog"`
	CatalogDSN     *string         `json:"catalog_dsn"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if jc.Delay != nil {
		cfg.Delay = jc.Delay.Duration
	}
	if jc.CatalogBackend != nil {
		cfg.CatalogBackend = *jc.CatalogBackend
	}
	if jc.CatalogDSN != nil {
		cfg.CatalogDSN = *jc.CatalogDSN
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
