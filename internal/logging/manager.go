package logging

import (
	"fmt"
	"sync"

	"empoweryouth-api/internal/config"
	"empoweryouth-api/internal/logging/adapters"
)

var (
	globalLogger Logger
	globalMu     sync.RWMutex
)

// Initialize builds the global logger from configuration. When no
// adapters are configured a stdout adapter in the configured format is
// used.
func Initialize(cfg *config.Config) error {
	logger := NewMultiLogger()
	logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	if len(cfg.Logging.Adapters) == 0 {
		adapter := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{Format: cfg.Logging.Format})
		if err := logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add stdout adapter: %w", err)
		}
		setGlobalLogger(logger)
		return nil
	}

	for _, ac := range cfg.Logging.Adapters {
		if !ac.Enabled {
			continue
		}

		var (
			adapter LogAdapter
			err     error
		)
		switch ac.Type {
		case "stdout":
			adapter = adapters.NewStdoutAdapter(ac.Name, adapters.StdoutConfig{
				Format: getStringOption(ac.Options, "format", cfg.Logging.Format),
			})
		case "file":
			adapter, err = adapters.NewFileAdapter(ac.Name, adapters.FileConfig{
				FilePath:   getStringOption(ac.Options, "file_path", ""),
				Format:     getStringOption(ac.Options, "format", cfg.Logging.Format),
				CreateDirs: getBoolOption(ac.Options, "create_dirs", true),
			})
		default:
			return fmt.Errorf("unsupported adapter type: %s", ac.Type)
		}
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", ac.Name, err)
		}

		if err := logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add adapter %s: %w", ac.Name, err)
		}
	}

	setGlobalLogger(logger)
	return nil
}

// GetGlobalLogger returns the process-wide logger. Before Initialize
// it falls back to a stdout JSON logger so early failures are visible.
func GetGlobalLogger() Logger {
	globalMu.RLock()
	logger := globalLogger
	globalMu.RUnlock()

	if logger != nil {
		return logger
	}

	fallback := NewMultiLogger()
	_ = fallback.AddAdapter(adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{Format: "json"}))
	setGlobalLogger(fallback)
	return fallback
}

func setGlobalLogger(logger Logger) {
	globalMu.Lock()
	globalLogger = logger
	globalMu.Unlock()
}

func getStringOption(options map[string]interface{}, key string, defaultValue string) string {
	if value, exists := options[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

func getBoolOption(options map[string]interface{}, key string, defaultValue bool) bool {
	if value, exists := options[key]; exists {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	return defaultValue
}
