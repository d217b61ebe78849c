// Package config provides configuration management for the pandemic game.
//
// The config package handles:
//   - The three difficulty presets and the default choice
//   - Runtime settings read from the environment and .env files
//   - Building the process logger
//
// Difficulty Presets:
//
// Only the number of epidemic cards varies between games:
//   - introductory: 4 epidemic cards
//   - standard: 5 epidemic cards
//   - heroic: 6 epidemic cards
//
// Presets are looked up by id, display name or epidemic count, so
// "standard", "Standard" and "5" all name the same preset.
//
// Environment:
//
//	PANDEMIC_SEED         seed for every shuffle; 0 or unset picks one
//	PANDEMIC_DIFFICULTY   default preset (introductory)
//	PANDEMIC_LOG_LEVEL    debug, info, warn or error (warn)
//	PANDEMIC_SESSION_TTL  idle time before a game is dropped (24h)
//
// Usage:
//
//	settings, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	logger, err := settings.Logger()
//
//	manager := config.NewManager()
//	if err := manager.SetDefault(settings.Difficulty); err != nil {
//		log.Fatal(err)
//	}
//	preset, err := manager.LoadConfig("heroic")
package config
