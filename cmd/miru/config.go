package main

import (
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/miru/core"
)

// loadConfiguration assembles the run configuration from the
// environment. Values are read once and fixed for the process lifetime.
func loadConfiguration() core.Configuration {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment and defaults")
	}

	return core.Configuration{
		Window: core.WindowConfiguration{
			Title:  envy.Get("MIRU_TITLE", "Miru3D"),
			Width:  envUint("MIRU_WIDTH", 800),
			Height: envUint("MIRU_HEIGHT", 600),
		},
		Time: core.TimeConfiguration{
			FramesPerSecond: int(envUint("MIRU_FPS", 60)),
			EventPollDelay:  int(envUint("MIRU_EVENT_POLL_MS", 5)),
		},
		Instance: core.InstanceConfiguration{
			Validation: core.ValidationConfiguration{
				Enabled: envBool("MIRU_VALIDATION", false),
				Layer:   envy.Get("MIRU_VALIDATION_LAYER", core.DefaultValidationLayer),
			},
		},
	}
}

func envUint(key string, fallback uint32) uint32 {
	raw := envy.Get(key, "")
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		log.Fatalf("%s: expected unsigned integer, got %q", key, raw)
	}
	return uint32(parsed)
}

func envBool(key string, fallback bool) bool {
	raw := envy.Get(key, "")
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("%s: expected boolean, got %q", key, raw)
	}
	return parsed
}
