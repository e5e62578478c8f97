package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// limits of the palette service.
var (
	MaxPalettes  = getEnvInt("MAX_PALETTES", 1024)
	MaxDrawCount = getEnvInt("MAX_DRAW_COUNT", 512)
	StreamRate   = rate.Limit(getEnvInt("STREAM_RPS", 4))
	StreamBurst  = getEnvInt("STREAM_BURST", 1)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
