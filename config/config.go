package config

import (
	"os"
	"strconv"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't gameplay settings, the board and the
// tick speed are fixed, but they tune logging and the spectator feed.
var (
	LogLevel         = getEnvString("LOG_LEVEL", "info")
	LogFile          = getEnvString("SNAKE_LOG_FILE", "snake.log")
	SpectateFPS      = rate.Limit(getEnvInt("SPECTATE_FPS", 20))
	SpectateBurst    = getEnvInt("SPECTATE_BURST", 5)
	PrometheusListen = getEnvString("PROMETHEUS_LISTEN", ":9000")
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

func getEnvString(varName string, defaults string) string {
	if val := os.Getenv(varName); val != "" {
		return val
	}
	return defaults
}
