package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	LogSinkConsole  = "console"
	LogSinkDynamoDB = "dynamodb"

	defaultPort          = 8080
	defaultLogsTableName = "payment_logs"
)

// Config holds the runtime settings of the payment API.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - PAYMENT_LOG_SINK (console|dynamodb, default: console)
//   - PAYMENT_LOGS_TABLE (default: payment_logs)
type Config struct {
	Port          int
	LogSink       string
	LogsTableName string
}

func Load() Config {
	port, err := strconv.Atoi(getenvDefault("PORT", strconv.Itoa(defaultPort)))
	if err != nil || port <= 0 {
		port = defaultPort
	}

	sink := strings.ToLower(strings.TrimSpace(getenvDefault("PAYMENT_LOG_SINK", LogSinkConsole)))
	if sink != LogSinkDynamoDB {
		sink = LogSinkConsole
	}

	return Config{
		Port:          port,
		LogSink:       sink,
		LogsTableName: getenvDefault("PAYMENT_LOGS_TABLE", defaultLogsTableName),
	}
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
