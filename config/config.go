package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("FZS_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("FZS_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("FZS_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("FZS_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 5000
	}
	return port
}

// GetSessionSecret returns the configured session signing secret, or empty
// when unset. The web server falls back to a random per-process secret.
func GetSessionSecret() string {
	return os.Getenv("FZS_SESSION_SECRET")
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("FZS_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/fzscripts"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("FZS_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}
