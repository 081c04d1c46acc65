package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultFileName         = "/.env"
	defaultOverrideFileName = "/.local.env"
)

type EnvLoader struct {
	logger logger
}

type logger interface {
	Warnf(format string, a ...any)
	Infof(format string, a ...any)
	Debugf(format string, a ...any)
	Fatalf(format string, a ...any)
}

// NewEnvFile reads the env files under configFolder and exposes them through the
// Config interface. System environment variables keep precedence over file values.
func NewEnvFile(configFolder string, logger logger) Config {
	conf := &EnvLoader{logger: logger}
	conf.read(configFolder)

	return conf
}

func (e *EnvLoader) read(folder string) {
	initialEnv := captureInitialEnv()

	// APP_ENV is captured before loading so the env-specific override file is
	// resolved against the ambient value, not one coming from a file.
	appEnv := os.Getenv("APP_ENV")

	envMap := make(map[string]string)

	e.loadFile(folder+defaultFileName, envMap, true)
	e.loadFile(folder+defaultOverrideFileName, envMap, false)

	if appEnv != "" {
		e.loadFile(fmt.Sprintf("%s/.%s.env", folder, appEnv), envMap, true)
	}

	for key, value := range envMap {
		if !initialEnv[key] {
			os.Setenv(key, value)
		}
	}
}

func captureInitialEnv() map[string]bool {
	initialEnv := make(map[string]bool)

	for _, envVar := range os.Environ() {
		key, _, _ := strings.Cut(envVar, "=")
		initialEnv[key] = true
	}

	return initialEnv
}

func (e *EnvLoader) loadFile(path string, envMap map[string]string, fatalOnReadError bool) {
	content, err := godotenv.Read(path)
	if err == nil {
		for k, v := range content {
			envMap[k] = v
		}

		e.logger.Infof("Loaded config from file: %v", path)

		return
	}

	if fatalOnReadError && !errors.Is(err, fs.ErrNotExist) {
		e.logger.Fatalf("Failed to load config from file: %v, Err: %v", path, err)
	}
}

func (*EnvLoader) Get(key string) string {
	return os.Getenv(key)
}

func (*EnvLoader) GetOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultValue
}
