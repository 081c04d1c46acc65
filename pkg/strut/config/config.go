// Package config defines the read surface for application configuration.
package config

type Config interface {
	Get(string) string
	GetOrDefault(string, string) string
}
