// Package api implements the streaming upload client for the Völur platform.
//
// One Upload call is one session: a bidirectional stream carrying a request
// envelope per record outbound and status envelopes inbound, reduced to a
// single terminal UploadResult.
package api

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadSettings.
const (
	EnvAddress = "VOLUR_API_ADDRESS"
	EnvToken   = "VOLUR_API_TOKEN"
	EnvDebug   = "VOLUR_API_DEBUG"
)

// Settings holds the connection configuration of the API client. Contact
// Völur to obtain the endpoint address and the token.
type Settings struct {
	// Address is the host:port of the platform endpoint.
	Address string
	// Token is the bearer token attached to every call.
	Token string
	// Debug enables verbose client logging.
	Debug bool
}

// LoadSettings reads settings from the environment. A .env file in the
// working directory is loaded first when present, mirroring local-development
// setups; real environment variables win over file entries.
func LoadSettings() (Settings, error) {
	_ = godotenv.Load()

	settings := Settings{
		Address: os.Getenv(EnvAddress),
		Token:   os.Getenv(EnvToken),
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		debug, err := strconv.ParseBool(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s value %q: %w", EnvDebug, raw, err)
		}
		settings.Debug = debug
	}
	return settings, settings.Validate()
}

// Validate checks that the settings are complete.
func (s Settings) Validate() error {
	if s.Address == "" {
		return fmt.Errorf("API address is not set, use %s or provide it explicitly", EnvAddress)
	}
	if s.Token == "" {
		return fmt.Errorf("API token is not set, use %s or provide it explicitly", EnvToken)
	}
	return nil
}
