package apogee

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvEnvironmentName names the variable that selects the environment a
// process runs in.
const EnvEnvironmentName = "APOGEE_ENV"

// DefaultEnvironmentName is used when APOGEE_ENV is unset or blank.
const DefaultEnvironmentName = "local"

type environmentEnv struct {
	Name string `env:"APOGEE_ENV"`
}

// CurrentEnvironmentName returns the environment the current process runs
// in, falling back to DefaultEnvironmentName when APOGEE_ENV is unset or
// blank. Pass the result to New when building the config for this process.
func CurrentEnvironmentName() (string, error) {
	var raw environmentEnv
	if err := env.Parse(&raw); err != nil {
		return "", fmt.Errorf("parse environment name: %w", err)
	}
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return DefaultEnvironmentName, nil
	}
	return name, nil
}
