// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credentials resolves the API key for a conversion run. Sources
// are consulted in order: an explicit flag value, the provider's
// environment variable, then a .env file.
package credentials

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Resolve returns the API key for envVar, checking the explicit value
// first, then the process environment, then the .env file at envFile.
// A missing .env file is not an error; an unreadable or malformed one
// produces a warning on stderr but does not abort resolution. When no
// source yields a key, Resolve returns an error.
func Resolve(explicit, envVar, envFile string) (string, error) {
	if v := strings.TrimSpace(explicit); v != "" {
		return v, nil
	}

	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v, nil
	}

	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		if err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "warning: could not read %s: %v\n", envFile, err)
			}
		} else if v := strings.TrimSpace(vals[envVar]); v != "" {
			return v, nil
		}
	}

	return "", fmt.Errorf("API key not provided: use --api-key, set the %s environment variable, or add it to your .env file", envVar)
}
