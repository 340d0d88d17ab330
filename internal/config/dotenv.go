package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotEnv loads variables from a .env file in the working directory into
// the process environment before env parsing runs. A missing file is not an
// error. Variables already exported in the environment keep their values:
// godotenv never overwrites existing entries.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("error loading .env file: %w", err)
	}

	return nil
}
