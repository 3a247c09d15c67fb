package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
)

// ValidateDeep performs Validate plus checks that touch the filesystem: the
// config file, the data directory and the storage location. The configPath
// argument specifies the config file location to validate (empty string skips
// config file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		c.validateStoragePath(),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateStoragePath checks the storage location has the right shape for the
// driver: a file for file/sqlite, a directory for nutsdb.
func (c *Config) validateStoragePath() error {
	path := c.StoragePath()
	if path == "" {
		return nil
	}

	var errs criterio.FieldErrorsBuilder

	switch c.Storage.Driver {
	case DriverNutsDB:
		if err := isDirectoryOrNotExist(path); err != nil {
			errs = errs.Append("storage.path", err)
		}
	default:
		if err := isFileOrNotExist(path); err != nil {
			errs = errs.Append("storage.path", err)
		}
		if err := isDirectoryOrNotExist(filepath.Dir(path)); err != nil {
			errs = errs.Append("storage.path", fmt.Errorf("parent: %w", err))
		}
	}

	return errs.ToError()
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// isFileOrNotExist validates that a path is a regular file or doesn't exist.
func isFileOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("exists but is a directory")
	}
	return nil
}
