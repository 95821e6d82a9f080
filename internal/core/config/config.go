// Package config loads default cargo options from cargo-extra.toml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/nightconcept/cargo-extra-go/internal/core/cargo"
)

// FileName is the defaults file looked up in the project directory.
const FileName = "cargo-extra.toml"

// Load reads FileName from dirPath. A missing file yields empty options.
func Load(dirPath string) (*cargo.Options, error) {
	fullPath := filepath.Join(dirPath, FileName)
	opts := &cargo.Options{}

	if _, err := os.Stat(fullPath); errors.Is(err, os.ErrNotExist) {
		return opts, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", fullPath, err)
	}

	md, err := toml.DecodeFile(fullPath, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", fullPath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to decode %s: unknown key %q", fullPath, undecoded[0].String())
	}
	return opts, nil
}

// Write encodes opts into FileName under dirPath, replacing any existing
// file.
func Write(dirPath string, opts *cargo.Options) error {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(opts); err != nil {
		return fmt.Errorf("failed to encode %s: %w", FileName, err)
	}

	fullPath := filepath.Join(dirPath, FileName)
	if err := os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", fullPath, err)
	}
	return nil
}

// Apply merges the defaults in dirPath beneath opts, so values already set
// on opts win.
func Apply(dirPath string, opts *cargo.Options) error {
	defaults, err := Load(dirPath)
	if err != nil {
		return err
	}
	opts.Merge(defaults)
	return nil
}
