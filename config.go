package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

const defaultCommandsFile = "commands.json"

const easterEggResponse = "The truth is alterable. The truth never has been altered. " +
	"JSON is the best data format. JSON has always been the best data format."

// LoadError is returned when the commands file cannot be read or parsed
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError is returned when the commands file cannot be written
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

func loadCommands(path string) (CommandTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to read file: %w", err)}
	}

	var table CommandTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to parse file: %w", err)}
	}
	// "null" decodes without error but is not a table
	if table == nil {
		return nil, &LoadError{Path: path, Err: errors.New("top level value must be a JSON object")}
	}
	if err := table.Validate(); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid commands: %w", err)}
	}

	return table, nil
}

func encodeCommands(table CommandTable) ([]byte, error) {
	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// saveCommands replaces the file at path with the encoded table. The data is
// written to a temporary file first and moved into place.
func saveCommands(path string, table CommandTable) error {
	data, err := encodeCommands(table)
	if err != nil {
		return &SaveError{Path: path, Err: fmt.Errorf("failed to encode commands: %w", err)}
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return &SaveError{Path: path, Err: fmt.Errorf("failed to create temporary file: %w", err)}
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return &SaveError{Path: path, Err: fmt.Errorf("failed to write temporary file: %w", err)}
	}
	if err := tmpFile.Chmod(mode); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return &SaveError{Path: path, Err: fmt.Errorf("failed to set file mode: %w", err)}
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return &SaveError{Path: path, Err: fmt.Errorf("failed to close temporary file: %w", err)}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &SaveError{Path: path, Err: fmt.Errorf("failed to move temporary file: %w", err)}
	}

	return nil
}

func defaultCommands() CommandTable {
	return CommandTable{
		"json": {
			Value:       NewStringResponse(easterEggResponse),
			Hidden:      true,
			Subcommands: map[string]*CommandDefinition{},
		},
	}
}

// initCommands creates a new commands file holding the default table. It
// reports whether a file was created; an existing file is left alone.
func initCommands(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, &SaveError{Path: path, Err: err}
	}

	if err := saveCommands(path, defaultCommands()); err != nil {
		return false, err
	}
	log.Printf("Created new commands file at %s", path)
	return true, nil
}
