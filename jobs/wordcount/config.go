package wordcount

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// Config locates the words file and sizes the run.
type Config struct {
	RelativePath  string `json:"relative_path"`
	WordsFilePath string `json:"words_file_path"`
	Delimiter     string `json:"delimiter"` // single character, comma when empty
	Workers       int    `json:"workers"`   // sequential when 0 or 1
	Reduces       int    `json:"reduces"`
}

// SourcePath joins the two path options by plain concatenation, so
// relative_path carries its own trailing separator.
func (c Config) SourcePath() string {
	return c.RelativePath + c.WordsFilePath
}

// Validate rejects a missing words_file_path, a delimiter that is not a
// single usable character and negative sizes.
func (c Config) Validate() error {
	if c.WordsFilePath == "" {
		return errors.New("words_file_path is required")
	}
	if c.Delimiter != "" {
		r, size := utf8.DecodeRuneInString(c.Delimiter)
		if size != len(c.Delimiter) || r == utf8.RuneError || r == '"' || r == '\r' || r == '\n' {
			return fmt.Errorf("invalid delimiter %q", c.Delimiter)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %v", c.Workers)
	}
	if c.Reduces < 0 {
		return fmt.Errorf("invalid reduces: %v", c.Reduces)
	}
	return nil
}

func (c Config) delimiter() rune {
	if c.Delimiter == "" {
		return ','
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// LoadConfig reads a JSON config file.
func LoadConfig(filename string) (Config, error) {
	var c Config
	content, err := os.ReadFile(filename)
	if err != nil {
		return c, fmt.Errorf("cannot read config: %w", err)
	}
	if err := json.Unmarshal(content, &c); err != nil {
		return c, fmt.Errorf("cannot decode config: %w", err)
	}
	return c, nil
}
