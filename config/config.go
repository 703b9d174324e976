// Package config holds runtime configuration for the task report tool.
package config

import (
	"fmt"
	"time"

	"github.com/imdario/mergo"
)

// DateFormat is the wire format for the since/until filters.
const DateFormat = "2006-01-02"

// DefaultAssignee is the business default for the task table's Assignee
// column. It is a fixed label, not derived from commit authors.
const DefaultAssignee = "Arvind Sir"

type Config struct {
	Repos          []string   `json:"repos"`
	Author         string     `json:"author"`
	Since          string     `json:"since"`
	Until          string     `json:"until"`
	Filename       string     `json:"filename"`
	SeparateSheets bool       `json:"separate_sheets"`
	Assignee       string     `json:"assignee,omitempty"`
	Verbose        bool       `json:"verbose,omitempty"`
	Quiet          bool       `json:"quiet,omitempty"`
	Dryrun         bool       `json:"dryrun,omitempty"`
	Term           TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

func GetDefault() Config {
	return Config{
		Assignee: DefaultAssignee,
	}
}

// Validate checks the date filters. Repository paths are validated at
// extraction time so that one bad path doesn't fail the whole run.
func (c Config) Validate() error {
	if _, err := c.SinceDate(); err != nil {
		return err
	}
	if _, err := c.UntilDate(); err != nil {
		return err
	}
	return nil
}

// SinceDate parses the inclusive start filter. The zero time means unset.
func (c Config) SinceDate() (time.Time, error) {
	return parseDate(c.Since, "since")
}

// UntilDate parses the inclusive end filter. The zero time means unset.
func (c Config) UntilDate() (time.Time, error) {
	return parseDate(c.Until, "until")
}

func parseDate(s, name string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: invalid date format for %s: %q (use YYYY-MM-DD)", name, s)
	}
	return t, nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Printf(msg, args...)
}
