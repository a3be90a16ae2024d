// Package config loads, validates, and writes the tracker's configuration
// file. Field rules live in validator struct tags; the journal block needs
// cross-field checks the tags cannot express.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/binopt/session"
)

// Journal backends selectable in the config file.
const (
	JournalCSV    = "csv"
	JournalSQLite = "sqlite"
)

// Config mirrors the session configuration file. The pointer fields are the
// optional keys: nil means the key was absent and the session default
// applies, which is distinct from an explicit zero.
type Config struct {
	InitialBalance       float64        `json:"initial_balance" yaml:"initial_balance" validate:"required,gt=0"`
	RiskPercent          float64        `json:"risk_percent" yaml:"risk_percent" validate:"required,gt=0"`
	PayoutPercent        float64        `json:"payout_percent" yaml:"payout_percent" validate:"required,gt=0"`
	StopLossPercent      *float64       `json:"stop_loss_percent,omitempty" yaml:"stop_loss_percent,omitempty" validate:"omitempty,gt=0"`
	MaxConsecutiveLosses *int           `json:"max_consecutive_losses,omitempty" yaml:"max_consecutive_losses,omitempty" validate:"omitempty,gt=0"`
	Journal              *JournalConfig `json:"journal,omitempty" yaml:"journal,omitempty"`
}

// JournalConfig selects the optional exit-time journal export.
type JournalConfig struct {
	Type string `json:"type" yaml:"type" validate:"required,oneof=csv sqlite"`
	Dir  string `json:"dir,omitempty" yaml:"dir,omitempty"`   // csv: receives sessions.csv and trades.csv
	Path string `json:"path,omitempty" yaml:"path,omitempty"` // sqlite: the database file
}

// validate is shared; validator instances cache struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors against the yaml key, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// LoadFromFile loads configuration from a file, trying YAML first and
// falling back to JSON. The result is validated; a file that parses but
// fails validation returns an error rather than a partial config.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if yerr := yaml.Unmarshal(data, cfg); yerr != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", yerr)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration as YAML or JSON based on the
// extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration and reports the first problem found.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.New(describe(verrs[0]))
		}
		return err
	}

	if j := c.Journal; j != nil {
		if j.Type == JournalCSV && j.Dir == "" {
			return fmt.Errorf("journal.dir required for csv journal")
		}
		if j.Type == JournalSQLite && j.Path == "" {
			return fmt.Errorf("journal.path required for sqlite journal")
		}
	}
	return nil
}

// describe turns a validator error into the message style the CLI prints.
func describe(fe validator.FieldError) string {
	field := fe.Field()
	if ns := fe.Namespace(); strings.Contains(ns, "journal") {
		field = "journal." + field
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	}
	return fe.Error()
}

// SessionConfig resolves the optional keys against the session defaults.
func (c *Config) SessionConfig() session.Config {
	sc := session.Config{
		InitialBalance:       c.InitialBalance,
		RiskPercent:          c.RiskPercent,
		PayoutPercent:        c.PayoutPercent,
		StopLossPercent:      session.DefaultStopLossPercent,
		MaxConsecutiveLosses: session.DefaultMaxConsecutiveLosses,
	}
	if c.StopLossPercent != nil {
		sc.StopLossPercent = *c.StopLossPercent
	}
	if c.MaxConsecutiveLosses != nil {
		sc.MaxConsecutiveLosses = *c.MaxConsecutiveLosses
	}
	return sc
}

// Default returns the configuration used when no config file exists: a
// 2000.00 bankroll risking 5% per trade at an 80% payout, the stock stop
// limits, and no journal.
func Default() *Config {
	stopLoss := session.DefaultStopLossPercent
	maxLosses := session.DefaultMaxConsecutiveLosses
	return &Config{
		InitialBalance:       2000,
		RiskPercent:          5,
		PayoutPercent:        80,
		StopLossPercent:      &stopLoss,
		MaxConsecutiveLosses: &maxLosses,
	}
}
