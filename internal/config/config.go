// Package config provides functionality for managing configuration options
// for the application using command-line flags, a .env file, an optional
// JSON or YAML config file and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Commands understood by the binary.
const (
	CommandShell    = "shell"
	CommandAddAdmin = "add-admin"
	CommandReset    = "reset"
)

// Options holds the configuration values for the application.
type Options struct {
	// Command selects what the binary does: shell, add-admin or reset.
	Command string `json:"command" yaml:"command"`

	// Driver is the database driver: sqlite or postgres.
	Driver string `json:"driver" yaml:"driver"`

	// DatabaseFile is the SQLite database file.
	DatabaseFile string `json:"database_file" yaml:"database_file"`

	// DatabaseDSN holds the PostgreSQL connection string.
	DatabaseDSN string `json:"database_dsn" yaml:"database_dsn"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	// LogFile enables a rotated JSON log file when set.
	LogFile string `json:"log_file" yaml:"log_file"`

	// AdminUsername names the bootstrap administrator. Reset keeps its rows.
	AdminUsername string `json:"admin_username" yaml:"admin_username"`

	// AdminPassword is the bootstrap administrator's password. Never read from the config file.
	AdminPassword string `json:"-" yaml:"-"`

	// EnvFile is the dotenv file loaded before anything else.
	EnvFile string `json:"-" yaml:"-"`

	// Config is the path to the Config file.
	Config string `json:"-" yaml:"-"`

	// ShowVersion prints build metadata and exits.
	ShowVersion bool `json:"-" yaml:"-"`
}

// Parse parses os.Args and the environment. It exits on invalid input.
func Parse() *Options {
	opts, err := ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return opts
}

// ParseArgs builds Options from args. Values are applied in order: flag
// defaults and flags, the config file, then environment variables (a .env
// file in the working directory feeds the environment without overriding it).
func ParseArgs(args []string) (*Options, error) {
	options := &Options{}
	flags := flag.NewFlagSet("comickeeper", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flags.StringVar(&options.Command, "cmd", CommandShell, "command: shell | add-admin | reset")
	flags.StringVar(&options.Driver, "driver", "sqlite", "database driver: sqlite | postgres")
	flags.StringVar(&options.DatabaseFile, "d", "comicdb.db", "sqlite database file")
	flags.StringVar(&options.DatabaseDSN, "dsn", "", "postgres connection string")
	flags.StringVar(&options.LogLevel, "log-level", "info", "log level: debug | info | warn | error")
	flags.StringVar(&options.LogFile, "log-file", "", "write JSON logs to this rotated file")
	flags.StringVar(&options.AdminUsername, "login", "admin", "administrator username")
	flags.StringVar(&options.AdminPassword, "password", "", "administrator password")
	flags.StringVar(&options.EnvFile, "env", ".env", "path to dotenv file")
	flags.StringVar(&options.Config, "config", "config.json", "path to config file")
	flags.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
	flags.BoolVar(&options.ShowVersion, "version", false, "show build version and date")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if options.EnvFile != "" {
		if err := godotenv.Load(options.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", options.EnvFile, err)
		}
	}

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}
	if err := loadFile(options); err != nil {
		return nil, err
	}

	applyEnv(options)

	if err := options.Validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// loadFile merges the config file into options. A missing file is ignored.
func loadFile(options *Options) error {
	if options.Config == "" {
		return nil
	}
	data, err := os.ReadFile(options.Config)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error while reading config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(options.Config)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, options)
	default:
		err = json.Unmarshal(data, options)
	}
	if err != nil {
		return fmt.Errorf("error while parsing config file: %w", err)
	}
	return nil
}

func applyEnv(options *Options) {
	for env, dst := range map[string]*string{
		"DATABASE_DRIVER": &options.Driver,
		"DATABASE_FILE":   &options.DatabaseFile,
		"DATABASE_DSN":    &options.DatabaseDSN,
		"LOG_LEVEL":       &options.LogLevel,
		"LOG_FILE":        &options.LogFile,
		"ADMIN_USERNAME":  &options.AdminUsername,
		"ADMIN_PASSWORD":  &options.AdminPassword,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
}

// Validate checks option combinations that would fail later anyway.
func (o *Options) Validate() error {
	switch o.Command {
	case CommandShell, CommandAddAdmin, CommandReset:
	default:
		return fmt.Errorf("unknown command: %s", o.Command)
	}
	switch strings.ToLower(o.Driver) {
	case "sqlite", "sqlite3":
		if o.DatabaseFile == "" {
			return errors.New("sqlite driver needs a database file")
		}
	case "postgres", "postgresql", "pq":
		if o.DatabaseDSN == "" {
			return errors.New("postgres driver needs -dsn or DATABASE_DSN")
		}
	default:
		return fmt.Errorf("unknown driver: %s", o.Driver)
	}
	if o.Command == CommandAddAdmin && (o.AdminUsername == "" || o.AdminPassword == "") {
		return errors.New("add-admin needs -login and -password (or ADMIN_USERNAME/ADMIN_PASSWORD)")
	}
	return nil
}
