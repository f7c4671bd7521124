package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// Client is the command line client configuration
type Client struct {
	ServerURL    string
	DBPath       string
	PasswordFile string
	Timeout      time.Duration
	Debug        bool
	ShowVersion  bool
	// Args are the command and its arguments left after the global flags
	Args []string
}

// LoadClient parses the global client flags. UMKM_SERVER and UMKM_DB
// replace the defaults; explicit flags win over both.
func LoadClient(args []string) (*Client, error) {
	var (
		e   env
		cfg = &Client{}
	)

	fs := flag.NewFlagSet("umkmhub", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.ServerURL, "server", e.str("SERVER", "http://localhost:8080"), "Gateway URL")
	fs.StringVar(&cfg.DBPath, "db", e.str("DB", "umkmhub-client.db"), "Path to local database")
	fs.StringVar(&cfg.PasswordFile, "password-file", "", "Read the login password from a file")
	fs.DurationVar(&cfg.Timeout, "timeout", e.duration("TIMEOUT", 30*time.Second), "Gateway request timeout")
	fs.BoolVar(&cfg.Debug, "debug", false, "Verbose logging")

	if err := e.err(); err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg.Args = fs.Args()
	return cfg, nil
}
