package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/protodump"
	"github.com/anirudhraja/protodump/config"
	"github.com/anirudhraja/protodump/internal/logging"
)

type options struct {
	configPath   string
	groups       string
	maxDepth     int
	strictVarint bool
	hex          bool
	failFast     bool
	logLevel     string
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("protodump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.StringVar(&opts.groups, "groups", "", "group markers: skip | nest")
	fs.IntVar(&opts.maxDepth, "max-depth", 0, "stop sub-message detection below this depth (0 = unlimited)")
	fs.BoolVar(&opts.strictVarint, "strict-varint", false, "reject varints wider than 64 bits")
	fs.BoolVar(&opts.hex, "hex", false, "inputs are hex text")
	fs.BoolVar(&opts.failFast, "fail-fast", false, "stop at the first input that fails")
	fs.StringVar(&opts.logLevel, "log-level", "", "trace | debug | info | warn | error | off")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: protodump [flags] FILE...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}
	return opts, fs, nil
}

// loadConfig layers flags that were set explicitly over file and env config
func loadConfig(opts options, fs *flag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "groups":
			cfg.Groups = opts.groups
		case "max-depth":
			cfg.MaxDepth = opts.maxDepth
		case "strict-varint":
			if opts.strictVarint {
				cfg.Varint = "reject"
			} else {
				cfg.Varint = "wrap"
			}
		case "hex":
			cfg.Hex = opts.hex
		case "fail-fast":
			cfg.FailFast = opts.failFast
		case "log-level":
			cfg.LogLevel = opts.logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(opts, fs)
	if err != nil {
		fmt.Fprintf(stderr, "protodump: %v\n", err)
		return 2
	}

	logger := logging.New(stderr, cfg.LogLevel, cfg.LogNoColor)
	dumper := protodump.New(cfg, logger)

	failed := 0
	files := fs.Args()
	for i, name := range files {
		if len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "==> %s <==\n", name)
		}
		if err := dumpFile(dumper, cfg, name, stdout, logger); err != nil {
			failed++
			fmt.Fprintf(stderr, "protodump: %s: %v\n", name, err)
			if cfg.FailFast {
				break
			}
		}
	}

	if failed > 0 {
		logger.Warn().Int("failed", failed).Int("total", len(files)).Msg("some inputs could not be decoded")
		return 1
	}
	return 0
}

func dumpFile(d *protodump.Dumper, cfg config.Config, name string, stdout io.Writer, logger zerolog.Logger) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	if cfg.Hex {
		if data, err = decodeHex(data); err != nil {
			return err
		}
	}
	logger.Debug().Str("file", name).Int("bytes", len(data)).Msg("read input")

	// Render into a buffer first so a failed input prints nothing.
	var out bytes.Buffer
	if err := d.Dump(&out, data); err != nil {
		return err
	}
	_, err = out.WriteTo(stdout)
	return err
}

// decodeHex accepts hex text with arbitrary whitespace and an optional 0x prefix
func decodeHex(text []byte) ([]byte, error) {
	s := strings.Join(strings.Fields(string(text)), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}
