package main

import (
	"bufio"
	"io"
	"os"

	"github.com/ian-shakespeare/libtok/internal/lexfile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("libtok", pflag.ExitOnError)
	configPath := flags.StringP("config", "c", "", "rule set file (yaml, toml, json or env)")
	flags.Bool("wide", false, "tokenize runes instead of bytes")
	flags.Bool("strict", false, "fail on input no rule classifies")
	flags.String("format", "text", "output format: text or json")
	flags.String("log-level", "info", "log level")
	_ = flags.Parse(os.Args[1:])

	config, err := lexfile.LoadConfig(*configPath, flags)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load rule set")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := lexfile.NewScanner(config, out, log.Logger)

	failed := false
	files := flags.Args()
	if len(files) == 0 {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot read stdin")
		}
		failed = !scanFile(scanner, "<stdin>", input)
	}

	for _, file := range files {
		input, err := os.ReadFile(file)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("cannot read file")
			failed = true
			continue
		}
		if !scanFile(scanner, file, input) {
			failed = true
		}
	}

	if failed {
		out.Flush()
		os.Exit(1)
	}
}

func scanFile(scanner *lexfile.Scanner, name string, input []byte) bool {
	if err := scanner.Scan(name, input); err != nil {
		log.Error().Err(err).Str("file", name).Msg("cannot tokenize file")
		return false
	}
	return true
}
