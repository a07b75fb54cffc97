// Copyright 2025 The WordRank Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the WordRank autocomplete server and its CLI [DBG] mode.

WordRank answers prefix queries over a fixed vocabulary of weighted words.
The vocabulary is loaded once, sorted, and then queried with two binary
searches that bound the run of words sharing the prefix, followed by a
bounded top-k selection over that run.

# Usage

Serve a text dictionary over msgpack IPC:

	wordrank -data words.txt

Serve a directory of binary chunks (dict_0001.bin, dict_0002.bin.zst, ...):

	wordrank -data data/ -chunks 4

Query interactively:

	wordrank -c -data words.txt -limit 5

Convert a text dictionary to a compressed binary chunk:

	wordrank -data words.txt -pack data/dict_0001.bin.zst

# Configuration

Settings come from a TOML file (or YAML when the name ends in .yaml/.yml).
It is created with defaults under the user config dir when missing:

	[server]
	max_limit = 64
	default_limit = 10
	max_prefix = 60

	[dict]
	path = "data/"
	engine = "binary"
	max_chunks = 0

	[cli]
	default_limit = 10
	show_weights = true

Command line flags override the file.

# Command Line Flags

	-data string     dictionary file or chunk directory
	-config string   config file path
	-engine string   "binary" (sorted array) or "trie" (Patricia trie)
	-chunks int      number of chunk files to load, 0 for all
	-limit int       matches shown in CLI mode
	-pack string     write the loaded vocabulary as a binary chunk and exit
	-c               run the CLI instead of the server
	-d               debug logging
	-version         print the version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordrank/internal/cli"
	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/bastiangx/wordrank/pkg/config"
	"github.com/bastiangx/wordrank/pkg/dictionary"
	"github.com/bastiangx/wordrank/pkg/server"
	"github.com/bastiangx/wordrank/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordrank"
	gh      = "https://github.com/bastiangx/wordrank"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", defaults.Dict.Path, "Dictionary file or directory of chunk files")
	configPath := flag.String("config", "", "Path to a TOML or YAML config file")
	engine := flag.String("engine", defaults.Dict.Engine, "Index engine: binary or trie")
	maxChunks := flag.Int("chunks", defaults.Dict.MaxChunks, "Number of chunk files to load (0 for all)")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of matches to show in CLI mode")
	packPath := flag.String("pack", "", "Write the loaded vocabulary as a binary chunk file and exit")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	defaultConfigPath := ""
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
	} else {
		defaultConfigPath = pathResolver.GetConfigPath("config.toml")
	}

	appConfig, usedConfig := config.LoadConfigWithPriority(*configPath, defaultConfigPath)
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedConfig))

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			appConfig.Dict.Path = *dataPath
		case "engine":
			appConfig.Dict.Engine = *engine
		case "chunks":
			appConfig.Dict.MaxChunks = *maxChunks
		case "limit":
			appConfig.CLI.DefaultLimit = *limit
		}
	})
	if err := appConfig.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	resolvedData := appConfig.Dict.Path
	if pathResolver != nil {
		resolvedData = pathResolver.GetDataPath(appConfig.Dict.Path)
	}
	log.Debugf("Using data at: %s", resolvedData)

	vocab, err := dictionary.Load(resolvedData, appConfig.Dict.MaxChunks)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	if *packPath != "" {
		if err := dictionary.SaveChunk(*packPath, vocab); err != nil {
			log.Fatalf("Failed to write chunk: %v", err)
		}
		log.Infof("Wrote %d words to %s", vocab.Len(), *packPath)
		return
	}

	completer, err := buildCompleter(appConfig.Dict.Engine, vocab)
	if err != nil {
		log.Fatalf("Failed to build index: %v", err)
	}
	log.Debug("Index ready", "engine", appConfig.Dict.Engine, "words", vocab.Len())

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(completer, appConfig.CLI.DefaultLimit, appConfig.CLI.ShowWeights)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// buildCompleter builds the index engine named in the config
func buildCompleter(engine string, vocab *dictionary.Vocabulary) (suggest.Autocompleter, error) {
	if engine == config.EngineTrie {
		ti, err := suggest.NewTrieIndex(vocab.Words, vocab.Weights)
		if err != nil {
			return nil, err
		}
		return ti, nil
	}

	idx, err := suggest.Build(vocab.Words, vocab.Weights)
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// printVersion renders the version banner on stderr.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ WordRank ] ranked prefix completions from a sorted vocabulary")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
