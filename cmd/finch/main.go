// Command finch runs the UCI shell over standard input/output. It needs no
// configuration to start: every field below has a hardcoded default, and
// finch.toml only overrides them when present.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"

	"github.com/colding10/finch/internal/engine"
	"github.com/colding10/finch/internal/store"
	"github.com/colding10/finch/internal/uci"
)

var log = logging.MustGetLogger("finch")

const (
	defaultHashMB    = 32
	defaultKillerMB  = 4
	defaultLogLevel  = "NOTICE"
	killerEntrySize  = 64 // approximate bytes per killer-table bucket, for MB->capacity conversion
)

type config struct {
	HashMB        int    `toml:"hash_mb"`
	KillerCacheMB int    `toml:"killer_cache_mb"`
	LogLevel      string `toml:"log_level"`
	PersistDir    string `toml:"persist_dir"`
}

func defaultConfig() config {
	return config{
		HashMB:        defaultHashMB,
		KillerCacheMB: defaultKillerMB,
		LogLevel:      defaultLogLevel,
		PersistDir:    "",
	}
}

func loadConfig(path string) config {
	cfg := defaultConfig()
	if path == "" {
		return cfg
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		log.Warningf("ignoring malformed config %s: %v", path, err)
		return defaultConfig()
	}
	return cfg
}

func setupLogging(level string) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:-8.8s} %{module}: %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.NOTICE
	}
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
}

func main() {
	configPath := flag.String("config", "finch.toml", "path to an optional TOML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(uci.Version)
		return
	}

	cfg := loadConfig(*configPath)
	setupLogging(cfg.LogLevel)

	killerCapacity := cfg.KillerCacheMB * 1024 * 1024 / killerEntrySize
	if killerCapacity <= 0 {
		killerCapacity = 1 << 16
	}
	searcher := engine.NewSearcher(cfg.HashMB, killerCapacity)

	var persist *store.Store
	if cfg.PersistDir != "" {
		s, err := store.Open(cfg.PersistDir)
		if err != nil {
			log.Errorf("could not open persistence dir %s: %v", cfg.PersistDir, err)
		} else {
			persist = s
			if err := persist.Load(searcher.Killer); err != nil {
				log.Warningf("could not load persisted killer table: %v", err)
			}
			defer persist.Close()
		}
	}

	log.Infof("finch starting, hash=%dMB killers=%d persist=%q", cfg.HashMB, killerCapacity, cfg.PersistDir)

	shell := uci.New(os.Stdout, searcher, persist)
	shell.Run(os.Stdin)
}
