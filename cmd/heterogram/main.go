package main

import (
	"context"
	"os"

	"github.com/cwmfjord/heterogram"
	"github.com/cwmfjord/heterogram/internal/runner"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func main() {
	cliOpts := runner.ParseFlags()

	dictPath := cliOpts.Dictionary
	counterWidth := cliOpts.CounterWidth
	memoBudget := uint64(cliOpts.MemoBudgetBytes)

	if cliOpts.Config != "" {
		cfg, err := heterogram.NewConfig(cliOpts.Config)
		if err != nil {
			gologger.Fatal().Msgf("failed to read %v file got: %v", cliOpts.Config, err)
		}
		if cfg.Dictionary != "" && dictPath == runner.DefaultDictionaryPath {
			dictPath = cfg.Dictionary
		}
		if cfg.CounterWidth != 0 && counterWidth == 0 {
			counterWidth = cfg.CounterWidth
		}
		if cfg.MemoBudgetBytes != 0 && memoBudget == 0 {
			memoBudget = cfg.MemoBudgetBytes
		}
	}

	if !fileutil.FileExists(dictPath) {
		gologger.Fatal().Msgf("dictionary file not found: %v", dictPath)
	}
	raw, err := os.ReadFile(dictPath)
	if err != nil {
		gologger.Fatal().Msgf("failed to read dictionary %v got: %v", dictPath, err)
	}

	search, err := heterogram.New(&heterogram.Options{
		Dictionary:      raw,
		CounterWidth:    counterWidth,
		MemoBudgetBytes: memoBudget,
		Limit:           cliOpts.Limit,
	})
	if err != nil {
		gologger.Fatal().Msgf("failed to initialize search got: %v", err)
	}
	defer search.Close()

	if _, err := search.RunToWriter(context.Background(), os.Stdout); err != nil {
		gologger.Fatal().Msgf("search failed got: %v", err)
	}
}
