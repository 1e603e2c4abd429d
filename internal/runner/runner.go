package runner

import (
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	updateutils "github.com/projectdiscovery/utils/update"
)

// Options holds every CLI-derived value the search needs (C6).
type Options struct {
	// Dictionary is the single optional positional argument: the dictionary
	// file path. goflags has no positional-argument primitive, so it is
	// extracted from os.Args before the named flags are parsed.
	Dictionary string
	Config     string

	CounterWidth       int
	MemoBudgetBytes    int
	Limit              int
	Verbose            bool
	Silent             bool
	DisableUpdateCheck bool
}

// DefaultDictionaryPath mirrors heterogram.DefaultDictionaryPath without
// importing the root package here, keeping runner independent of it.
const DefaultDictionaryPath = "words.txt"

// ParseFlags extracts the positional dictionary path and the named flags.
func ParseFlags() *Options {
	opts := &Options{Dictionary: DefaultDictionaryPath}

	// Pull the bare positional argument (the one token not starting with
	// '-') out of os.Args before handing the rest to goflags, which only
	// understands named flags.
	var rest []string
	foundPositional := false
	for _, arg := range os.Args[1:] {
		if !foundPositional && !strings.HasPrefix(arg, "-") {
			opts.Dictionary = arg
			foundPositional = true
			continue
		}
		rest = append(rest, arg)
	}
	os.Args = append(os.Args[:1], rest...)

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Enumerates pangrammatic heterograms over a dictionary file.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVar(&opts.Config, "config", "", "heterogram yaml config file (overrides dictionary/counter-width defaults)"),
	)

	flagSet.CreateGroup("search", "Search",
		flagSet.IntVarP(&opts.CounterWidth, "counter-width", "cw", 0, "memo table counter width in bits: 16 or 32 (default: auto)"),
		flagSet.IntVarP(&opts.MemoBudgetBytes, "memo-budget", "mb", 0, "memo table memory budget in bytes before falling back to a disk-backed table (default: unlimited)"),
		flagSet.IntVarP(&opts.Limit, "limit", "l", 0, "stop after this many solutions (default: unlimited)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display heterogram version"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update heterogram to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic heterogram update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("heterogram")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("heterogram version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current heterogram version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
