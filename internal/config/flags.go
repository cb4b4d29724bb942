package config

import (
	"flag"
	"fmt"
	"io"
)

// Flags holds the values parsed from the command line.
type Flags struct {
	ConfigFilePath string
	Prompt         string
	Silent         bool
	LogLevel       string
	LogFilePath    string

	fs *flag.FlagSet
}

// NewFlags defines the command line flags on a new flag set named
// name. Usage and parse errors are written to output.
func NewFlags(name string, output io.Writer) *Flags {
	f := &Flags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(output)
	f.fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("path to the TOML configuration file (default %s)", DefaultPath()))
	f.fs.StringVar(&f.Prompt, "p", "", "use `string` as the command prompt")
	f.fs.BoolVar(&f.Silent, "s", false, "suppress byte counts")
	f.fs.StringVar(&f.LogLevel, "loglevel", "", "log level (debug, info, warn, error)")
	f.fs.StringVar(&f.LogFilePath, "logfile", "", "path of the log file ('-' for stderr)")
	f.fs.Usage = func() {
		fmt.Fprintf(output, "usage: %s [-p string] [-s] [file]\n", name)
		f.fs.PrintDefaults()
	}
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// PromptSet reports whether the prompt was given on the command line.
func (f *Flags) PromptSet() bool { return f.isSet("p") }

func (f *Flags) isSet(name string) bool {
	var set bool
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// ApplyOverrides updates cfg with the flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "p":
			cfg.Editor.Prompt = f.Prompt
		case "s":
			cfg.Editor.Silent = f.Silent
		case "loglevel":
			if f.LogLevel != "" {
				cfg.Logger.Level = f.LogLevel
			}
		case "logfile":
			cfg.Logger.File = f.LogFilePath
		}
	})
}
