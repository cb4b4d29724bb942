package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/thimc/led/internal/config"
	"github.com/thimc/led/internal/logger"
	"golang.org/x/term"
)

func main() { os.Exit(edMain(os.Args[1:])) }

func edMain(argv []string) int {
	flags := config.NewFlags(config.AppName, os.Stderr)
	args, err := flags.Parse(argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-p string] [-s] [file]\n", config.AppName)
		return 2
	}

	cfg, undecoded, cfgErr := config.Load(flags)
	if cfgErr != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", config.AppName, cfgErr)
	}
	out, closeLog, err := cfg.Logger.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", config.AppName, err)
		return 2
	}
	defer closeLog()
	logger.Init(logger.ParseLevel(cfg.Logger.Level), out)
	if cfgErr != nil {
		logger.Warnf("using default configuration: %v", cfgErr)
	}
	for _, key := range undecoded {
		logger.Warnf("config: unrecognized key %q", key)
	}

	prompt := cfg.Editor.Prompt
	if !flags.PromptSet() && !term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = ""
	}
	opts := []Option{
		WithPrompt(prompt),
		WithSilent(cfg.Editor.Silent),
		WithVerbose(cfg.Editor.Verbose),
	}
	if len(args) == 1 {
		opts = append(opts, WithFile(args[0]))
	}
	ed := NewEditor(opts...)
	if err := ed.Run(); err != nil {
		logger.Infof("last command failed: %v", err)
		return 1
	}
	return 0
}
