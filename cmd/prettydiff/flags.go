package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// multiFlag collects repeated occurrences of a flag into a slice
type multiFlag []string

func (mf *multiFlag) String() string {
	return strings.Join(*mf, ",")
}

func (mf *multiFlag) Set(value string) error {
	*mf = append(*mf, value)
	return nil
}

type AppFlags struct {
	Mode             string
	Language         string
	SQLDialect       string
	BaseSlot         string
	ViewMode         string
	Theme            string
	InputFiles       []string
	OutputFile       string
	ReportDir        string
	Rotations        int
	GlobalConfigFile string
}

func ParseFlags() AppFlags {
	modeFlag := flag.String("mode", "", "Mode to run the tool: format or compare")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	languageFlag := flag.String("lang", "", "Input language: javascript, json, html, css, sql, xml or python")
	languageFlagAlias := flag.String("l", "", "Alias for -lang")

	dialectFlag := flag.String("dialect", "", "SQL dialect used when -lang is sql (overrides config file if set)")

	baseFlag := flag.String("base", "", "Buffer slot to compare against: A, B or C (default A)")
	baseFlagAlias := flag.String("b", "", "Alias for -base")

	viewFlag := flag.String("view", "", "Diff view mode: line-by-line or side-by-side (overrides config file if set)")
	themeFlag := flag.String("theme", "", "Report color theme: light or dark (overrides config file if set)")

	var inputFiles multiFlag
	flag.Var(&inputFiles, "in", "Path to an input file; repeat to fill buffers A, B and C in order")
	var inputFilesAlias multiFlag
	flag.Var(&inputFilesAlias, "i", "Alias for -in")

	outFlag := flag.String("out", "", "Output file for format mode; formatted text goes to stdout when unset")
	outFlagAlias := flag.String("o", "", "Alias for -out")

	reportDirFlag := flag.String("report-dir", "", "Directory for generated HTML reports (overrides config file if set)")

	rotateFlag := flag.Int("rotate", 0, "Number of buffer rotations to apply before comparing")
	rotateFlagAlias := flag.Int("r", 0, "Alias for -rotate")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	flag.Parse()

	flags := AppFlags{}

	if *modeFlag != "" {
		flags.Mode = *modeFlag
	} else if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	if *languageFlag != "" {
		flags.Language = *languageFlag
	} else if *languageFlagAlias != "" {
		flags.Language = *languageFlagAlias
	}

	flags.SQLDialect = *dialectFlag

	if *baseFlag != "" {
		flags.BaseSlot = *baseFlag
	} else if *baseFlagAlias != "" {
		flags.BaseSlot = *baseFlagAlias
	}

	flags.ViewMode = *viewFlag
	flags.Theme = *themeFlag

	if len(inputFiles) > 0 {
		flags.InputFiles = inputFiles
	} else if len(inputFilesAlias) > 0 {
		flags.InputFiles = inputFilesAlias
	}

	if *outFlag != "" {
		flags.OutputFile = *outFlag
	} else if *outFlagAlias != "" {
		flags.OutputFile = *outFlagAlias
	}

	flags.ReportDir = *reportDirFlag

	if *rotateFlag != 0 {
		flags.Rotations = *rotateFlag
	} else if *rotateFlagAlias != 0 {
		flags.Rotations = *rotateFlagAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if flags.Mode == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] --mode argument is required (format or compare)")
		os.Exit(2)
	}
	if flags.Language == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] --lang argument is required (javascript, json, html, css, sql, xml or python)")
		os.Exit(2)
	}

	return flags
}
