package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	ProjectRoot      string
	GlobalConfigFile string
	OutputFile       string
	StoreFindings    bool
	DiffPrevious     bool
	SarifOutput      bool
}

func ParseFlags() AppFlags {
	projectRoot := flag.String("root", "", "Path to the project root to scan.")
	projectRootAlias := flag.String("r", "", "Alias for -root")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	outputFile := flag.String("output", "", "Path to write the report JSON. Defaults to stdout.")
	outputFileAlias := flag.String("o", "", "Alias for -output")

	storeFindings := flag.Bool("store", false, "Persist scan findings to the configured Parquet store.")
	diffPrevious := flag.Bool("diff", false, "Compare the scan against the previous stored scan (implies -store).")
	sarifOutput := flag.Bool("sarif", false, "Also write a SARIF 2.1.0 report to the configured output directory.")

	flag.Parse()

	flags := AppFlags{
		StoreFindings: *storeFindings,
		DiffPrevious:  *diffPrevious,
		SarifOutput:   *sarifOutput,
	}

	if *projectRoot != "" {
		flags.ProjectRoot = *projectRoot
	} else if *projectRootAlias != "" {
		flags.ProjectRoot = *projectRootAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *outputFile != "" {
		flags.OutputFile = *outputFile
	} else if *outputFileAlias != "" {
		flags.OutputFile = *outputFileAlias
	}

	if flags.DiffPrevious {
		flags.StoreFindings = true
	}

	if flags.ProjectRoot == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] --root argument is required")
		os.Exit(1)
	}

	return flags
}
