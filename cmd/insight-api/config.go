package main

import (
	"flag"
	"io"
	"os"
	"strings"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	configPath
	opaPath
	allowedOrigins
)

func parseExternalConfig(flags FlagMap) FlagMap {
	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	flag.Func("config", "path to the insight client configuration file", apply(configPath))
	flag.Func("policies", "path to the authorization policy file", apply(opaPath))
	flag.Func("origins", "comma separated list of allowed cors origins", apply(allowedOrigins))
	flag.Parse()

	return flags
}

func origins(flags FlagMap) []string {
	if flags[allowedOrigins] == "" {
		return []string{}
	}
	return strings.Split(flags[allowedOrigins], ",")
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
