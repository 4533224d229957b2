/*
File    : rugo/cmd/rugo/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional .rugo.yaml front-end configuration: nothing
// here changes parse semantics, only what this binary prints.
type Config struct {
	// Dump, when true, writes the binary tree (serialize.Dump) to
	// DumpPath instead of printing the human-readable AST dump.
	Dump bool `yaml:"dump"`
	// DumpPath is where the binary dump is written when Dump is true.
	// Defaults to "rugo.out" when the key is absent from the file.
	DumpPath string `yaml:"dump_path"`
	// Color disables fatih/color output when set to false, e.g. for
	// piping into a file or another tool.
	Color bool `yaml:"color"`
}

func defaultConfig() Config {
	return Config{Dump: false, DumpPath: "rugo.out", Color: true}
}

// loadConfig reads .rugo.yaml from the current directory if present.
// A missing file is not an error: the defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
