// Package config holds globally available configuration, populated from
// defaults, a TOML config file, and command-line overrides in that order.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/corvidchess/corvid/internal/util"
)

var (
	// ConfFile is the path to the config file, relative to the working
	// directory unless absolute.
	ConfFile = "./config.toml"

	// LogLevel is the general log level (0 critical .. 5 debug).
	LogLevel = 3

	// SearchLogLevel is the log level for the search's own logger.
	SearchLogLevel = 3

	// TestLogLevel is the log level used by tests.
	TestLogLevel = 5

	// Settings is the configuration tree read from ConfFile.
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the config file (if present) and fills in defaults for
// anything it does not specify. Safe to call more than once; only the
// first call does any work.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("config file not found, using defaults:", err)
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file could not be parsed, using defaults:", err)
	}
	setupLog()
	setupSearch()
	setupEval()
	initialized = true
}

// String renders the current configuration for diagnostic logging.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Log config:\n")
	writeFields(&sb, reflect.ValueOf(&c.Log).Elem())
	sb.WriteString("\nSearch config:\n")
	writeFields(&sb, reflect.ValueOf(&c.Search).Elem())
	sb.WriteString("\nEval config:\n")
	writeFields(&sb, reflect.ValueOf(&c.Eval).Elem())
	return sb.String()
}

func writeFields(sb *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(sb, "%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
