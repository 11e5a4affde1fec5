// Package logging wraps "github.com/op/go-logging" so each package can grab
// a preconfigured Logger in one line instead of wiring backends itself.
package logging

import (
	"log"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/util"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger
	uciLog      *logging.Logger
	uciLogFile  *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
	uciFormat      = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
	uciLog = logging.MustGetLogger("uci")
}

// GetLog returns the standard Logger, backed by stdout at config.LogLevel.
func GetLog() *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the Logger used inside the search goroutine, backed
// by stdout at config.SearchLogLevel.
func GetSearchLog() *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetTestLog returns the Logger used by _test.go files, backed by stdout at
// config.TestLogLevel.
func GetTestLog() *logging.Logger {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(leveled)
	return testLog
}

// GetUciLog returns a Logger that mirrors every UCI protocol line to stdout
// and, if config.Settings.Log.LogPath can be resolved or created, to
// <LogPath>/<exe>_uci.log.
func GetUciLog() *logging.Logger {
	backend1 := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), uciFormat))
	backend1.SetLevel(logging.DEBUG, "")

	dir, err := util.ResolveCreateFolder(config.Settings.Log.LogPath)
	if err != nil {
		log.Println("uci log folder could not be created:", err)
		uciLog.SetBackend(backend1)
		return uciLog
	}
	exe, err := os.Executable()
	if err != nil {
		exe = "corvid"
	}
	logFilePath := filepath.Join(dir, filepath.Base(exe)+"_uci.log")
	uciLogFile, err = os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("uci log file could not be created:", err)
		uciLog.SetBackend(backend1)
		return uciLog
	}
	backend2 := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(uciLogFile, "", log.Lmsgprefix), uciFormat))
	backend2.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(logging.SetBackend(backend1, backend2))
	return uciLog
}
