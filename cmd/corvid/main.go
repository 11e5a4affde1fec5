// Command corvid is a UCI chess engine: it reads UCI protocol commands on
// stdin and writes responses to stdout, backed by the engine core under
// internal/.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	"github.com/corvidchess/corvid/internal/movegen"
	"github.com/corvidchess/corvid/internal/position"
	"github.com/corvidchess/corvid/internal/uci"
)

// out formats diagnostic numbers (nps, node counts) with thousands
// separators so a human watching -perft output can read them at a glance.
var out = message.NewPrinter(language.English)

func main() {
	// defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()

	versionFlag := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logPath := flag.String("logpath", "", "directory for the UCI transcript log")
	bookPath := flag.String("bookpath", "", "path to opening book directory")
	bookFile := flag.String("bookfile", "", "opening book file name")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen (or the start position) and exit")
	fen := flag.String("fen", position.StartFen, "fen used by -perft")
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if *bookPath != "" {
		config.Settings.Search.BookPath = *bookPath
	}
	if *bookFile != "" {
		config.Settings.Search.BookFile = *bookFile
	}

	if *perftDepth > 0 {
		runPerft(*fen, *perftDepth)
		return
	}

	uci.NewHandler().Loop()
}

func runPerft(fen string, depth int) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad fen %q: %v\n", fen, err)
		os.Exit(1)
	}
	perft := movegen.NewPerft()
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := perft.Run(p, d)
		elapsed := time.Since(start)
		var nps uint64
		if s := elapsed.Seconds(); s > 0 {
			nps = uint64(float64(nodes) / s)
		}
		out.Printf("perft %d: %d nodes, captures %d, en passant %d, castles %d, promotions %d, checks %d, checkmates %d (%s, %d nps)\n",
			d, nodes, perft.Captures, perft.EnPassants, perft.Castles, perft.Promotions, perft.Checks, perft.Checkmates, elapsed.Round(time.Millisecond), nps)
	}
}

func printVersion() {
	out.Printf("corvid %s\n", uci.EngineName)
	out.Printf("  go version: %s\n", runtime.Version())
	out.Printf("  os/arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
