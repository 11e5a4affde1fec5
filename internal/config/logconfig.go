package config

// logConfiguration holds where engine/UCI log files are written. Levels
// themselves are controlled by the LogLevel/SearchLogLevel/TestLogLevel
// package vars in config.go rather than this struct.
type logConfiguration struct {
	LogPath string
}

func init() {
	Settings.Log.LogPath = "./logs"
}

func setupLog() {
}
