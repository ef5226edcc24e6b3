package internal

type Config struct {
	LogLevel         string `env:"LOG_LEVEL,default=info"`
	BadgerFilepath   string `env:"BADGER_FILEPATH,default=data/badger"`
	MaxContentLength int    `env:"MAX_CONTENT_LENGTH,default=10485760"`
	HistoryLimit     int    `env:"HISTORY_LIMIT,default=20"`
}
