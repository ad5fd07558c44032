package model

import "time"

// ----------------------------------------------------
// ================ Config ================

// LogConfig controls the global zerolog logger
type LogConfig struct {
	Level      string `default:"info"`
	Format     string `default:"console"` // console, json
	Output     string `default:"stderr"`  // stdout, stderr, file
	FilePath   string `split_words:"true" default:"logs/orderbot.log"`
	TimeFormat string `split_words:"true" default:"rfc3339"` // rfc3339, unix, iso8601
}

// MenuConfig points at the menu source
type MenuConfig struct {
	Path string `default:"menu_config.json"`
}

// SpeechConfig selects the speech collaborators
type SpeechConfig struct {
	Mode          string        `default:"console"` // console, command
	Voice         bool          `default:"true"`
	ListenCommand string        `split_words:"true"`
	SpeakCommand  string        `split_words:"true"`
	Timeout       time.Duration `default:"30s"`
}

// TranscriptConfig enables the optional per-session turn history
type TranscriptConfig struct {
	Enabled  bool          `default:"false"`
	RedisURL string        `split_words:"true"`
	TTL      time.Duration `default:"1h"`
	MaxTurns int           `split_words:"true" default:"10"`
}
