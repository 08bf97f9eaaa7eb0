package config

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Library  LibraryConfig  `yaml:"library"`
	Cache    CacheConfig    `yaml:"cache"`
	Output   OutputConfig   `yaml:"output"`
	Matcher  MatcherConfig  `yaml:"matcher"`
	Parser   ParserConfig   `yaml:"parser"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// LibraryConfig points at the songbase export to match against.
type LibraryConfig struct {
	Path string `yaml:"path" env:"LIBRARY_PATH" env-default:"library.json"`
}

// CacheConfig controls the persisted manual-selection cache.
type CacheConfig struct {
	Path string `yaml:"path" env:"CACHE_PATH" env-default:"selected_songs.json"`
}

// OutputConfig points at the deck artifact written for the renderer.
type OutputConfig struct {
	Path string `yaml:"path" env:"OUTPUT_PATH" env-default:"deck.json"`
}

// MatcherConfig tunes the fuzzy tier of the song matcher.
type MatcherConfig struct {
	MinScore      float64 `yaml:"min_score"      env:"MATCHER_MIN_SCORE"      env-default:"0.8"`
	MaxCandidates int     `yaml:"max_candidates" env:"MATCHER_MAX_CANDIDATES" env-default:"10"`
}

// ParserConfig tunes lyric sectioning.
type ParserConfig struct {
	MaxSectionLines int `yaml:"max_section_lines" env:"PARSER_MAX_SECTION_LINES" env-default:"9"`
}

// PipelineConfig controls how a run executes.
type PipelineConfig struct {
	NonInteractive bool `yaml:"non_interactive" env:"PIPELINE_NON_INTERACTIVE" env-default:"false"`
	ParseWorkers   int  `yaml:"parse_workers"   env:"PIPELINE_PARSE_WORKERS"   env-default:"4"`
}
