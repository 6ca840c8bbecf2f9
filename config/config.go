package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the runtime configuration, read from VELO_* environment
// variables after an optional .env file is loaded.
type Config struct {
	RideLog      string `envconfig:"RIDE_LOG" default:"data/rides.tsv"`
	SegmentFile  string `envconfig:"SEGMENT_FILE" default:"data/segments.csv"`
	PlaceFile    string `envconfig:"PLACE_FILE" default:"data/places.txt"`
	AnalysisFile string `envconfig:"ANALYSIS_FILE" default:"analysis.yaml"`
	Port         string `envconfig:"PORT" default:"8080"`
	OpenBrowser  bool   `envconfig:"OPEN_BROWSER" default:"true"`
}

// Analysis tunes the derived statistics. It comes from the optional YAML
// file named by Config.AnalysisFile; fields absent there keep their defaults.
type Analysis struct {
	FitDegree        int   `yaml:"fit_degree"`
	EddingtonTargets []int `yaml:"eddington_targets"`
	ProgressYears    int   `yaml:"progress_years"`
}

// DefaultAnalysis are the values used when no analysis file is present.
func DefaultAnalysis() Analysis {
	return Analysis{
		FitDegree:        3,
		EddingtonTargets: []int{50, 62, 100},
		ProgressYears:    6,
	}
}

// Load reads .env (if present), the environment and the analysis file.
func Load() (Config, Analysis, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, Analysis{}, fmt.Errorf("failed to load .env file: %w", err)
		}
		log.Println("No .env file found, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("velo", &cfg); err != nil {
		return Config{}, Analysis{}, fmt.Errorf("failed to process environment: %w", err)
	}

	analysis, err := loadAnalysis(cfg.AnalysisFile)
	if err != nil {
		return Config{}, Analysis{}, err
	}
	return cfg, analysis, nil
}

func loadAnalysis(path string) (Analysis, error) {
	analysis := DefaultAnalysis()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return analysis, nil
	}
	if err != nil {
		return Analysis{}, fmt.Errorf("failed to read analysis file: %w", err)
	}
	if err := yaml.Unmarshal(data, &analysis); err != nil {
		return Analysis{}, fmt.Errorf("failed to parse analysis file: %w", err)
	}
	if analysis.FitDegree < 1 {
		return Analysis{}, fmt.Errorf("fit_degree must be at least 1, got %d", analysis.FitDegree)
	}
	return analysis, nil
}
