package env

import (
	"club_backend/internal/config"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultPageSize      = 20
	defaultStartingScore = 25000
)

type quizFileConfig struct {
	Quiz struct {
		PageSize      int `yaml:"page_size"`
		StartingScore int `yaml:"starting_score"`
	} `yaml:"quiz"`
}

type quizConfig struct {
	pageSize      int
	startingScore int
}

// NewQuizConfigFromYAML reads quiz settings from the yaml config file;
// missing values fall back to defaults.
func NewQuizConfigFromYAML(path string) (config.QuizConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fileCfg quizFileConfig
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return nil, err
	}

	cfg := &quizConfig{
		pageSize:      fileCfg.Quiz.PageSize,
		startingScore: fileCfg.Quiz.StartingScore,
	}
	if cfg.pageSize <= 0 {
		cfg.pageSize = defaultPageSize
	}
	if cfg.startingScore <= 0 {
		cfg.startingScore = defaultStartingScore
	}

	return cfg, nil
}

func (cfg *quizConfig) PageSize() int {
	return cfg.pageSize
}

func (cfg *quizConfig) StartingScore() int {
	return cfg.startingScore
}
