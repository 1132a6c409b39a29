package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Script ScriptConfig `yaml:"script"`
	Queue  QueueConfig  `yaml:"queue"`
	Runner RunnerConfig `yaml:"runner"`
	Log    LogConfig    `yaml:"log"`
}

// ScriptConfig はスクリプト入力に関する設定です。
type ScriptConfig struct {
	// Path はスクリプトファイルのパスです。"-" で標準入力を読みます。
	Path string `yaml:"path"`
}

// QueueConfig は JSON 形式のコマンド待ち行列に関する設定です。
// Path が設定されている場合、スクリプトの代わりに待ち行列を読み込みます。
type QueueConfig struct {
	Path string `yaml:"path"`
}

// RunnerConfig は実行ポリシーに関する設定です。
type RunnerConfig struct {
	// Policy は halt / echo / silent / failopen / failsafe のいずれかです。
	Policy string `yaml:"policy"`
	// Chronograph を真にすると、選択したポリシーを計時デコレータで包みます。
	Chronograph bool `yaml:"chronograph"`
}

// LogConfig はログ出力に関する設定です。
type LogConfig struct {
	Level string `yaml:"level"`
}

// Runner の Policy に指定できる値です。
const (
	PolicyHalt     = "halt"
	PolicyEcho     = "echo"
	PolicySilent   = "silent"
	PolicyFailOpen = "failopen"
	PolicyFailSafe = "failsafe"
)

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.Script.Path == "" && c.Queue.Path == "" {
		return fmt.Errorf("config: either script.path or queue.path must be set")
	}
	if c.Script.Path != "" && c.Queue.Path != "" {
		return fmt.Errorf("config: script.path and queue.path are mutually exclusive")
	}

	if c.Runner.Policy == "" {
		c.Runner.Policy = PolicyHalt
	}
	switch c.Runner.Policy {
	case PolicyHalt, PolicyEcho, PolicySilent, PolicyFailOpen, PolicyFailSafe:
	default:
		return fmt.Errorf("config: runner.policy must be one of halt, echo, silent, failopen, failsafe")
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	return nil
}
