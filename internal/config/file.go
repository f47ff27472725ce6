package config

import (
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the TOML layout. Pointer fields distinguish "absent"
// from the zero value so only keys present in the file override defaults.
//
//	[paths]
//	input = "textures"
//	output = "baked"
//
//	[processing]
//	workers = 8
//	source_extensions = ["tga", "png"]
//	sharpen_sigma = 1.0
//	psd = false
//
//	[logging]
//	file = "texbake.log"
//	verbose = true
//	color = "auto"
type fileConfig struct {
	Paths struct {
		Input  *string `toml:"input"`
		Output *string `toml:"output"`
	} `toml:"paths"`
	Processing struct {
		Workers          *int     `toml:"workers"`
		SourceExtensions []string `toml:"source_extensions"`
		SharpenSigma     *float64 `toml:"sharpen_sigma"`
		PSD              *bool    `toml:"psd"`
	} `toml:"processing"`
	Logging struct {
		File    *string `toml:"file"`
		Verbose *bool   `toml:"verbose"`
		Color   *string `toml:"color"`
	} `toml:"logging"`
}

// LoadFile reads the TOML file at path into cfg. Unknown keys are rejected.
// Every failure is an *ArgumentError.
func LoadFile(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return &ArgumentError{Arg: path, Msg: "open config", Err: err}
	}
	defer file.Close()

	var fc fileConfig
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fc); err != nil {
		return &ArgumentError{Arg: path, Msg: "parse config", Err: err}
	}

	fc.apply(cfg)
	cfg.ConfigFile = path
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if v := fc.Paths.Input; v != nil {
		cfg.InputDir = NormalizeDirArg(*v)
	}
	if v := fc.Paths.Output; v != nil {
		cfg.OutputDir = NormalizeDirArg(*v)
	}
	if v := fc.Processing.Workers; v != nil {
		cfg.Workers = *v
	}
	if len(fc.Processing.SourceExtensions) > 0 {
		cfg.SourceExtensions = append([]string(nil), fc.Processing.SourceExtensions...)
	}
	if v := fc.Processing.SharpenSigma; v != nil {
		cfg.SharpenSigma = *v
	}
	if v := fc.Processing.PSD; v != nil {
		cfg.GeneratePSD = *v
	}
	if v := fc.Logging.File; v != nil {
		cfg.LogFile = *v
	}
	if v := fc.Logging.Verbose; v != nil {
		cfg.Verbose = *v
	}
	if v := fc.Logging.Color; v != nil {
		cfg.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(*v)))
	}
}
