package main

import (
	"context"
	"fmt"

	"github.com/jingkaihe/gha-docgen/pkg/docgen"
	"github.com/jingkaihe/gha-docgen/pkg/logger"
	"github.com/jingkaihe/gha-docgen/pkg/presenter"
	"github.com/jingkaihe/gha-docgen/pkg/render"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// GenerateConfig holds the resolved configuration of a generation run
type GenerateConfig struct {
	ActionPath  string
	Style       render.Style
	Files       []string
	Excludes    []string
	Check       bool
	Diff        bool
	Concurrency int
}

// NewGenerateConfig creates a new GenerateConfig with default values
func NewGenerateConfig() *GenerateConfig {
	return &GenerateConfig{
		Style:       render.DefaultStyle,
		Files:       []string{docgen.DefaultTarget},
		Concurrency: docgen.DefaultConcurrency,
	}
}

// Options converts the configuration into runner options rooted at dir.
func (c *GenerateConfig) Options(dir string) docgen.Options {
	return docgen.Options{
		Dir:         dir,
		ActionPath:  c.ActionPath,
		Style:       c.Style,
		Files:       c.Files,
		Excludes:    c.Excludes,
		Check:       c.Check,
		Diff:        c.Diff,
		Concurrency: c.Concurrency,
	}
}

// getGenerateConfig resolves flags, environment and config file values held
// by v. Positional arguments take precedence over the configured files. The
// style is validated here so that a bad value fails before any file is read.
func getGenerateConfig(v *viper.Viper, args []string) (*GenerateConfig, error) {
	config := NewGenerateConfig()

	if s := v.GetString("style"); s != "" {
		style, err := render.ParseStyle(s)
		if err != nil {
			return nil, errors.Errorf(`Error invalid "--style" flag value: %s`, err)
		}
		config.Style = style
	}

	config.ActionPath = v.GetString("action")
	config.Excludes = v.GetStringSlice("exclude")
	config.Check = v.GetBool("check")
	config.Diff = v.GetBool("diff")
	if concurrency := v.GetInt("concurrency"); concurrency > 0 {
		config.Concurrency = concurrency
	}

	switch {
	case len(args) > 0:
		config.Files = args
	case len(v.GetStringSlice("files")) > 0:
		config.Files = v.GetStringSlice("files")
	}

	return config, nil
}

func runGenerate(ctx context.Context, config *GenerateConfig) error {
	r, err := docgen.NewRunner(config.Options("."))
	if err != nil {
		return err
	}

	logger.G(ctx).WithField("style", config.Style).WithField("files", config.Files).Debug("generating docs")

	result, err := r.Run(ctx)
	if result != nil {
		reportResult(result, config)
	}
	return err
}

// reportResult prints what happened to every document of a run.
func reportResult(result *docgen.Result, config *GenerateConfig) {
	for _, doc := range result.Documents {
		if doc.Markers == 0 {
			presenter.Warning(fmt.Sprintf("%s: no gha-docgen markers found", doc.Path))
			continue
		}
		if config.Diff || config.Check {
			presenter.Diff(doc.Diff)
		}

		switch {
		case !doc.Changed:
			presenter.Info(fmt.Sprintf("%s is up to date", doc.Path))
		case config.Check:
			presenter.Warning(fmt.Sprintf("%s is out of date", doc.Path))
		default:
			presenter.Success(fmt.Sprintf("Updated %s from %s", doc.Path, result.ActionPath))
		}
	}
}
