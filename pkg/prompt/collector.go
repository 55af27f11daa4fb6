package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/inizio/initt/pkg/catalog"
	"github.com/inizio/initt/pkg/logging"
)

// Option configures a Collector.
type Option func(*Collector)

// WithDriver replaces the prompt driver (tests inject a scripted one).
func WithDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithLogger sets the sink collection warnings are reported to.
func WithLogger(logger logging.Logger) Option {
	return func(c *Collector) {
		c.logger = logging.OrNop(logger)
	}
}

// Collector walks a template's parameter specs and produces the context the
// materializer and hook runner consume.
type Collector struct {
	driver PromptDriver
	logger logging.Logger
}

// NewCollector builds a collector, defaulting to the survey driver.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		driver: NewSurveyDriver(),
		logger: logging.Nop{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Collect prompts for each declared parameter in order. Cancellation
// (ErrAborted or a done context) terminates collection; any other failure
// for a single parameter is logged and replaced with the spec's default.
// Specs with an unsupported kind are logged and skipped, leaving no entry
// in the context.
func (c *Collector) Collect(ctx context.Context, def catalog.Definition) (catalog.Context, error) {
	values := make(catalog.Context, len(def.Params))
	for _, spec := range def.Params {
		value, ok, err := c.ask(ctx, spec)
		if err != nil {
			if isFatal(err) {
				return nil, err
			}
			logging.Errorf(c.logger, "Param", "Error collecting parameter %s: %v", spec.Name, err)
			values[spec.Name] = spec.Default
			continue
		}
		if !ok {
			continue
		}
		values[spec.Name] = value
	}
	return values, nil
}

func (c *Collector) ask(ctx context.Context, spec catalog.ParamSpec) (any, bool, error) {
	message := spec.Message
	if message == "" {
		message = spec.Name
	}
	switch spec.Kind {
	case catalog.KindText:
		answer, err := c.driver.Input(ctx, InputConfig{
			Message: message,
			Default: defaultString(spec.Default),
		})
		return answer, true, err
	case catalog.KindSelect:
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      spec.Choices,
			DefaultIndex: indexOf(spec.Choices, defaultString(spec.Default)),
		})
		if err != nil {
			return nil, true, err
		}
		if idx < 0 || idx >= len(spec.Choices) {
			return nil, true, fmt.Errorf("prompt: selection out of range for %s", spec.Name)
		}
		return spec.Choices[idx], true, nil
	case catalog.KindConfirm:
		answer, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: defaultBool(spec.Default),
		})
		return answer, true, err
	case catalog.KindPath:
		answer, err := c.driver.Path(ctx, PathConfig{
			Message: message,
			Default: defaultString(spec.Default),
		})
		return answer, true, err
	default:
		logging.Warningf(c.logger, "Skip", "Unsupported question type: %s", spec.Kind)
		return nil, false, nil
	}
}

// SelectTemplate asks the user to pick one of the catalog's template names.
func (c *Collector) SelectTemplate(ctx context.Context, names []string) (string, error) {
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message: "Select project template type:",
		Options: names,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(names) {
		return "", fmt.Errorf("prompt: template selection out of range")
	}
	return names[idx], nil
}

// AskBasePath asks where the project should be created, defaulting to the
// current working directory.
func (c *Collector) AskBasePath(ctx context.Context) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return c.driver.Path(ctx, PathConfig{
		Message: "Select project creation path:",
		Default: wd,
	})
}

func isFatal(err error) bool {
	return errors.Is(err, ErrAborted) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func defaultString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}

func defaultBool(v any) bool {
	value, ok := v.(bool)
	return ok && value
}
