// Package app implements the application layer for cmt.
package app

import (
	"context"

	"github.com/tanji-dg/cmt/internal/core/domain"
	"github.com/tanji-dg/cmt/internal/core/ports"
	"go.trai.ch/zerr"
)

// App wires the driver to the CLI: it resolves kit and variant
// selections, runs driver operations inside tracer spans, and forwards
// subprocess output to the logger.
type App struct {
	cfg      *domain.ProjectConfig
	driver   ports.Driver
	variants ports.VariantLoader
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new App instance.
func New(cfg *domain.ProjectConfig, driver ports.Driver, variants ports.VariantLoader, tracer ports.Tracer, logger ports.Logger) *App {
	return &App{
		cfg:      cfg,
		driver:   driver,
		variants: variants,
		tracer:   tracer,
		logger:   logger,
	}
}

// Options selects a kit and a variant for a configure pass. Empty
// fields leave the driver's current selection untouched.
type Options struct {
	Kit     string
	Variant string
}

// Configure applies the selected kit and variant, then configures.
func (a *App) Configure(ctx context.Context, opts Options) error {
	if err := a.apply(ctx, opts); err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "configure")
	code, err := a.driver.Configure(ctx, a.forwarder(span))
	return a.finish(span, domain.ErrConfigureFailed, code, err)
}

// CleanConfigure wipes the tool's cache and generated files, then
// configures from scratch.
func (a *App) CleanConfigure(ctx context.Context, opts Options) error {
	if err := a.apply(ctx, opts); err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "clean-configure")
	code, err := a.driver.CleanConfigure(ctx, a.forwarder(span))
	return a.finish(span, domain.ErrConfigureFailed, code, err)
}

// Build builds one target, configuring first when driver state demands it.
func (a *App) Build(ctx context.Context, target string) error {
	if a.driver.NeedsReconfigure() {
		if err := a.Configure(ctx, Options{}); err != nil {
			return err
		}
	}

	ctx, span := a.tracer.Start(ctx, "build "+target)
	sub, err := a.driver.Build(ctx, target, a.forwarder(span))
	if err != nil {
		span.End(err)
		return err
	}
	if sub == nil {
		err := zerr.Wrap(domain.ErrBuildFailed, "preflight check failed")
		span.End(err)
		return err
	}

	res, err := sub.Wait(ctx)
	if err != nil {
		span.End(err)
		return err
	}
	if res.ExitCode != 0 {
		err := zerr.With(zerr.With(domain.ErrBuildFailed, "exit_code", res.ExitCode), "target", target)
		span.End(err)
		return err
	}
	span.End(nil)
	return nil
}

// Targets returns the driver's last-discovered target list.
func (a *App) Targets() []domain.Target {
	return a.driver.Targets()
}

// Close flushes the tracer.
func (a *App) Close() error {
	return a.tracer.Close()
}

// apply resolves kit and variant names against the project
// configuration and pushes them into the driver.
func (a *App) apply(ctx context.Context, opts Options) error {
	if opts.Kit != "" {
		kit, ok := a.cfg.KitByName(opts.Kit)
		if !ok {
			return zerr.With(domain.ErrKitNotFound, "kit", opts.Kit)
		}
		if err := a.driver.SetKit(ctx, kit); err != nil {
			return err
		}
	}

	if opts.Variant != "" {
		declared, err := a.variants.Load(".")
		if err != nil {
			return err
		}
		variant, ok := declared[opts.Variant]
		if !ok {
			return zerr.With(domain.ErrVariantNotFound, "variant", opts.Variant)
		}
		a.driver.SetVariantOptions(variant)
	}
	return nil
}

// finish folds an exit code and a transport error into the app's error
// contract and completes the span.
func (a *App) finish(span ports.Span, sentinel error, code int, err error) error {
	if err != nil {
		span.End(err)
		return err
	}
	if code != 0 {
		failure := zerr.With(sentinel, "exit_code", code)
		span.End(failure)
		return failure
	}
	span.End(nil)
	return nil
}

func (a *App) forwarder(span ports.Span) ports.OutputConsumer {
	return &lineForwarder{logger: a.logger, span: span}
}

// lineForwarder is the app's OutputConsumer: every subprocess line goes
// to the logger and, when a span is recording, to the span's output.
type lineForwarder struct {
	logger ports.Logger
	span   ports.Span
}

func (f *lineForwarder) Output(line string) {
	f.logger.Info(line)
	_, _ = f.span.Write([]byte(line + "\n"))
}

func (f *lineForwarder) Error(line string) {
	f.logger.Warn(line)
	_, _ = f.span.Write([]byte(line + "\n"))
}
