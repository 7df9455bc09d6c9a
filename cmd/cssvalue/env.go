package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cssvalue/internal/observ"
	"cssvalue/internal/prof"
	"cssvalue/internal/trace"
)

// env is the resolved global state of one command invocation.
type env struct {
	ctx            context.Context
	out            io.Writer
	errOut         io.Writer
	config         *projectConfig
	color          toggle
	quiet          bool
	timings        bool
	maxDiagnostics int
	timer          *observ.Timer
	cleanups       []func()
}

// setupEnv reads the persistent flags, loads cssvalue.toml and starts
// tracing and profiling. Callers must defer env.close.
func setupEnv(cmd *cobra.Command) (*env, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := resolveConfig(configPath, wd)
	if err != nil {
		return nil, err
	}

	e := &env{
		ctx:    cmd.Context(),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		config: cfg,
	}
	if e.ctx == nil {
		e.ctx = context.Background()
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !flags.Changed("color") && cfg.Output.Color != "" {
		colorFlag = cfg.Output.Color
	}
	if e.color, err = readToggle("color", colorFlag); err != nil {
		return nil, err
	}

	if e.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if e.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if e.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !flags.Changed("max-diagnostics") && cfg.Check.MaxDiagnostics != nil {
		e.maxDiagnostics = *cfg.Check.MaxDiagnostics
	}
	if e.timings {
		e.timer = observ.NewTimer()
	}

	if err := e.setupProfiling(cmd); err != nil {
		return nil, err
	}
	if err := e.setupTracing(cmd); err != nil {
		e.close()
		return nil, err
	}
	return e, nil
}

// close runs cleanups in reverse order. Safe to call more than once.
func (e *env) close() {
	for i := len(e.cleanups) - 1; i >= 0; i-- {
		e.cleanups[i]()
	}
	e.cleanups = nil
}

func (e *env) setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPUPath, err = flags.GetString("cpuprofile"); err != nil {
		return fmt.Errorf("failed to get cpuprofile flag: %w", err)
	}
	if cfg.MemPath, err = flags.GetString("memprofile"); err != nil {
		return fmt.Errorf("failed to get memprofile flag: %w", err)
	}
	if cfg.TracePath, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	session, err := prof.Start(cfg)
	if err != nil {
		return err
	}
	e.cleanups = append(e.cleanups, func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(e.errOut, "profile: %v\n", err)
		}
	})
	return nil
}

func (e *env) setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	output, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeatInterval, err := flags.GetDuration("trace-heartbeat")
	if err != nil {
		return fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace без уровня включает фазы
	if output != "" && !flags.Changed("trace-level") {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		e.ctx = trace.WithTracer(e.ctx, trace.Nop)
		return nil
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return fmt.Errorf("invalid trace format: %w", err)
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return fmt.Errorf("invalid trace mode: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: output,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	e.ctx = trace.WithTracer(e.ctx, tracer)

	var heartbeat *trace.Heartbeat
	if heartbeatInterval > 0 {
		heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval)
	}

	e.cleanups = append(e.cleanups, func() {
		heartbeat.Stop()
		// в режиме ring события выводятся только в конце
		if mode == trace.ModeRing {
			if ring := trace.RingOf(tracer); ring != nil {
				if err := ring.Dump(e.errOut, format); err != nil {
					fmt.Fprintf(e.errOut, "trace: dump error: %v\n", err)
				}
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(e.errOut, "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(e.errOut, "trace: close error: %v\n", err)
		}
	})
	return nil
}

// colorFor reports whether output written to w should be coloured.
func (e *env) colorFor(w io.Writer) bool { return e.color.enabledFor(w) }

// printTimings writes the phase summary to stderr when --timings is set.
func (e *env) printTimings() {
	if e.timer == nil {
		return
	}
	fmt.Fprint(e.errOut, e.timer.Summary())
}
