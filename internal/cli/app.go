package cli

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/tebeka/atexit"

	"github.com/hammamikhairi/ottobar/internal/actuator"
	"github.com/hammamikhairi/ottobar/internal/chime"
	"github.com/hammamikhairi/ottobar/internal/config"
	"github.com/hammamikhairi/ottobar/internal/domain"
	"github.com/hammamikhairi/ottobar/internal/engine"
	"github.com/hammamikhairi/ottobar/internal/logger"
	"github.com/hammamikhairi/ottobar/internal/recipe"
	"github.com/hammamikhairi/ottobar/internal/report"
	"github.com/hammamikhairi/ottobar/internal/storage"
)

// app is the wired set of collaborators a command works with.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	recipes *recipe.MemorySource
	store   *storage.MemoryStore
	bank    *actuator.Bank
	chime   *chime.Reporter
	sleep   func(time.Duration)

	closers []func()
}

// newApp loads config, logging and the catalog. A non-empty catalog path
// replaces the configured one. Hardware is opened separately with openBank
// so read-only commands never touch the pumps.
func newApp(opts *RootOptions, catalog string) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Sim {
		cfg.Driver = config.DriverSim
	}
	if opts.NoChime {
		cfg.Chime = false
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if catalog != "" {
		cfg.Catalog = catalog
	}

	a := &app{cfg: cfg, sleep: opts.sleep}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if opts.Verbose {
		level = logger.LevelVerbose
	}
	if opts.Quiet {
		level = logger.LevelOff
	}

	// Direct logs to a file by default so the terminal stays clean.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		if dir := filepath.Dir(cfg.LogFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not create log directory %s: %v\n", dir, err)
			}
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			a.closers = append(a.closers, func() { f.Close() })
		}
	}

	// Third-party libraries log through the standard logger.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	a.log = logger.New(level, logOut)
	a.store = storage.NewMemoryStore(a.log)

	if cfg.Catalog == "" {
		a.recipes = recipe.NewMemorySource(a.log)
	} else {
		src, err := recipe.LoadFile(cfg.Catalog, a.log)
		if err != nil {
			a.close()
			return nil, err
		}
		a.recipes = src
	}

	return a, nil
}

// openBank opens the configured output lines and drives them all OFF. The
// bank is closed (all OFF, no further ON writes) on close, on
// atexit.Exit, and on SIGINT/SIGTERM.
func (a *app) openBank() error {
	var lines []actuator.Line
	switch a.cfg.Driver {
	case config.DriverGPIO:
		gpioLines, err := actuator.OpenGPIO(a.cfg.Lines)
		if err != nil {
			return err
		}
		lines = gpioLines
	default:
		sims := make([]*actuator.SimLine, len(a.cfg.Lines))
		for i, name := range a.cfg.Lines {
			sims[i] = actuator.NewSimLine(name)
		}
		lines = actuator.AsLines(sims)
	}

	bank, err := actuator.Open(lines, a.log)
	if err != nil {
		// Whatever lines were reachable are already OFF.
		return err
	}
	a.bank = bank
	a.log.Info("opened %d %s lines", bank.Size(), a.cfg.Driver)
	a.log.Debug("pump lines: %s", strings.Join(bank.Names(), ", "))

	atexit.Register(a.closeBank)
	a.closers = append(a.closers, a.closeBank)
	a.trapSignals()

	problems, err := recipe.CheckActuators(context.Background(), a.recipes, bank.Size())
	if err != nil {
		return err
	}
	for _, p := range problems {
		a.log.Warn("catalog: %v", p)
	}
	return nil
}

// closeBank latches the bank closed. A job still pouring on another
// goroutine then aborts on its next ON write instead of restarting a pump.
func (a *app) closeBank() {
	if err := a.bank.Close(); err != nil {
		a.log.Error("closing pumps: %v", err)
	}
}

// trapSignals forces every pump off and exits when the process is
// interrupted, even mid-pour.
func (a *app) trapSignals() {
	sigCh := make(chan os.Signal, 1)
	stop := make(chan struct{})
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			a.log.Warn("received %s, shutting down", sig)
			atexit.Exit(130)
		case <-stop:
		}
	}()

	a.closers = append(a.closers, func() {
		signal.Stop(sigCh)
		close(stop)
	})
}

// setupChime builds the chime reporter. Audio failures only disable it.
func (a *app) setupChime() {
	if !a.cfg.Chime {
		return
	}
	var sink chime.Sink
	if p, err := chime.NewPlayer(a.log.Named("audio")); err != nil {
		a.log.Warn("audio unavailable, chime disabled: %v", err)
	} else {
		sink = p
	}
	a.chime = chime.NewReporter(sink, a.log)
}

// newEngine wires the engine with the given notifier plus the chime.
func (a *app) newEngine(notifier domain.Notifier) *engine.Engine {
	a.setupChime()

	reporters := report.Multi{report.NewNotifierReporter(notifier, a.log)}
	if a.chime != nil {
		reporters = append(reporters, a.chime)
	}

	opts := []engine.Option{engine.WithReporter(reporters)}
	if a.sleep != nil {
		opts = append(opts, engine.WithSleep(a.sleep))
	}
	return engine.New(a.recipes, a.bank, a.store, a.log, opts...)
}

// close releases everything in reverse order, waiting for a chime in
// flight first.
func (a *app) close() {
	if a.chime != nil {
		a.chime.Wait()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
