// Package cli wires the workbench's independently-testable packages
// (settings, workspace, command, keyboard, pty, autosave) into a single
// running process and exposes them to the Cobra command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vilosource/viloxterm/internal/application/port"
	"github.com/vilosource/viloxterm/internal/application/usecase"
	"github.com/vilosource/viloxterm/internal/command"
	"github.com/vilosource/viloxterm/internal/idgen"
	"github.com/vilosource/viloxterm/internal/infrastructure/filesystem"
	loggingadapter "github.com/vilosource/viloxterm/internal/infrastructure/logging"
	"github.com/vilosource/viloxterm/internal/infrastructure/persistence"
	"github.com/vilosource/viloxterm/internal/infrastructure/snapshot"
	"github.com/vilosource/viloxterm/internal/keyboard"
	"github.com/vilosource/viloxterm/internal/logging"
	"github.com/vilosource/viloxterm/internal/pty"
	"github.com/vilosource/viloxterm/internal/settings"
	"github.com/vilosource/viloxterm/internal/workspace"
)

// serviceLocator is the composition root's map-backed command.ServiceLocator:
// named services are registered once at startup, and commands resolve them
// by name through the narrow interfaces internal/command declares, never by
// importing this package.
type serviceLocator map[string]any

func (s serviceLocator) Service(name string) (any, bool) {
	v, ok := s[name]
	return v, ok
}

// App holds every long-lived dependency the CLI and its subcommands share.
type App struct {
	Settings   *settings.Manager
	Workspace  *workspace.Model
	Commands   *command.Registry
	Keymap     *keyboard.Registry
	Dispatcher *keyboard.Dispatcher
	PTY        *pty.Manager
	Autosave   *snapshot.Service
	Locator    command.ServiceLocator

	ctx        context.Context
	logCleanup func()
}

// NewApp builds every subsystem, restores the last persisted workspace if
// one exists, and returns a ready-to-run App. Callers must call Close on
// shutdown to flush logs and the final autosave.
func NewApp(opts settings.Options) (*App, error) {
	opts = settings.ApplyEnv(opts)

	logLevel := "info"
	if opts.Debug {
		logLevel = "debug"
	}
	logging.InitStartupTrace(logLevel)
	trace := logging.Trace()
	trace.Mark("settings_load_start")

	mgr := settings.NewManager()
	if err := mgr.Load(opts); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	doc := mgr.Get()
	trace.Mark("settings_loaded")
	logDir, logDirErr := defaultLogDir()
	fileLoggingEnabled := logDirErr == nil && !truthyEnv("APP_NO_FILE_LOG")
	var sessionLogger port.SessionLogger = loggingadapter.NewSessionLoggerAdapter()
	logger, logCleanup, logErr := sessionLogger.CreateLogger(context.Background(), port.SessionLogConfig{
		Level:         logLevel,
		Format:        "console",
		TimeFormat:    "15:04:05",
		LogDir:        logDir,
		WriteToStderr: true,
		EnableFileLog: fileLoggingEnabled,
		MaxSizeMB:     10,
		MaxBackups:    5,
		MaxAgeDays:    0,
	})
	if logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging unavailable: %v\n", logErr)
	}
	ctx := logging.WithContext(context.Background(), logger)
	trace.UpdateLogger(&logger)
	trace.Mark("logger_ready")
	logging.SetupCrashHandler(&logger)

	if err := mgr.Watch(); err != nil {
		logger.Warn().Err(err).Msg("settings file watch unavailable")
	}

	idFactory := idgen.New("")
	model := workspace.NewModel(idFactory.Func())
	trace.Mark("workspace_model_ready")

	ptyManager := pty.NewManager(pty.NewDefaultBackend(), idgen.New("pty").Func())

	registry := keyboard.NewRegistry()
	bundle, ok := keyboard.Bundle(keyboard.KeymapDefault)
	if !ok {
		return nil, fmt.Errorf("default keymap bundle not found")
	}
	registry.LoadKeymap(bundle)
	for commandID, sequence := range doc.KeyboardShortcuts {
		if sequence == "" {
			continue
		}
		seq, parseOK := keyboard.ParseSequence(sequence)
		if !parseOK {
			continue
		}
		registry.Register(keyboard.Shortcut{
			ID:        "user." + commandID,
			Sequence:  seq,
			CommandID: commandID,
			Source:    keyboard.SourceUser,
		})
	}
	dispatcher := keyboard.NewDispatcher(registry)
	if doc.Performance.ChordTimeoutMs > 0 {
		dispatcher.SetTimeout(time.Duration(doc.Performance.ChordTimeoutMs) * time.Millisecond)
	}

	stateDir, err := settings.DefaultDir()
	if err != nil {
		return nil, fmt.Errorf("resolve workspace state directory: %w", err)
	}
	if opts.SettingsDir != "" {
		stateDir = opts.SettingsDir
	}
	store := persistence.NewFileWorkspaceStateStore(filesystem.New(), stateDir)
	snapshotUC := usecase.NewSnapshotSessionUseCase(store)
	restoreUC := usecase.NewRestoreSessionUseCase(store)
	autosave := snapshot.NewService(snapshotUC, model, doc.Performance.AutosaveIntervalMs)
	autosave.Start(ctx)

	commands := command.NewRegistry()
	command.RegisterBuiltins(commands)

	adapter := snapshot.NewCommandAdapter(ctx, autosave, model, restoreUC)
	locator := serviceLocator{
		"settings": mgr,
		"autosave": adapter,
	}

	if err := adapter.Restore(); err != nil {
		logger.Warn().Err(err).Msg("no workspace state restored, starting fresh")
	}
	trace.Mark("workspace_state_restored")

	dispatcher.OnSignal(func(sig keyboard.Signal) {
		if sig.Kind != keyboard.SignalShortcutTriggered {
			return
		}
		result := commands.Execute(sig.CommandID, command.Context{Model: model, ServiceLocator: locator}, nil)
		if result.Status == command.StatusFailure {
			logging.FromContext(ctx).Warn().Str("command", sig.CommandID).Err(result.Err).Msg("shortcut command failed")
		}
	})

	mgr.OnShortcutChange(func(commandID, sequence string) {
		registry.Unregister("user." + commandID)
		if sequence == "" {
			return
		}
		seq, parseOK := keyboard.ParseSequence(sequence)
		if !parseOK {
			return
		}
		registry.Register(keyboard.Shortcut{
			ID:        "user." + commandID,
			Sequence:  seq,
			CommandID: commandID,
			Source:    keyboard.SourceUser,
		})
	})

	trace.Mark("app_ready")
	trace.Finish()

	return &App{
		Settings:   mgr,
		Workspace:  model,
		Commands:   commands,
		Keymap:     registry,
		Dispatcher: dispatcher,
		PTY:        ptyManager,
		Autosave:   autosave,
		Locator:    locator,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Ctx returns the application context carrying the structured logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// CommandContext builds a fresh command.Context bound to this app's model
// and service locator, ready for Commands.Execute.
func (a *App) CommandContext() command.Context {
	return command.Context{Model: a.Workspace, ServiceLocator: a.Locator}
}

// Close flushes the final autosave, stops the settings watcher, and closes
// the log sink, in that order.
func (a *App) Close() error {
	if err := a.Autosave.Stop(a.ctx); err != nil {
		logging.FromContext(a.ctx).Error().Err(err).Msg("final autosave failed")
	}
	closeErr := a.Settings.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return closeErr
}

func defaultLogDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "viloxterm", "logs"), nil
}

func truthyEnv(name string) bool {
	v := os.Getenv(name)
	return v == "1" || v == "true" || v == "yes"
}
