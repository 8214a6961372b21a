package logging

import (
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/rs/zerolog"
)

// SetupCrashHandler installs a background goroutine that logs a fatal
// signal's stack trace, Go runtime, and memory stats through logger before
// the process dies, rather than losing that context to a bare core dump.
func SetupCrashHandler(logger *zerolog.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c,
		syscall.SIGSEGV,
		syscall.SIGABRT,
		syscall.SIGFPE,
		syscall.SIGBUS,
		syscall.SIGILL,
	)

	go func() {
		sig := <-c
		handleCrash(logger, sig)
	}()
}

// SetupPanicRecovery returns a func to `defer` at the top of main that logs
// a panic's stack trace through logger before letting it propagate.
func SetupPanicRecovery(logger *zerolog.Logger) func() {
	return func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("recovered panic")
			panic(r)
		}
	}
}

func handleCrash(logger *zerolog.Logger, sig os.Signal) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	// zerolog's Fatal level calls os.Exit(1) itself on Msg; use Error so we
	// control the exit code below (128+signal, the shell convention).
	logger.Error().
		Str("signal", sig.String()).
		Bytes("stack", debug.Stack()).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("num_cpu", runtime.NumCPU()).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("num_gc", m.NumGC).
		Msg("fatal signal")

	os.Exit(128 + int(sig.(syscall.Signal)))
}
