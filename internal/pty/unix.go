//go:build !windows

package pty

import (
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	creackpty "github.com/creack/pty"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

// terminateGrace is how long TerminateProcess waits after SIGTERM before
// escalating to SIGKILL.
const terminateGrace = 3 * time.Second

// readQueueDepth bounds how many undelivered output chunks a session's
// reader goroutine buffers before it starts dropping the oldest chunk -
// the bounded-queue discipline spec.md's concurrency model requires.
const readQueueDepth = 256

const readChunkSize = 4096

// UnixBackend implements Backend on top of github.com/creack/pty: a
// background reader goroutine per session drains the PTY master fd into a
// bounded channel, and ReadOutput performs a non-blocking drain of that
// channel instead of blocking on the fd directly.
type UnixBackend struct{}

// NewUnixBackend constructs the Unix pseudo-terminal backend.
func NewUnixBackend() *UnixBackend {
	return &UnixBackend{}
}

type unixHandle struct {
	mu      sync.Mutex
	ptyFile *os.File
	cmd     *exec.Cmd
	closed  bool

	chunks chan []byte
	group  *errgroup.Group
	stop   chan struct{}
}

func (b *UnixBackend) StartProcess(session *Session) error {
	cmd := exec.Command(session.Command, session.Args...)
	cmd.Dir = session.Cwd
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	cmd.SysProcAttr = &syscall.SysProcAttr{}

	ptmx, err := creackpty.StartWithSize(cmd, &creackpty.Winsize{Rows: session.Rows, Cols: session.Cols})
	if err != nil {
		return err
	}

	handle := &unixHandle{
		ptyFile: ptmx,
		cmd:     cmd,
		chunks:  make(chan []byte, readQueueDepth),
		stop:    make(chan struct{}),
	}

	group := &errgroup.Group{}
	group.Go(func() error {
		handle.readLoop()
		return nil
	})
	handle.group = group

	session.PlatformData = handle
	session.setActive(true)
	return nil
}

func (h *unixHandle) readLoop() {
	buf := make([]byte, readChunkSize)
	for {
		n, err := h.ptyFile.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case h.chunks <- chunk:
			default:
				// Queue full: drop the oldest chunk to keep the queue bounded.
				select {
				case <-h.chunks:
				default:
				}
				select {
				case h.chunks <- chunk:
				default:
				}
			}
		}
		if err != nil {
			close(h.chunks)
			return
		}
		select {
		case <-h.stop:
			return
		default:
		}
	}
}

func handleFor(session *Session) (*unixHandle, bool) {
	h, ok := session.PlatformData.(*unixHandle)
	return h, ok
}

func (b *UnixBackend) ReadOutput(session *Session, maxBytes int) ([]byte, error) {
	h, ok := handleFor(session)
	if !ok {
		return nil, nil
	}

	var out []byte
	for len(out) < maxBytes {
		select {
		case chunk, open := <-h.chunks:
			if !open {
				session.setActive(false)
				if len(out) == 0 {
					return nil, nil
				}
				return out, nil
			}
			remaining := maxBytes - len(out)
			if len(chunk) > remaining {
				out = append(out, chunk[:remaining]...)
				return out, nil
			}
			out = append(out, chunk...)
		default:
			if len(out) == 0 {
				return nil, nil
			}
			session.touch()
			return out, nil
		}
	}
	session.touch()
	return out, nil
}

func (b *UnixBackend) WriteInput(session *Session, data []byte) error {
	h, ok := handleFor(session)
	if !ok {
		return os.ErrClosed
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return os.ErrClosed
	}
	_, err := h.ptyFile.Write(data)
	return err
}

func (b *UnixBackend) Resize(session *Session, rows, cols uint16) error {
	h, ok := handleFor(session)
	if !ok {
		return os.ErrClosed
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return os.ErrClosed
	}
	if err := setWinsize(h.ptyFile, rows, cols); err != nil {
		return err
	}
	session.Rows, session.Cols = rows, cols
	return nil
}

func (b *UnixBackend) IsProcessAlive(session *Session) bool {
	h, ok := handleFor(session)
	if !ok {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.closed && h.cmd.ProcessState == nil
}

func (b *UnixBackend) TerminateProcess(session *Session) error {
	h, ok := handleFor(session)
	if !ok {
		return nil
	}
	h.mu.Lock()
	proc := h.cmd.Process
	h.mu.Unlock()
	if proc == nil {
		return nil
	}

	_ = proc.Signal(syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		state, _ := proc.Wait()
		h.mu.Lock()
		h.cmd.ProcessState = state
		h.mu.Unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(terminateGrace):
		_ = proc.Kill()
		<-done
	}

	session.setActive(false)
	return nil
}

func (b *UnixBackend) Cleanup(session *Session) error {
	h, ok := handleFor(session)
	if !ok {
		return nil
	}

	if b.IsProcessAlive(session) {
		if err := b.TerminateProcess(session); err != nil {
			return err
		}
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.stop)
	ptyFile := h.ptyFile
	h.mu.Unlock()

	if ptyFile != nil {
		_ = ptyFile.Close()
	}
	if h.group != nil {
		_ = h.group.Wait()
	}
	return nil
}

func (b *UnixBackend) PollProcess(session *Session, timeout time.Duration) bool {
	h, ok := handleFor(session)
	if !ok {
		return false
	}
	select {
	case chunk, open := <-h.chunks:
		if open && len(chunk) > 0 {
			// Put it back so ReadOutput still observes it.
			h.chunks <- chunk
			return true
		}
		return false
	case <-time.After(timeout):
		return false
	}
}

func (b *UnixBackend) Supports(feature string) bool {
	return supportsBaseFeature(feature)
}

// setWinsize is a small indirection kept separate from Resize so tests can
// exercise the raw ioctl-equivalent path without a live child process.
func setWinsize(f *os.File, rows, cols uint16) error {
	return unix.IoctlSetWinsize(int(f.Fd()), unix.TIOCSWINSZ, &unix.Winsize{Row: rows, Col: cols})
}
