package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/asteroids/internal/config"
	"github.com/tomz197/asteroids/internal/draw"
	"github.com/tomz197/asteroids/internal/input"
	applog "github.com/tomz197/asteroids/internal/logging"
	"github.com/tomz197/asteroids/internal/loop"
	"github.com/tomz197/asteroids/internal/screen"
)

func main() {
	cfg, err := config.LoadSSH()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	logger, err := applog.New(os.Stderr, cfg.Level, "ssh")
	if err != nil {
		config.Exitf("logging: %v", err)
	}
	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("SSH config", "host", cfg.Host, "port", cfg.Port,
		"host_key", cfg.HostKeyPath, "working_dir", workingDir)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithMiddleware(
			gameMiddleware(cfg, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		config.Exitf("failed to create server: %v", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(cfg.Host, cfg.Port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Error("server error", "err", err)
			done <- syscall.SIGTERM
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

// gameMiddleware runs a private arcade game for every session. The first
// word of the SSH command is the asteroid count.
func gameMiddleware(cfg config.SSH, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			defer next(sess)

			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}
			count, err := config.AsteroidCount(sess.Command())
			if err != nil {
				fmt.Fprintf(sess, "usage: ssh -t host [count]: %v\n", err)
				_ = sess.Exit(1)
				return
			}

			sessionLog := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			sessionLog.Info("New game session", "term", pty.Term,
				"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height), "asteroids", count)

			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			res, err := playSession(sess, cfg, count, sizeTracker.getSize, sessionLog)
			switch {
			case errors.Is(err, context.Canceled):
				sessionLog.Info("Session closed mid-game")
			case err != nil:
				sessionLog.Error("Game error", "err", err)
			case res.Outcome.Over():
				text := strings.ReplaceAll(res.Outcome.Text, "\n", "\r\n")
				fmt.Fprintf(sess, "%s\r\n%s\r\n", res.Outcome.Title, text)
			}
			sessionLog.Info("Session ended", "outcome", res.Outcome.Kind, "score", res.Score)
		}
	}
}

func playSession(sess ssh.Session, cfg config.SSH, count int, size draw.TermSizeFunc, logger *log.Logger) (loop.Result, error) {
	stream := input.StartStream(bufio.NewReader(sess), cfg.Tick)
	surface, err := screen.New(stream, sess, screen.Options{
		Size:     size,
		Renderer: bubbletea.MakeRenderer(sess),
	})
	if err != nil {
		return loop.Result{}, err
	}
	runner, err := loop.New(surface, loop.Options{
		Asteroids:    count,
		TickInterval: cfg.Tick,
		Rand:         rand.New(rand.NewSource(config.Seed(cfg.Seed))),
		Logger:       logger,
	})
	if err != nil {
		return loop.Result{}, err
	}
	return runner.Run(sess.Context())
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
