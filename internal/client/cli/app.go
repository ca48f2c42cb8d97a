package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/salesmatch/internal/client/client"
	"github.com/dmitrijs2005/salesmatch/internal/client/config"
	"github.com/dmitrijs2005/salesmatch/internal/client/controller"
	"github.com/dmitrijs2005/salesmatch/internal/client/services"
	"github.com/dmitrijs2005/salesmatch/internal/client/session"
	"github.com/dmitrijs2005/salesmatch/internal/logging"
)

// Mode is the server reachability shown in the prompt.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config     *config.Config
	service    services.AccountService
	controller *controller.Controller
	notifier   *toastNotifier
	logger     logging.Logger
	reader     *bufio.Reader
	out        io.Writer

	mu       sync.Mutex
	userName string
	mode     Mode
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewText(os.Stderr, slog.LevelWarn)

	apiClient, err := client.NewSalesMatchClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	gate := session.NewGate(apiClient, logger)
	svc := services.NewAccountService(apiClient, gate)

	return newApp(c, svc, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, svc services.AccountService, l logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config:   c,
		service:  svc,
		notifier: newToastNotifier(out),
		logger:   l,
		reader:   bufio.NewReader(in),
		out:      out,
	}
	a.controller = controller.New(svc, a.notifier, l)
	a.controller.OnUnauthenticated = a.onUnauthenticated
	return a
}

// Run prompts for credentials, starts the connectivity watcher and serves the
// REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.service.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to SalesMatch (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if err := a.Login(ctx); err != nil {
		a.logger.Warn(ctx, "initial login failed", "error", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.service.IsAuthenticated()
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setUserName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = name
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.mode != "" {
		s = s + string(a.mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// onUnauthenticated drops a session the backend no longer accepts and sends
// the user back to the login state. Without a held token there is nothing to
// report.
func (a *App) onUnauthenticated() {
	held := a.service.IsAuthenticated()
	a.service.Invalidate()
	a.setUserName("")
	if held {
		fmt.Fprintln(a.out, "Session is no longer valid, please log in again")
	}
}

// StartOnlineStatusWatcher pings the server every interval and records
// whether it answered. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval)
			err := a.service.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
