package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/specialdesk/internal/chat"
	"github.com/jask/specialdesk/internal/config"
	"github.com/jask/specialdesk/internal/database"
	"github.com/jask/specialdesk/internal/database/repository"
	"github.com/jask/specialdesk/internal/logging"
	"github.com/jask/specialdesk/internal/prefs"
	"github.com/jask/specialdesk/internal/session"
	"github.com/jask/specialdesk/internal/shell"
	"github.com/jask/specialdesk/internal/tui"
	"github.com/jask/specialdesk/internal/workbench"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(logging.FileConfig(cfg.Log.Level, cfg.Log.Path, cfg.Log.Development))
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store, closeStore, err := openStore(cfg.Session)
	if err != nil {
		logger.Fatal("open session store", zap.String("backend", cfg.Session.Backend), zap.Error(err))
	}
	defer closeStore()

	source, err := loadSource(cfg.Workbench)
	if err != nil {
		logger.Fatal("load records", zap.String("path", cfg.Workbench.SeedPath), zap.Error(err))
	}

	composer := shell.NewComposer(
		session.NewManager(store, logger.Named("session")),
		workbench.New(source),
		chat.NewPanel(chat.LogSink{Log: logger.Named("chat")}),
		logger.Named("shell"),
	)
	screen := composer.Start(ctx)
	logger.Info("starting", zap.String("backend", cfg.Session.Backend), zap.Stringer("screen", screen))

	p := tea.NewProgram(tui.New(ctx, composer, cfg.UI, logger.Named("tui")), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

// openStore picks the session backend. The returned func releases it.
func openStore(cfg config.SessionConfig) (session.Store, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case config.BackendSQLite:
		db, err := database.OpenMigrated(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewKVRepo(db), func() { _ = db.Close() }, nil
	case config.BackendFile:
		return prefs.NewSessionFile(cfg.FilePath), func() {}, nil
	case config.BackendMemory:
		return session.NewMemStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}

func loadSource(cfg config.WorkbenchConfig) (workbench.Source, error) {
	if strings.TrimSpace(cfg.SeedPath) == "" {
		return workbench.SeedSource(), nil
	}
	f, err := os.Open(cfg.SeedPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return workbench.LoadYAML(f)
}
