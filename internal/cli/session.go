package cli

import (
	"context"
	"path/filepath"

	"todo-notes/internal/config"
	"todo-notes/internal/journal"
	"todo-notes/internal/listfile"

	"go.uber.org/zap"
)

// session is the resolved active list for one command invocation.
type session struct {
	cfg   *config.Config
	id    config.ListIdentity
	store listfile.Store
}

func openSession(app *App) (*session, error) {
	cfg, err := app.loadConfig()
	if err != nil {
		return nil, err
	}
	log := app.logger()

	id, path, created, err := cfg.Resolve(app.cwd(), app.Env, app.Target)
	if err != nil {
		return nil, err
	}
	switch id.Source {
	case config.SourceRepo:
		log.Debug("Found git repository", zap.String("list", id.Name), zap.String("root", id.RepoRoot))
	case config.SourceDefault:
		log.Debug("No git repository found, using default list", zap.String("list", id.Name))
	default:
		log.Debug("Using requested list", zap.String("list", id.Name), zap.String("source", id.Source))
	}
	if created {
		log.Info("Creating task file", zap.String("list", id.Name), zap.String("path", path))
	}

	return &session{cfg: cfg, id: id, store: listfile.Store{Path: path}}, nil
}

// record appends events to the history journal. Failures are logged, never returned:
// the list file has already been written by the time this runs.
func (s *session) record(ctx context.Context, app *App, evs ...journal.Event) {
	if !s.cfg.HistoryEnabled() || len(evs) == 0 {
		return
	}
	for i := range evs {
		evs[i].List = s.id.Name
	}
	log := app.logger()
	j, err := journal.Open(ctx, filepath.Join(s.cfg.Dir, journal.FileName))
	if err != nil {
		log.Warn("history journal unavailable", zap.Error(err))
		return
	}
	defer j.Close()
	if err := j.Record(ctx, evs...); err != nil {
		log.Warn("history journal write failed", zap.Error(err))
	}
}
