package root

import (
	"context"

	"github.com/edwincheahmp4/questboard/internal/auth"
	"github.com/edwincheahmp4/questboard/internal/config"
	"github.com/edwincheahmp4/questboard/internal/engine"
	"github.com/edwincheahmp4/questboard/internal/session"
	"github.com/edwincheahmp4/questboard/internal/storage"
)

func openController(ctx context.Context) (*session.Controller, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	key, err := auth.LoadOrCreateKey(cfg.KeyPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	a := auth.New(storage.NewUserRepo(db), auth.NewTokenSigner(key))
	ctrl := session.NewController(engine.NewService(db), a, cfg.SessionPath)
	if err := ctrl.Resume(); err != nil {
		cleanup()
		return nil, nil, err
	}
	return ctrl, cleanup, nil
}
