// Package service holds the business operations of the comic manager.
// Every operation takes the acting session and checks its clearance before
// delegating persistence to a repository.
package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/atinyakov/ComicKeeper/internal/models"
)

// gate enforces the minimum clearance of an action and logs denials.
type gate struct {
	log *zap.Logger
}

func (g gate) check(s models.Session, required models.Clearance, action string) error {
	if s.Can(required) {
		return nil
	}
	g.log.Warn("clearance check failed",
		zap.String("action", action),
		zap.String("username", s.Username),
		zap.String("session", s.ID),
		zap.Int("clearance", int(s.Clearance)),
		zap.Int("required", int(required)),
	)
	return fmt.Errorf("%s: %w", action, models.ErrForbidden)
}

// audit records the outcome of a mutating action.
func (g gate) audit(s models.Session, action string, id int64, err error) {
	switch {
	case err == nil:
	case errors.Is(err, models.ErrReferenced), errors.Is(err, models.ErrInvalidReference),
		errors.Is(err, models.ErrNotFound):
		g.log.Warn(action+" rejected", zap.String("username", s.Username), zap.Int64("id", id), zap.Error(err))
		return
	default:
		g.log.Error(action+" failed", zap.String("username", s.Username), zap.Int64("id", id), zap.Error(err))
		return
	}
	g.log.Info(action, zap.String("username", s.Username), zap.String("session", s.ID), zap.Int64("id", id))
}

// orNop replaces a nil logger so services never have to nil-check.
func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
