package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"timearena/internal/modules/progress/domain"
	progressout "timearena/internal/modules/progress/port/out"
	"timearena/internal/platform/clock"
	apperrors "timearena/internal/platform/errors"
)

// Mutation changes rec at now and reports whether it changed anything.
type Mutation func(rec *domain.Record, now time.Time) (bool, error)

type ProgressService struct {
	clock clock.Clock
	store progressout.RecordStore
	log   logrus.FieldLogger
}

func NewProgressService(clock clock.Clock, store progressout.RecordStore, log logrus.FieldLogger) *ProgressService {
	return &ProgressService{clock: clock, store: store, log: log}
}

// Load returns the stored record, or the default record when nothing is
// stored or the stored blob cannot be decoded.
func (s *ProgressService) Load(ctx context.Context) (domain.Record, error) {
	raw, err := s.store.Load(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.DefaultRecord(), nil
	}
	if err != nil {
		s.log.WithError(err).Error("load progress record")
		return domain.Record{}, errors.Join(apperrors.ErrStoreUnavailable, err)
	}
	rec, err := domain.DecodeRecord(raw)
	if err != nil {
		s.log.WithError(errors.Join(apperrors.ErrMalformedRecord, err)).Warn("stored progress record replaced by defaults")
		return domain.DefaultRecord(), nil
	}
	return rec, nil
}

func (s *ProgressService) Save(ctx context.Context, rec domain.Record) error {
	raw, err := domain.EncodeRecord(rec)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, raw); err != nil {
		s.log.WithError(err).Error("save progress record")
		return errors.Join(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// Update loads the record, clears an expired ban, applies fn and saves
// when anything changed. fn's error is returned after the save so audit
// events it recorded are kept.
func (s *ProgressService) Update(ctx context.Context, fn Mutation) (domain.Record, time.Time, error) {
	rec, err := s.Load(ctx)
	if err != nil {
		return domain.Record{}, time.Time{}, err
	}
	now := s.clock.Now()
	changed := false
	if ban := rec.ActiveBan; ban != nil && rec.Reconcile(now) {
		s.log.WithField("ban", ban.Name).Info("ban expired")
		changed = true
	}
	var fnErr error
	if fn != nil {
		var fnChanged bool
		fnChanged, fnErr = fn(&rec, now)
		changed = changed || fnChanged
	}
	if changed {
		if err := s.Save(ctx, rec); err != nil {
			return domain.Record{}, time.Time{}, err
		}
	}
	return rec, now, fnErr
}
