package service

import (
	"context"
	"sort"

	"visa-admin-backend/internal/cache"
	"visa-admin-backend/internal/lifecycle"
	"visa-admin-backend/internal/model"
	"visa-admin-backend/internal/mutate"
	"visa-admin-backend/internal/remote"
)

// ReScheduleService serves re-schedule views from the cache and runs
// re-schedule mutations with their invalidation rules. Status transitions
// are never made here: the records only change status when the remote
// service says so.
type ReScheduleService struct {
	remote *remote.Client
	store  *cache.Store

	create *mutate.Orchestrator[model.ReSchedule]
	update *mutate.Orchestrator[model.ReSchedule]
	delete *mutate.Orchestrator[int64]
}

func NewReScheduleService(rc *remote.Client, store *cache.Store) *ReScheduleService {
	return &ReScheduleService{
		remote: rc,
		store:  store,

		create: mutate.New(store, func(rs model.ReSchedule) []cache.Prefix {
			return []cache.Prefix{
				cache.ReScheduleListsPrefix(),
				cache.ReScheduleByApplicantPrefix(rs.Applicant),
			}
		}),
		// The applicant id is read from the returned record, not the
		// request.
		update: mutate.New(store, func(rs model.ReSchedule) []cache.Prefix {
			return []cache.Prefix{
				cache.ReScheduleDetailPrefix(rs.ID),
				cache.ReScheduleListsPrefix(),
				cache.ReScheduleByApplicantPrefix(rs.Applicant),
			}
		}),
		// After a delete the parent applicant is unknown, so the whole
		// re-schedule family goes.
		delete: mutate.New(store, func(int64) []cache.Prefix {
			return []cache.Prefix{cache.ReSchedulesPrefix()}
		}),
	}
}

// List returns re-schedules with limit/offset paging, served from the
// cache when fresh.
func (s *ReScheduleService) List(ctx context.Context, limit, offset int) ([]model.ReSchedule, error) {
	return cache.Fetch(ctx, s.store, cache.ReScheduleListKey(limit, offset), func(ctx context.Context) ([]model.ReSchedule, error) {
		return s.remote.ListReSchedules(ctx, limit, offset)
	})
}

// ListByApplicant returns the re-schedules belonging to one applicant.
func (s *ReScheduleService) ListByApplicant(ctx context.Context, applicantID int64) ([]model.ReSchedule, error) {
	return cache.Fetch(ctx, s.store, cache.ReScheduleByApplicantKey(applicantID), func(ctx context.Context) ([]model.ReSchedule, error) {
		return s.remote.ListReSchedulesByApplicant(ctx, applicantID, 0)
	})
}

// Get returns one re-schedule by id.
func (s *ReScheduleService) Get(ctx context.Context, id int64) (model.ReSchedule, error) {
	return cache.Fetch(ctx, s.store, cache.ReScheduleDetailKey(id), func(ctx context.Context) (model.ReSchedule, error) {
		return s.remote.GetReSchedule(ctx, id)
	})
}

// Logs returns the attempt's diagnostic entries, oldest first. The log is
// append-only, so staleness-driven refresh keeps it current.
func (s *ReScheduleService) Logs(ctx context.Context, reScheduleID int64) ([]model.ReScheduleLog, error) {
	logs, err := cache.Fetch(ctx, s.store, cache.ReScheduleLogsKey(reScheduleID), func(ctx context.Context) ([]model.ReScheduleLog, error) {
		return s.remote.ListReScheduleLogs(ctx, reScheduleID)
	})
	if err != nil {
		return nil, err
	}

	ordered := make([]model.ReScheduleLog, len(logs))
	copy(ordered, logs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt < ordered[j].CreatedAt
	})
	return ordered, nil
}

func (s *ReScheduleService) Create(ctx context.Context, payload model.ReScheduleCreate) (model.ReSchedule, error) {
	return s.create.Do(ctx, func(ctx context.Context) (model.ReSchedule, error) {
		return s.remote.CreateReSchedule(ctx, payload)
	})
}

func (s *ReScheduleService) Update(ctx context.Context, id int64, payload model.ReScheduleUpdate) (model.ReSchedule, error) {
	return s.update.Do(ctx, func(ctx context.Context) (model.ReSchedule, error) {
		return s.remote.UpdateReSchedule(ctx, id, payload)
	})
}

func (s *ReScheduleService) Delete(ctx context.Context, id int64) error {
	_, err := s.delete.Do(ctx, func(ctx context.Context) (int64, error) {
		if err := s.remote.DeleteReSchedule(ctx, id); err != nil {
			return 0, err
		}
		return id, nil
	})
	return err
}

// Retry creates a fresh PENDING attempt with the same window as a finished
// one. The original record is left alone; its terminal status is part of
// the history.
func (s *ReScheduleService) Retry(ctx context.Context, id int64) (model.ReSchedule, error) {
	existing, err := s.remote.GetReSchedule(ctx, id)
	if err != nil {
		return model.ReSchedule{}, err
	}

	return s.Create(ctx, model.ReScheduleCreate{
		Applicant:     existing.Applicant,
		StartDatetime: existing.StartDatetime,
		EndDatetime:   existing.EndDatetime,
		Status:        string(lifecycle.StatusPending),
	})
}
