package mutate

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visa-admin-backend/internal/cache"
	"visa-admin-backend/internal/model"
)

func seededStore(t *testing.T) *cache.Store {
	t.Helper()
	s := cache.New(time.Minute, time.Hour)
	ctx := context.Background()

	for key, val := range map[string]cache.Key{
		"lists":     cache.ReScheduleListKey(20, 0),
		"applicant": cache.ReScheduleByApplicantKey(7),
		"other":     cache.ReScheduleByApplicantKey(8),
		"people":    cache.ApplicantListKey(),
	} {
		_, err := s.Get(ctx, val, func(ctx context.Context) (any, error) { return key, nil })
		require.NoError(t, err)
	}
	return s
}

func TestDoInvalidatesDeclaredPrefixesOnSuccess(t *testing.T) {
	s := seededStore(t)

	// The invalidation rule for creating a re-schedule: all lists plus the
	// parent applicant's filtered list.
	o := New(s, func(rs model.ReSchedule) []cache.Prefix {
		return []cache.Prefix{
			cache.ReScheduleListsPrefix(),
			cache.ReScheduleByApplicantPrefix(rs.Applicant),
		}
	})

	rs, err := o.Do(context.Background(), func(ctx context.Context) (model.ReSchedule, error) {
		return model.ReSchedule{ID: 12, Applicant: 7, Status: "PENDING"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), rs.ID)
	assert.Equal(t, StatusSuccess, o.Status())

	_, found := s.Peek(cache.ReScheduleListKey(20, 0))
	assert.False(t, found)
	_, found = s.Peek(cache.ReScheduleByApplicantKey(7))
	assert.False(t, found)

	// Untouched families survive.
	_, found = s.Peek(cache.ReScheduleByApplicantKey(8))
	assert.True(t, found)
	_, found = s.Peek(cache.ApplicantListKey())
	assert.True(t, found)
}

func TestDoLeavesCacheUntouchedOnFailure(t *testing.T) {
	s := seededStore(t)

	o := New(s, func(rs model.ReSchedule) []cache.Prefix {
		return []cache.Prefix{cache.ReSchedulesPrefix()}
	})

	_, err := o.Do(context.Background(), func(ctx context.Context) (model.ReSchedule, error) {
		return model.ReSchedule{}, errors.New("transport error")
	})
	require.Error(t, err)
	assert.Equal(t, StatusError, o.Status())
	assert.EqualError(t, o.Err(), "transport error")

	for _, key := range []cache.Key{
		cache.ReScheduleListKey(20, 0),
		cache.ReScheduleByApplicantKey(7),
		cache.ReScheduleByApplicantKey(8),
		cache.ApplicantListKey(),
	} {
		_, found := s.Peek(key)
		assert.True(t, found, "key %s must survive a failed mutation", key)
	}
}

func TestDoUsesReturnedRecordForInvalidation(t *testing.T) {
	s := seededStore(t)

	o := New(s, func(rs model.ReSchedule) []cache.Prefix {
		return []cache.Prefix{cache.ReScheduleByApplicantPrefix(rs.Applicant)}
	})

	// The server reports applicant 8 regardless of what the request said.
	_, err := o.Do(context.Background(), func(ctx context.Context) (model.ReSchedule, error) {
		return model.ReSchedule{ID: 12, Applicant: 8}, nil
	})
	require.NoError(t, err)

	_, found := s.Peek(cache.ReScheduleByApplicantKey(8))
	assert.False(t, found)
	_, found = s.Peek(cache.ReScheduleByApplicantKey(7))
	assert.True(t, found)
}

func TestDoReportsPendingDuringCall(t *testing.T) {
	s := cache.New(time.Minute, time.Hour)
	o := New[int64](s, nil)

	var observed Status
	_, err := o.Do(context.Background(), func(ctx context.Context) (int64, error) {
		observed = o.Status()
		return 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, observed)
	assert.Equal(t, StatusSuccess, o.Status())
}

func TestDoInvokesHooks(t *testing.T) {
	s := cache.New(time.Minute, time.Hour)

	var gotResult int64
	var gotErr error
	o := New(s, nil,
		WithOnSuccess(func(id int64) { gotResult = id }),
		WithOnError[int64](func(err error) { gotErr = err }),
	)

	_, err := o.Do(context.Background(), func(ctx context.Context) (int64, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), gotResult)
	assert.NoError(t, gotErr)

	_, err = o.Do(context.Background(), func(ctx context.Context) (int64, error) {
		return 0, errors.New("boom")
	})
	require.Error(t, err)
	assert.EqualError(t, gotErr, "boom")
}

func TestDoDoesNotDeduplicateConcurrentMutations(t *testing.T) {
	s := cache.New(time.Minute, time.Hour)
	o := New[int64](s, nil)

	var calls atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.Do(context.Background(), func(ctx context.Context) (int64, error) {
				calls.Add(1)
				time.Sleep(10 * time.Millisecond)
				return 1, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(5), calls.Load(), "each user-initiated mutation dispatches independently")
}
