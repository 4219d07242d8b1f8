package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visa-admin-backend/internal/cache"
	"visa-admin-backend/internal/model"
	"visa-admin-backend/internal/remote"
)

// fakeRemote is an in-memory stand-in for the remote visa API, good enough
// to drive reads and mutations end to end.
type fakeRemote struct {
	applicants  map[int64]model.Applicant
	reSchedules map[int64]model.ReSchedule
	nextID      int64
	failAll     bool
	credential  remote.CredentialResult
	logs        []model.ReScheduleLog
}

func newFakeRemote(t *testing.T) (*fakeRemote, *remote.Client, *cache.Store) {
	t.Helper()
	f := &fakeRemote{
		applicants:  make(map[int64]model.Applicant),
		reSchedules: make(map[int64]model.ReSchedule),
		nextID:      1,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/applicants/", func(w http.ResponseWriter, r *http.Request) {
		if f.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
			return
		}

		rest := strings.TrimPrefix(r.URL.Path, "/api/applicants/")
		switch {
		case rest == "" && r.Method == http.MethodGet:
			list := make([]model.Applicant, 0, len(f.applicants))
			for _, a := range f.applicants {
				list = append(list, a)
			}
			json.NewEncoder(w).Encode(list)

		case rest == "" && r.Method == http.MethodPost:
			var payload model.ApplicantCreate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			a := model.Applicant{
				ID: f.nextID, Name: payload.Name, LastName: payload.LastName,
				Email: payload.Email, CreatedAt: "2026-01-01T00:00:00", UpdatedAt: "2026-01-01T00:00:00",
			}
			f.applicants[a.ID] = a
			f.nextID++
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(a)

		case strings.HasSuffix(rest, "/test-credentials"):
			json.NewEncoder(w).Encode(f.credential)

		case r.Method == http.MethodDelete:
			var id int64
			fmt.Sscanf(rest, "%d", &id)
			delete(f.applicants, id)
			w.WriteHeader(http.StatusNoContent)

		default:
			var id int64
			fmt.Sscanf(rest, "%d", &id)
			a, ok := f.applicants[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(a)
		}
	})
	mux.HandleFunc("/api/re-schedules/", func(w http.ResponseWriter, r *http.Request) {
		if f.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
			return
		}

		rest := strings.TrimPrefix(r.URL.Path, "/api/re-schedules/")
		switch {
		case rest == "" && r.Method == http.MethodGet:
			list := make([]model.ReSchedule, 0, len(f.reSchedules))
			for _, rs := range f.reSchedules {
				list = append(list, rs)
			}
			json.NewEncoder(w).Encode(list)

		case rest == "" && r.Method == http.MethodPost:
			var payload model.ReScheduleCreate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			rs := model.ReSchedule{
				ID: f.nextID, Applicant: payload.Applicant, Status: payload.Status,
				StartDatetime: payload.StartDatetime, EndDatetime: payload.EndDatetime,
				CreatedAt: "2026-01-01T00:00:00", UpdatedAt: "2026-01-01T00:00:00",
			}
			f.reSchedules[rs.ID] = rs
			f.nextID++
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(rs)

		case strings.HasPrefix(rest, "applicant/"):
			var applicantID int64
			fmt.Sscanf(strings.TrimPrefix(rest, "applicant/"), "%d", &applicantID)
			list := make([]model.ReSchedule, 0)
			for _, rs := range f.reSchedules {
				if rs.Applicant == applicantID {
					list = append(list, rs)
				}
			}
			json.NewEncoder(w).Encode(list)

		case r.Method == http.MethodPut:
			var id int64
			fmt.Sscanf(rest, "%d", &id)
			rs, ok := f.reSchedules[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var payload model.ReScheduleUpdate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			if payload.Status != nil {
				rs.Status = *payload.Status
			}
			if payload.StartDatetime != nil {
				rs.StartDatetime = payload.StartDatetime
			}
			f.reSchedules[id] = rs
			json.NewEncoder(w).Encode(rs)

		case r.Method == http.MethodDelete:
			var id int64
			fmt.Sscanf(rest, "%d", &id)
			delete(f.reSchedules, id)
			w.WriteHeader(http.StatusNoContent)

		default:
			var id int64
			fmt.Sscanf(rest, "%d", &id)
			rs, ok := f.reSchedules[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			json.NewEncoder(w).Encode(rs)
		}
	})
	mux.HandleFunc("/api/re-schedule-logs/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(f.logs)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := remote.NewClient(srv.URL, "", 5*time.Second)
	store := cache.New(time.Minute, time.Hour)
	return f, client, store
}

func TestCreateApplicantInvalidatesListAndOmitsPassword(t *testing.T) {
	_, client, store := newFakeRemote(t)
	svc := NewApplicantService(client, store)
	ctx := context.Background()

	// Prime the list cache while it is empty.
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := svc.Create(ctx, model.ApplicantCreate{
		Name: "Ana", LastName: "Li", Email: "ana@x.com", Password: "abcdefgh",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.Name)

	// The list key was invalidated, so this read refetches and sees Ana.
	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ana@x.com", list[0].Email)

	// The returned shape never contains a password.
	raw, err := json.Marshal(list[0])
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
}

func TestFailedCreateLeavesCacheUntouched(t *testing.T) {
	f, client, store := newFakeRemote(t)
	svc := NewApplicantService(client, store)
	ctx := context.Background()

	f.applicants[1] = model.Applicant{ID: 1, Name: "Bo", LastName: "Yen", Email: "bo@x.com"}
	before, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	f.failAll = true
	_, err = svc.Create(ctx, model.ApplicantCreate{Name: "X", LastName: "Y", Email: "x@y.com", Password: "abcdefgh"})
	require.Error(t, err)

	// The cached list is still served, byte-identical to the pre-mutation
	// value, even though the upstream now fails.
	after, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCredentialOutcomes(t *testing.T) {
	schedule := "ABC123"
	loginErr := "Invalid credentials"

	testCases := []struct {
		name     string
		result   remote.CredentialResult
		expected CredentialOutcome
		message  string
	}{
		{
			name:     "full success reports the schedule",
			result:   remote.CredentialResult{Success: true, Schedule: &schedule},
			expected: OutcomeScheduleFound,
			message:  "Login successful! Schedule number: ABC123",
		},
		{
			name:     "success without schedule is a partial-success warning",
			result:   remote.CredentialResult{Success: true},
			expected: OutcomePartial,
			message:  "Login successful but could not extract schedule number",
		},
		{
			name:     "login failure surfaces the service explanation",
			result:   remote.CredentialResult{Success: false, Error: &loginErr},
			expected: OutcomeLoginFailed,
			message:  "Invalid credentials",
		},
		{
			name:     "login failure without explanation falls back",
			result:   remote.CredentialResult{Success: false},
			expected: OutcomeLoginFailed,
			message:  "Login failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, client, store := newFakeRemote(t)
			svc := NewApplicantService(client, store)
			f.credential = tc.result

			check, err := svc.TestCredentials(context.Background(), 7)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, check.Outcome)
			assert.Equal(t, tc.message, check.Message)
		})
	}
}

func TestCredentialTransportFailureIsAnError(t *testing.T) {
	f, client, store := newFakeRemote(t)
	svc := NewApplicantService(client, store)
	f.failAll = true

	_, err := svc.TestCredentials(context.Background(), 7)
	require.Error(t, err, "transport failure must not be conflated with a login failure")
}

func TestCredentialFullSuccessInvalidatesApplicantKeys(t *testing.T) {
	f, client, store := newFakeRemote(t)
	svc := NewApplicantService(client, store)
	ctx := context.Background()

	f.applicants[7] = model.Applicant{ID: 7, Name: "Ana", LastName: "Li", Email: "ana@x.com"}
	_, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	_, found := store.Peek(cache.ApplicantDetailKey(7))
	require.True(t, found)

	schedule := "ABC123"
	f.credential = remote.CredentialResult{Success: true, Schedule: &schedule}
	_, err = svc.TestCredentials(ctx, 7)
	require.NoError(t, err)

	// The remote service stored the schedule on the applicant, so the
	// cached detail must be dropped.
	_, found = store.Peek(cache.ApplicantDetailKey(7))
	assert.False(t, found)
}

func TestCreateReScheduleInvalidatesListsAndApplicantFamily(t *testing.T) {
	f, client, store := newFakeRemote(t)
	svc := NewReScheduleService(client, store)
	ctx := context.Background()

	f.reSchedules[1] = model.ReSchedule{ID: 1, Applicant: 7, Status: "PENDING"}

	// Prime the three key families involved.
	_, err := svc.List(ctx, 20, 0)
	require.NoError(t, err)
	_, err = svc.ListByApplicant(ctx, 7)
	require.NoError(t, err)
	_, err = svc.ListByApplicant(ctx, 8)
	require.NoError(t, err)

	start := "2026-03-10T09:00"
	_, err = svc.Create(ctx, model.ReScheduleCreate{Applicant: 7, StartDatetime: &start, Status: "PENDING"})
	require.NoError(t, err)

	_, found := store.Peek(cache.ReScheduleListKey(20, 0))
	assert.False(t, found)
	_, found = store.Peek(cache.ReScheduleByApplicantKey(7))
	assert.False(t, found)

	// Applicant 8's list is a different family and survives.
	_, found = store.Peek(cache.ReScheduleByApplicantKey(8))
	assert.True(t, found)
}

func TestUpdateReScheduleInvalidatesFromReturnedRecord(t *testing.T) {
	f, client, store := newFakeRemote(t)
	svc := NewReScheduleService(client, store)
	ctx := context.Background()

	f.reSchedules[12] = model.ReSchedule{ID: 12, Applicant: 7, Status: "PENDING"}

	_, err := svc.Get(ctx, 12)
	require.NoError(t, err)
	_, err = svc.ListByApplicant(ctx, 7)
	require.NoError(t, err)

	status := "FAILED"
	_, err = svc.Update(ctx, 12, model.ReScheduleUpdate{Status: &status})
	require.NoError(t, err)

	_, found := store.Peek(cache.ReScheduleDetailKey(12))
	assert.False(t, found)
	_, found = store.Peek(cache.ReScheduleByApplicantKey(7))
	assert.False(t, found, "the parent applicant's list comes from the returned record")
}

func TestDeleteReScheduleDropsWholeFamilyOnly(t *testing.T) {
	f, client, store := newFakeRemote(t)
	rsSvc := NewReScheduleService(client, store)
	appSvc := NewApplicantService(client, store)
	ctx := context.Background()

	f.applicants[7] = model.Applicant{ID: 7, Name: "Ana", LastName: "Li", Email: "ana@x.com"}
	f.reSchedules[12] = model.ReSchedule{ID: 12, Applicant: 7, Status: "COMPLETED"}

	_, err := appSvc.List(ctx)
	require.NoError(t, err)
	_, err = rsSvc.Get(ctx, 12)
	require.NoError(t, err)
	_, err = rsSvc.ListByApplicant(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, rsSvc.Delete(ctx, 12))

	_, found := store.Peek(cache.ReScheduleDetailKey(12))
	assert.False(t, found)
	_, found = store.Peek(cache.ReScheduleByApplicantKey(7))
	assert.False(t, found)

	// Deleting a re-schedule does not touch the applicant family.
	_, found = store.Peek(cache.ApplicantListKey())
	assert.True(t, found)
}

func TestRetryCreatesFreshPendingAttempt(t *testing.T) {
	f, client, store := newFakeRemote(t)
	svc := NewReScheduleService(client, store)
	ctx := context.Background()

	start, end := "2026-03-10T09:00", "2026-03-10T17:00"
	f.reSchedules[12] = model.ReSchedule{
		ID: 12, Applicant: 7, Status: "FAILED",
		StartDatetime: &start, EndDatetime: &end,
	}
	f.nextID = 13

	created, err := svc.Retry(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(13), created.ID)
	assert.Equal(t, "PENDING", created.Status)
	assert.Equal(t, int64(7), created.Applicant)
	require.NotNil(t, created.StartDatetime)
	assert.Equal(t, start, *created.StartDatetime)

	// The failed attempt stays in place.
	original := f.reSchedules[12]
	assert.Equal(t, "FAILED", original.Status)
}

func TestLogsAreOrderedOldestFirst(t *testing.T) {
	f, client, store := newFakeRemote(t)
	svc := NewReScheduleService(client, store)

	f.logs = []model.ReScheduleLog{
		{ID: 3, ReSchedule: 12, State: model.LogStateSuccess, Content: "done", CreatedAt: "2026-03-10T09:03:00"},
		{ID: 1, ReSchedule: 12, State: model.LogStateInfo, Content: "started", CreatedAt: "2026-03-10T09:00:00"},
		{ID: 2, ReSchedule: 12, State: model.LogStateWarning, Content: "slow page", CreatedAt: "2026-03-10T09:01:30"},
	}

	logs, err := svc.Logs(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "started", logs[0].Content)
	assert.Equal(t, "slow page", logs[1].Content)
	assert.Equal(t, "done", logs[2].Content)
}
