package service

import (
	"context"
	"log"

	"visa-admin-backend/internal/cache"
	"visa-admin-backend/internal/model"
	"visa-admin-backend/internal/mutate"
	"visa-admin-backend/internal/remote"
)

// ApplicantService serves applicant views from the cache and runs applicant
// mutations with their invalidation rules.
type ApplicantService struct {
	remote *remote.Client
	store  *cache.Store

	create *mutate.Orchestrator[model.Applicant]
	update *mutate.Orchestrator[model.Applicant]
	delete *mutate.Orchestrator[int64]
}

func NewApplicantService(rc *remote.Client, store *cache.Store) *ApplicantService {
	return &ApplicantService{
		remote: rc,
		store:  store,

		create: mutate.New(store, func(model.Applicant) []cache.Prefix {
			return []cache.Prefix{cache.ApplicantListsPrefix()}
		}),
		// The detail key is derived from the returned record; the server is
		// authoritative about the id.
		update: mutate.New(store, func(a model.Applicant) []cache.Prefix {
			return []cache.Prefix{
				cache.ApplicantListsPrefix(),
				cache.ApplicantDetailPrefix(a.ID),
			}
		}),
		delete: mutate.New(store, func(int64) []cache.Prefix {
			return []cache.Prefix{cache.ApplicantsPrefix()}
		}),
	}
}

// List returns all applicants, served from the cache when fresh.
func (s *ApplicantService) List(ctx context.Context) ([]model.Applicant, error) {
	return cache.Fetch(ctx, s.store, cache.ApplicantListKey(), s.remote.ListApplicants)
}

// Get returns one applicant by id.
func (s *ApplicantService) Get(ctx context.Context, id int64) (model.Applicant, error) {
	return cache.Fetch(ctx, s.store, cache.ApplicantDetailKey(id), func(ctx context.Context) (model.Applicant, error) {
		return s.remote.GetApplicant(ctx, id)
	})
}

func (s *ApplicantService) Create(ctx context.Context, payload model.ApplicantCreate) (model.Applicant, error) {
	return s.create.Do(ctx, func(ctx context.Context) (model.Applicant, error) {
		return s.remote.CreateApplicant(ctx, payload)
	})
}

func (s *ApplicantService) Update(ctx context.Context, id int64, payload model.ApplicantUpdate) (model.Applicant, error) {
	return s.update.Do(ctx, func(ctx context.Context) (model.Applicant, error) {
		return s.remote.UpdateApplicant(ctx, id, payload)
	})
}

func (s *ApplicantService) Delete(ctx context.Context, id int64) error {
	_, err := s.delete.Do(ctx, func(ctx context.Context) (int64, error) {
		if err := s.remote.DeleteApplicant(ctx, id); err != nil {
			return 0, err
		}
		return id, nil
	})
	return err
}

// CredentialOutcome is the three-way verdict of a credential test. Transport
// failures never reach this type; they surface as ordinary errors.
type CredentialOutcome string

const (
	// OutcomeScheduleFound: login worked and a schedule number was extracted.
	OutcomeScheduleFound CredentialOutcome = "schedule_found"
	// OutcomePartial: login worked but no schedule number could be
	// extracted. A warning, not an error and not a full success.
	OutcomePartial CredentialOutcome = "partial"
	// OutcomeLoginFailed: the request succeeded but the login did not.
	OutcomeLoginFailed CredentialOutcome = "login_failed"
)

// CredentialCheck is the classified result handed to the UI layer.
type CredentialCheck struct {
	Outcome  CredentialOutcome `json:"outcome"`
	Schedule string            `json:"schedule,omitempty"`
	Message  string            `json:"message"`
}

// TestCredentials runs the fire-and-forget verification for one applicant
// and classifies the outcome. On a full success the remote service also
// stored the extracted schedule on the applicant, so the applicant's keys
// are invalidated.
func (s *ApplicantService) TestCredentials(ctx context.Context, applicantID int64) (CredentialCheck, error) {
	result, err := s.remote.TestCredentials(ctx, applicantID)
	if err != nil {
		return CredentialCheck{}, err
	}

	if !result.Success {
		message := "Login failed"
		if result.Error != nil && *result.Error != "" {
			message = *result.Error
		}
		return CredentialCheck{Outcome: OutcomeLoginFailed, Message: message}, nil
	}

	if result.Schedule == nil || *result.Schedule == "" {
		return CredentialCheck{
			Outcome: OutcomePartial,
			Message: "Login successful but could not extract schedule number",
		}, nil
	}

	log.Printf("credential test for applicant %d extracted schedule %s", applicantID, *result.Schedule)
	s.store.Invalidate(
		cache.ApplicantDetailPrefix(applicantID),
		cache.ApplicantListsPrefix(),
	)
	return CredentialCheck{
		Outcome:  OutcomeScheduleFound,
		Schedule: *result.Schedule,
		Message:  "Login successful! Schedule number: " + *result.Schedule,
	}, nil
}
