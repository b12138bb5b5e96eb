package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobhaven/internal/cache"
	"jobhaven/internal/model"
	"jobhaven/internal/repository"
)

const (
	jobCacheTTL     = 5 * time.Minute
	jobListCacheKey = "jobs:all"
)

// ErrJobNotFound is returned when a posting id does not resolve.
var ErrJobNotFound = errors.New("job not found")

// JobService exposes job posting operations.
type JobService interface {
	Create(ctx context.Context, job *model.Job) error
	// List returns postings filtered by selectedSkills, a comma-separated
	// string. Empty means all postings.
	List(ctx context.Context, selectedSkills string) ([]model.Job, error)
	Get(ctx context.Context, id string) (*model.Job, error)
}

type jobService struct {
	jobs  repository.JobRepository
	cache *cache.Client
}

// NewJobService builds a JobService with repository and cache.
func NewJobService(jobs repository.JobRepository, cache *cache.Client) JobService {
	return &jobService{jobs: jobs, cache: cache}
}

func (s *jobService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("job:%s", id)
}

func (s *jobService) Create(ctx context.Context, job *model.Job) error {
	if err := s.jobs.Create(ctx, job); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	_ = s.cache.Delete(ctx, jobListCacheKey)
	return nil
}

func (s *jobService) List(ctx context.Context, selectedSkills string) ([]model.Job, error) {
	if selectedSkills == "" {
		if data, _ := s.cache.Get(ctx, jobListCacheKey); data != nil {
			var cached []model.Job
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}

		jobs, err := s.jobs.List(ctx, nil)
		if err != nil {
			return nil, err
		}

		if payload, err := json.Marshal(jobs); err == nil {
			_ = s.cache.Set(ctx, jobListCacheKey, payload, jobCacheTTL)
		}
		return jobs, nil
	}

	// Tokens are matched verbatim, whitespace included: "a, b" filters
	// on " b".
	return s.jobs.List(ctx, strings.Split(selectedSkills, ","))
}

func (s *jobService) Get(ctx context.Context, id string) (*model.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrJobNotFound
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(jobID)); data != nil {
		var cached model.Job
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	if payload, err := json.Marshal(job); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(jobID), payload, jobCacheTTL)
	}
	return job, nil
}
