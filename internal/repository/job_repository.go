package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobhaven/internal/model"
)

// JobRepository defines persistence operations on job postings.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	// List returns all postings when skills is empty, otherwise the
	// postings whose skills field contains ANY of the given tokens as a
	// case-insensitive substring ("java" matches "JavaScript").
	List(ctx context.Context, skills []string) ([]model.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository builds a GORM-backed repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context, skills []string) ([]model.Job, error) {
	q := r.db.WithContext(ctx)
	if len(skills) > 0 {
		cond := r.db.Where("LOWER(skills_required) LIKE ?", likePattern(skills[0]))
		for _, skill := range skills[1:] {
			cond = cond.Or("LOWER(skills_required) LIKE ?", likePattern(skill))
		}
		q = q.Where(cond)
	}

	jobs := make([]model.Job, 0)
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// likePattern wraps a skill token for an unanchored case-insensitive match.
func likePattern(skill string) string {
	return "%" + strings.ToLower(skill) + "%"
}
