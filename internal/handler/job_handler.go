package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "jobhaven/internal/errors"
	"jobhaven/internal/model"
	"jobhaven/internal/service"
)

// JobHandler handles job posting endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest represents a job posting submission.
type CreateJobRequest struct {
	CompanyName        string `json:"companyName" form:"companyName" validate:"required"`
	LogoURL            string `json:"logoURL" form:"logoURL" validate:"required"`
	JobPosition        string `json:"jobPosition" form:"jobPosition" validate:"required"`
	MonthlySalary      int    `json:"monthlySalary" form:"monthlySalary" validate:"required"`
	JobType            string `json:"jobType" form:"jobType" validate:"omitempty,oneof=full-time part-time contract"`
	RemoteOffice       string `json:"remoteOffice" form:"remoteOffice" validate:"omitempty,oneof=remote office hybrid"`
	Location           string `json:"location" form:"location"`
	JobDescription     string `json:"jobDescription" form:"jobDescription" validate:"required"`
	CompanyDescription string `json:"companyDescription" form:"companyDescription" validate:"required"`
	SkillsRequired     string `json:"skillsRequired" form:"skillsRequired" validate:"required"`
	AdditionalInfo     string `json:"additionalInfo" form:"additionalInfo"`
}

// CreateJob godoc
// @Summary Create a job posting (recruiters only)
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body CreateJobRequest true "Job posting"
// @Success 201 {object} map[string]string
// @Failure 500 {object} errors.StoreError
// @Router /jobpost [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		// Schema-level rejections ride the same 500 shape the store path
		// uses, matching the legacy contract.
		return c.JSON(http.StatusInternalServerError, apperrors.NewStoreError("Error creating job listing", err))
	}

	job := &model.Job{
		CompanyName:        req.CompanyName,
		LogoURL:            req.LogoURL,
		JobPosition:        req.JobPosition,
		MonthlySalary:      req.MonthlySalary,
		JobType:            req.JobType,
		RemoteOffice:       req.RemoteOffice,
		Location:           req.Location,
		JobDescription:     req.JobDescription,
		CompanyDescription: req.CompanyDescription,
		SkillsRequired:     req.SkillsRequired,
		AdditionalInfo:     req.AdditionalInfo,
	}

	if err := h.jobService.Create(c.Request().Context(), job); err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.NewStoreError("Error creating job listing", err))
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Job listing created successfully"})
}

// ListJobs godoc
// @Summary List job postings, optionally filtered by skills
// @Tags jobs
// @Produce json
// @Param selectedSkills query string false "comma-separated skill tokens, OR-combined substring match"
// @Success 200 {array} model.Job
// @Router /joblist [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	jobs, err := h.jobService.List(c.Request().Context(), c.QueryParam("selectedSkills"))
	if err != nil {
		// The store error is echoed back as JSON, legacy behavior.
		return c.JSON(http.StatusOK, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, jobs)
}

// JobDetails godoc
// @Summary Fetch a single job posting
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} map[string]string
// @Failure 500 {object} errors.StoreError
// @Router /jobdetails/{jobId} [get]
func (h *JobHandler) JobDetails(c echo.Context) error {
	job, err := h.jobService.Get(c.Request().Context(), c.Param("jobId"))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Job not found"})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.NewStoreError("An error occurred", err))
	}
	return c.JSON(http.StatusOK, job)
}

// EditJob godoc
// @Summary Fetch a job posting for edit prefill
// @Tags jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} map[string]string
// @Router /editjob/{jobId} [get]
func (h *JobHandler) EditJob(c echo.Context) error {
	job, err := h.jobService.Get(c.Request().Context(), c.Param("jobId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Job not found"})
	}
	return c.JSON(http.StatusOK, job)
}
