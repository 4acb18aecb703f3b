package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobportal-api/internal/core/cache"
	"go-jobportal-api/internal/domain"
	"go-jobportal-api/internal/transport/http/ez"
	"go-jobportal-api/pkg/utils"
)

func mountJobActions(api *gin.RouterGroup, d Deps) {
	ezAPI := ez.New(api)

	// --- POST /jobs?employer_id=... ---
	type jobCreateIn struct {
		Title        string     `json:"title"        binding:"required"`
		Company      string     `json:"company"      binding:"required"`
		Location     string     `json:"location"     binding:"required"`
		JobType      string     `json:"job_type"     binding:"required"`
		SalaryRange  *string    `json:"salary_range"`
		Description  string     `json:"description"  binding:"required"`
		Requirements []string   `json:"requirements"`
		Benefits     []string   `json:"benefits"`
		ExpiresAt    *time.Time `json:"expires_at"`
	}
	ez.Register[jobCreateIn, domain.Job](ezAPI, ez.Action[jobCreateIn, domain.Job]{
		Method: http.MethodPost,
		Path:   "/jobs",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *jobCreateIn) (domain.Job, error) {
			employerID, err := d.Ident.ActorID(c, "employer_id")
			if err != nil {
				return domain.Job{}, actorErr(err, "employer_id")
			}
			j := domain.Job{
				ID:           utils.NewID(),
				Title:        in.Title,
				Company:      in.Company,
				Location:     in.Location,
				JobType:      in.JobType,
				SalaryRange:  in.SalaryRange,
				Description:  in.Description,
				Requirements: orEmpty(in.Requirements),
				Benefits:     orEmpty(in.Benefits),
				EmployerID:   employerID,
				PostedAt:     time.Now().UTC(),
				ExpiresAt:    in.ExpiresAt,
				Status:       domain.JobStatusActive,
			}
			if err := d.Jobs.Create(c, &j); err != nil {
				return domain.Job{}, ez.Internal("create job failed", err)
			}
			return j, nil
		},
	})

	// --- GET /jobs ---
	type jobListQ struct {
		Skip     int    `form:"skip,default=0"`
		Limit    int    `form:"limit,default=20"`
		Search   string `form:"search"`
		Location string `form:"location"`
		JobType  string `form:"job_type"`
	}
	ez.Register[jobListQ, []domain.Job](ezAPI, ez.Action[jobListQ, []domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *jobListQ) ([]domain.Job, error) {
			if in.Limit <= 0 || in.Limit > 100 {
				in.Limit = 20
			}
			if in.Skip < 0 {
				in.Skip = 0
			}
			jobs, err := d.Jobs.List(c, domain.JobFilter{
				Skip:     in.Skip,
				Limit:    in.Limit,
				Search:   in.Search,
				Location: in.Location,
				JobType:  in.JobType,
			})
			if err != nil {
				return nil, ez.Internal("list jobs failed", err)
			}
			return jobs, nil
		},
	})

	// --- GET /jobs/:id ---
	ez.Register[struct{}, domain.Job](ezAPI, ez.Action[struct{}, domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (domain.Job, error) {
			id := c.Param("id")
			var j *domain.Job
			var err error
			if d.JobCache != nil {
				// jobs never change after creation in this surface, so a
				// short TTL cannot serve stale fields
				j, err = cache.GetOrLoadJSON[domain.Job](d.JobCache, c, "job:"+id, d.JobCacheTTL,
					func(ctx context.Context) (*domain.Job, error) {
						return d.Jobs.FindByID(ctx, id)
					})
			} else {
				j, err = d.Jobs.FindByID(c, id)
			}
			if err != nil {
				return domain.Job{}, ez.Internal("lookup job failed", err)
			}
			if j == nil {
				return domain.Job{}, ez.NotFound("Job not found")
			}
			return *j, nil
		},
	})

	// --- GET /jobs/employer/:id ---
	// gin's route tree cannot hold /jobs/employer/:id next to /jobs/:id, so
	// this registers as /jobs/:id/:employer_id and validates the first
	// segment; the external path is unchanged.
	ez.Register[struct{}, []domain.Job](ezAPI, ez.Action[struct{}, []domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs/:id/:employer_id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Job, error) {
			if c.Param("id") != "employer" {
				return nil, ez.NotFound("Job not found")
			}
			jobs, err := d.Jobs.ByEmployer(c, c.Param("employer_id"))
			if err != nil {
				return nil, ez.Internal("list employer jobs failed", err)
			}
			return jobs, nil
		},
	})
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
