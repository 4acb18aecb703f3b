package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobportal-api/internal/domain"
	"go-jobportal-api/internal/repo"
	"go-jobportal-api/internal/transport/http/ez"
	"go-jobportal-api/pkg/utils"
)

// appOut is an application enriched with related job/applicant fields.
// Enrichment is best-effort: when a lookup misses, the field is omitted,
// never errored.
type appOut struct {
	domain.Application
	JobTitle      *string `json:"job_title,omitempty"`
	Company       *string `json:"company,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

func mountApplicationActions(api *gin.RouterGroup, d Deps) {
	ezAPI := ez.New(api)

	// --- POST /applications?applicant_id=... ---
	type applyIn struct {
		JobID       string  `json:"job_id" binding:"required"`
		CoverLetter *string `json:"cover_letter"`
	}
	ez.Register[applyIn, appOut](ezAPI, ez.Action[applyIn, appOut]{
		Method: http.MethodPost,
		Path:   "/applications",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *applyIn) (appOut, error) {
			applicantID, err := d.Ident.ActorID(c, "applicant_id")
			if err != nil {
				return appOut{}, actorErr(err, "applicant_id")
			}

			dup, err := d.Apps.Exists(c, in.JobID, applicantID)
			if err != nil {
				return appOut{}, ez.Internal("lookup application failed", err)
			}
			if dup {
				return appOut{}, ez.BadRequest("Already applied for this job")
			}

			a := domain.Application{
				ID:          utils.NewID(),
				JobID:       in.JobID,
				ApplicantID: applicantID,
				CoverLetter: in.CoverLetter,
				Status:      domain.ApplicationStatusPending,
				AppliedAt:   time.Now().UTC(),
			}
			if err := d.Apps.Create(c, &a); err != nil {
				// concurrent duplicate past the pre-check lands here
				if repo.IsDuplicateKey(err) {
					return appOut{}, ez.BadRequest("Already applied for this job")
				}
				return appOut{}, ez.Internal("create application failed", err)
			}

			out := appOut{Application: a}
			if job, err := d.Jobs.FindByID(c, a.JobID); err == nil && job != nil {
				out.JobTitle = &job.Title
				out.Company = &job.Company
			}
			if u, err := d.Users.FindByID(c, applicantID); err == nil && u != nil {
				out.ApplicantName = &u.Name
			}
			return out, nil
		},
	})

	// --- GET /applications/user/:id ---
	ez.Register[struct{}, []appOut](ezAPI, ez.Action[struct{}, []appOut]{
		Method: http.MethodGet,
		Path:   "/applications/user/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]appOut, error) {
			apps, err := d.Apps.ByApplicant(c, c.Param("id"))
			if err != nil {
				return nil, ez.Internal("list applications failed", err)
			}
			out := make([]appOut, 0, len(apps))
			for _, a := range apps {
				row := appOut{Application: a}
				if job, err := d.Jobs.FindByID(c, a.JobID); err == nil && job != nil {
					row.JobTitle = &job.Title
					row.Company = &job.Company
				}
				out = append(out, row)
			}
			return out, nil
		},
	})

	// --- GET /applications/job/:id ---
	ez.Register[struct{}, []appOut](ezAPI, ez.Action[struct{}, []appOut]{
		Method: http.MethodGet,
		Path:   "/applications/job/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]appOut, error) {
			apps, err := d.Apps.ByJob(c, c.Param("id"))
			if err != nil {
				return nil, ez.Internal("list applications failed", err)
			}
			out := make([]appOut, 0, len(apps))
			for _, a := range apps {
				row := appOut{Application: a}
				if u, err := d.Users.FindByID(c, a.ApplicantID); err == nil && u != nil {
					row.ApplicantName = &u.Name
				}
				// the job is re-read for every row; rows of one listing
				// share a job_id, so this is deliberately redundant but
				// keeps the row shape self-contained
				if job, err := d.Jobs.FindByID(c, a.JobID); err == nil && job != nil {
					row.JobTitle = &job.Title
					row.Company = &job.Company
				}
				out = append(out, row)
			}
			return out, nil
		},
	})
}
