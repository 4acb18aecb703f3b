package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobportal-api/internal/domain"
	"go-jobportal-api/internal/transport/http/ez"
)

func mountDashboardActions(api *gin.RouterGroup, d Deps) {
	ezAPI := ez.New(api)

	// --- GET /dashboard/stats?user_id=...&user_type=... ---
	type statsQ struct {
		UserID   string `form:"user_id"   binding:"required"`
		UserType string `form:"user_type" binding:"required"`
	}
	ez.Register[statsQ, gin.H](ezAPI, ez.Action[statsQ, gin.H]{
		Method: http.MethodGet,
		Path:   "/dashboard/stats",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *statsQ) (gin.H, error) {
			if in.UserType == domain.UserTypeJobSeeker {
				total, err := d.Apps.CountByApplicant(c, in.UserID, "")
				if err != nil {
					return nil, ez.Internal("count applications failed", err)
				}
				pending, err := d.Apps.CountByApplicant(c, in.UserID, domain.ApplicationStatusPending)
				if err != nil {
					return nil, ez.Internal("count applications failed", err)
				}
				shortlisted, err := d.Apps.CountByApplicant(c, in.UserID, domain.ApplicationStatusShortlisted)
				if err != nil {
					return nil, ez.Internal("count applications failed", err)
				}
				return gin.H{
					"total_applications": total,
					"pending":            pending,
					"shortlisted":        shortlisted,
				}, nil
			}

			// employer
			totalJobs, err := d.Jobs.CountByEmployer(c, in.UserID)
			if err != nil {
				return nil, ez.Internal("count jobs failed", err)
			}
			activeJobs, err := d.Jobs.CountActiveByEmployer(c, in.UserID)
			if err != nil {
				return nil, ez.Internal("count jobs failed", err)
			}
			ids, err := d.Jobs.IDsByEmployer(c, in.UserID)
			if err != nil {
				return nil, ez.Internal("list job ids failed", err)
			}
			totalApps, err := d.Apps.CountByJobIDs(c, ids)
			if err != nil {
				return nil, ez.Internal("count applications failed", err)
			}
			return gin.H{
				"total_jobs":         totalJobs,
				"active_jobs":        activeJobs,
				"total_applications": totalApps,
			}, nil
		},
	})
}
