package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobportal-api/internal/domain"
	"go-jobportal-api/internal/transport/http/ez"
)

func mountUserActions(api *gin.RouterGroup, d Deps) {
	ezAPI := ez.New(api)

	// --- GET /users/:id ---
	ez.Register[struct{}, domain.User](ezAPI, ez.Action[struct{}, domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (domain.User, error) {
			u, err := d.Users.FindByID(c, c.Param("id"))
			if err != nil {
				return domain.User{}, ez.Internal("lookup user failed", err)
			}
			if u == nil {
				return domain.User{}, ez.NotFound("User not found")
			}
			return *u, nil
		},
	})

	// --- PUT /users/:id/profile ---
	// The patch binds into the allow-listed ProfilePatch; any other key in
	// the payload is dropped on the floor rather than written through.
	ez.Register[domain.ProfilePatch, gin.H](ezAPI, ez.Action[domain.ProfilePatch, gin.H]{
		Method: http.MethodPut,
		Path:   "/users/:id/profile",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.ProfilePatch) (gin.H, error) {
			ok, err := d.Users.SaveProfile(c, c.Param("id"), *in)
			if err != nil {
				return nil, ez.Internal("update profile failed", err)
			}
			if !ok {
				return nil, ez.NotFound("User not found")
			}
			return gin.H{"message": "Profile updated successfully"}, nil
		},
	})
}
