package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobportal-api/internal/domain"
	"go-jobportal-api/internal/repo"
	"go-jobportal-api/internal/transport/http/ez"
	"go-jobportal-api/pkg/utils"
)

func mountAuthActions(api *gin.RouterGroup, d Deps) {
	ezAPI := ez.New(api)

	// --- POST /auth/register ---
	type registerIn struct {
		Email    string `json:"email"     binding:"required"`
		Password string `json:"password"  binding:"required"`
		Name     string `json:"name"      binding:"required"`
		UserType string `json:"user_type" binding:"required"`
	}
	ez.Register[registerIn, domain.User](ezAPI, ez.Action[registerIn, domain.User]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (domain.User, error) {
			email := strings.TrimSpace(in.Email)

			existing, err := d.Users.FindByEmail(c, email)
			if err != nil {
				return domain.User{}, ez.Internal("lookup user failed", err)
			}
			if existing != nil {
				return domain.User{}, ez.BadRequest("Email already registered")
			}

			u := domain.User{
				ID:        utils.NewID(),
				Email:     email,
				Password:  d.Pass.Store(in.Password),
				Name:      in.Name,
				UserType:  in.UserType,
				Skills:    []string{},
				CreatedAt: time.Now().UTC(),
			}
			if err := d.Users.Create(c, &u); err != nil {
				// the pre-check races with concurrent identical requests;
				// the unique index on email is the backstop
				if repo.IsDuplicateKey(err) {
					return domain.User{}, ez.BadRequest("Email already registered")
				}
				return domain.User{}, ez.Internal("create user failed", err)
			}
			return u, nil
		},
	})

	// --- POST /auth/login ---
	type loginIn struct {
		Email    string `json:"email"    binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	ez.Register[loginIn, domain.User](ezAPI, ez.Action[loginIn, domain.User]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (domain.User, error) {
			u, err := d.Users.FindByEmail(c, strings.TrimSpace(in.Email))
			if err != nil {
				return domain.User{}, ez.Internal("lookup user failed", err)
			}
			// unknown email and wrong password are deliberately the same answer
			if u == nil || !d.Pass.Verify(in.Password, u.Password) {
				return domain.User{}, ez.Unauthorized("Invalid credentials")
			}
			return *u, nil
		},
	})
}
