package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const (
	UserTypeJobSeeker = "job_seeker"
	UserTypeEmployer  = "employer"
)

// User is both the stored record and the public view: the password and the
// resume blob carry `json:"-"` so every serialization of a User is already
// the public representation.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	Password     string    `gorm:"size:191" json:"-"`
	Name         string    `gorm:"size:64" json:"name"`
	UserType     string    `gorm:"size:16" json:"user_type"` // "job_seeker"/"employer"
	ProfileImage *string   `json:"profile_image"`
	Title        *string   `gorm:"size:128" json:"title"`
	Location     *string   `gorm:"size:128" json:"location"`
	Bio          *string   `json:"bio"`
	Company      *string   `gorm:"size:128" json:"company"`
	Skills       []string  `gorm:"serializer:json" json:"skills"`
	Experience   *string   `json:"experience"`
	Education    *string   `json:"education"`
	Resume       *string   `json:"-"` // opaque encoded blob, never serialized
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

// AfterFind keeps skills a JSON array, not null, for users stored before
// the column had a value.
func (u *User) AfterFind(_ *gorm.DB) error {
	if u.Skills == nil {
		u.Skills = []string{}
	}
	return nil
}

// ProfilePatch is the allow-listed set of updatable profile fields. Keys
// outside this set are silently dropped at bind time.
type ProfilePatch struct {
	Name         *string   `json:"name"`
	ProfileImage *string   `json:"profile_image"`
	Title        *string   `json:"title"`
	Location     *string   `json:"location"`
	Bio          *string   `json:"bio"`
	Company      *string   `json:"company"`
	Skills       *[]string `json:"skills"`
	Experience   *string   `json:"experience"`
	Education    *string   `json:"education"`
	Resume       *string   `json:"resume"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	SaveProfile(ctx context.Context, id string, p ProfilePatch) (bool, error)
}
