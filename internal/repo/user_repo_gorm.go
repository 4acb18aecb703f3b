package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-jobportal-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveProfile applies the allow-listed patch to an existing user. Returns
// false when the user does not exist. Loading and saving the whole row
// (rather than a column map) keeps the JSON serializer on skills working.
func (r *UserRepo) SaveProfile(ctx context.Context, id string, p domain.ProfilePatch) (bool, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.ProfileImage != nil {
		u.ProfileImage = p.ProfileImage
	}
	if p.Title != nil {
		u.Title = p.Title
	}
	if p.Location != nil {
		u.Location = p.Location
	}
	if p.Bio != nil {
		u.Bio = p.Bio
	}
	if p.Company != nil {
		u.Company = p.Company
	}
	if p.Skills != nil {
		u.Skills = *p.Skills
	}
	if p.Experience != nil {
		u.Experience = p.Experience
	}
	if p.Education != nil {
		u.Education = p.Education
	}
	if p.Resume != nil {
		u.Resume = p.Resume
	}

	if err := r.db.WithContext(ctx).Save(&u).Error; err != nil {
		return false, err
	}
	return true, nil
}
