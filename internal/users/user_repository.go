package users

import (
	"fmt"

	"github.com/Da-0ldSaint/Asm/internal/repository"
	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type UserRepository interface {
	GetUser(id uuid.UUID) (*models.User, error)
	UpdateUser(id uuid.UUID, changes goqu.Record) (*models.User, error)
	UpdatePassword(id uuid.UUID, passwordHash string) error
}

type userRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) UserRepository {
	return &userRepositoryImpl{repository: r}
}

var userColumns = []interface{}{
	"id", "first_name", "last_name", "title", "phone", "email",
	"password_hash", "timezone", "date_format", "time_format",
	"profile_image", "role", "created_at",
}

func (r *userRepositoryImpl) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	query := r.repository.Goqu.
		Select(userColumns...).
		From("users").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch user: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFoundError("user", id.String())
	}

	return &user, nil
}

func (r *userRepositoryImpl) UpdateUser(id uuid.UUID, changes goqu.Record) (*models.User, error) {
	if len(changes) == 0 {
		return r.GetUser(id)
	}

	result, err := r.repository.Goqu.
		Update("users").
		Set(changes).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("user", id.String())
	}

	return r.GetUser(id)
}

func (r *userRepositoryImpl) UpdatePassword(id uuid.UUID, passwordHash string) error {
	result, err := r.repository.Goqu.
		Update("users").
		Set(goqu.Record{"password_hash": passwordHash}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("user", id.String())
	}

	return nil
}
