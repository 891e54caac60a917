package employees

import (
	"fmt"

	"github.com/Da-0ldSaint/Asm/internal/repository"
	"github.com/Da-0ldSaint/Asm/pkg/apperrors"
	"github.com/Da-0ldSaint/Asm/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type EmployeeRepository interface {
	GetEmployees() ([]models.Employee, error)
	GetEmployee(id uuid.UUID) (*models.Employee, error)
	PersistEmployee(employee *models.Employee) error
	UpdateEmployee(id uuid.UUID, changes goqu.Record) (*models.Employee, error)
	DeleteEmployee(id uuid.UUID) error
}

type employeeRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) EmployeeRepository {
	return &employeeRepositoryImpl{repository: r}
}

var employeeColumns = []interface{}{
	"id", "full_name", "employee_id", "title", "phone", "email",
	"personal_email", "gender", "joining_date", "notes",
	"site_id", "location_id", "created_at",
}

func (r *employeeRepositoryImpl) GetEmployees() ([]models.Employee, error) {
	employees := []models.Employee{}
	query := r.repository.Goqu.
		Select(employeeColumns...).
		From("employees").
		Order(goqu.I("created_at").Desc())

	if err := query.Executor().ScanStructs(&employees); err != nil {
		return nil, fmt.Errorf("unable to fetch employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepositoryImpl) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	query := r.repository.Goqu.
		Select(employeeColumns...).
		From("employees").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&employee)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch employee: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFoundError("employee", id.String())
	}

	return &employee, nil
}

// PersistEmployee relies on the exact-string unique index on email;
// uniqueness is case-sensitive.
func (r *employeeRepositoryImpl) PersistEmployee(employee *models.Employee) error {
	employee.ID = uuid.New()
	query := r.repository.Goqu.Insert("employees").
		Rows(goqu.Record{
			"id":             employee.ID,
			"full_name":      employee.FullName,
			"employee_id":    employee.EmployeeID,
			"title":          employee.Title,
			"phone":          employee.Phone,
			"email":          employee.Email,
			"personal_email": employee.PersonalEmail,
			"gender":         employee.Gender,
			"joining_date":   employee.JoiningDate,
			"notes":          employee.Notes,
			"site_id":        employee.SiteID,
			"location_id":    employee.LocationID,
		}).
		Returning("created_at")

	if _, err := query.Executor().ScanVal(&employee.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return apperrors.WrapDBError("Employee email or id already registered", string(pqErr.Code))
		}
		return fmt.Errorf("failed to insert employee record: %w", err)
	}

	return nil
}

func (r *employeeRepositoryImpl) UpdateEmployee(id uuid.UUID, changes goqu.Record) (*models.Employee, error) {
	if len(changes) == 0 {
		return r.GetEmployee(id)
	}

	query := r.repository.Goqu.
		Update("employees").
		Set(changes).
		Where(goqu.Ex{"id": id})

	result, err := query.Executor().Exec()
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, apperrors.WrapDBError("Employee email or id already registered", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("employee", id.String())
	}

	return r.GetEmployee(id)
}

func (r *employeeRepositoryImpl) DeleteEmployee(id uuid.UUID) error {
	result, err := r.repository.Goqu.
		Delete("employees").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not retrieve rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NewNotFoundError("employee", id.String())
	}

	return nil
}
