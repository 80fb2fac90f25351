package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
	"github.com/RoyceAzure/lab/restaurant/internal/infra/repository/db"
	"github.com/rs/zerolog"
)

type IEmployeeService interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByTaxID(ctx context.Context, taxID string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, taxID string, patch model.EmployeePatch) (*model.Employee, error)
	Remove(ctx context.Context, taxID string) error
}

type EmployeeService struct {
	store  db.UnifiedDB
	logger *zerolog.Logger
}

func NewEmployeeService(store db.UnifiedDB, logger *zerolog.Logger) *EmployeeService {
	return &EmployeeService{store: store, logger: logger}
}

func (s *EmployeeService) Create(ctx context.Context, employee *model.Employee) error {
	if err := validatePerson(employee.Name, employee.TaxID, employee.Age); err != nil {
		return err
	}
	if employee.Salary.IsNegative() {
		return apperr.Validation("salary must not be negative, got %s", employee.Salary)
	}
	if err := s.store.CreateEmployee(ctx, employee); err != nil {
		logFailure(s.logger, err, "create employee")
		return err
	}
	s.logger.Info().Uint("employee_id", employee.ID).Str("tax_id", employee.TaxID).Msg("employee created")
	return nil
}

func (s *EmployeeService) GetByTaxID(ctx context.Context, taxID string) (*model.Employee, error) {
	return s.store.GetEmployeeByTaxID(ctx, taxID)
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.store.GetAllEmployees(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, taxID string, patch model.EmployeePatch) (*model.Employee, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperr.Validation("name must not be blank")
	}
	if patch.Age != nil && *patch.Age < 0 {
		return nil, apperr.Validation("age must not be negative, got %d", *patch.Age)
	}
	if patch.Salary != nil && patch.Salary.IsNegative() {
		return nil, apperr.Validation("salary must not be negative, got %s", patch.Salary)
	}
	employee, err := s.store.PatchEmployee(ctx, taxID, patch)
	if err != nil {
		logFailure(s.logger, err, "update employee")
		return nil, err
	}
	s.logger.Info().Str("tax_id", taxID).Msg("employee updated")
	return employee, nil
}

func (s *EmployeeService) Remove(ctx context.Context, taxID string) error {
	if err := s.store.DeleteEmployee(ctx, taxID); err != nil {
		logFailure(s.logger, err, "remove employee")
		return err
	}
	s.logger.Info().Str("tax_id", taxID).Msg("employee removed")
	return nil
}

var _ IEmployeeService = (*EmployeeService)(nil)
