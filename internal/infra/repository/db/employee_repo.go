package db

import (
	"context"

	"github.com/RoyceAzure/lab/restaurant/internal/domain/model"
	apperr "github.com/RoyceAzure/lab/restaurant/internal/errors"
)

const entityEmployee = "employee"

type EmployeeRepo struct {
	db *DbDao
}

func NewEmployeeRepo(db *DbDao) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (s *EmployeeRepo) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Employee{}).Where("tax_id = ?", employee.TaxID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.NewRecordError(entityEmployee, employee.TaxID, apperr.ErrConflict)
	}
	err := s.db.WithContext(ctx).Create(employee).Error
	return apperr.Translate(entityEmployee, employee.TaxID, err)
}

func (s *EmployeeRepo) GetEmployeeByTaxID(ctx context.Context, taxID string) (*model.Employee, error) {
	var employee model.Employee
	err := s.db.WithContext(ctx).Where("tax_id = ?", taxID).First(&employee).Error
	if err != nil {
		return nil, apperr.Translate(entityEmployee, taxID, err)
	}
	return &employee, nil
}

func (s *EmployeeRepo) GetAllEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := s.db.WithContext(ctx).Order("id ASC").Find(&employees).Error
	return employees, err
}

func (s *EmployeeRepo) PatchEmployee(ctx context.Context, taxID string, patch model.EmployeePatch) (*model.Employee, error) {
	employee, err := s.GetEmployeeByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return employee, nil
	}
	patch.Apply(employee)
	if err := s.db.WithContext(ctx).Save(employee).Error; err != nil {
		return nil, apperr.Translate(entityEmployee, taxID, err)
	}
	return employee, nil
}

func (s *EmployeeRepo) DeleteEmployee(ctx context.Context, taxID string) error {
	res := s.db.WithContext(ctx).Where("tax_id = ?", taxID).Delete(&model.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NewRecordError(entityEmployee, taxID, apperr.ErrNotFound)
	}
	return nil
}
