package records

import (
	"context"

	"masar/internal/arabic"
)

// Service fronts the store with the write policy: every text attribute is
// normalized first, then validated, then persisted. Nothing is written when
// validation fails.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) AddEmployee(ctx context.Context, emp Employee, attachments []Attachment) (int64, error) {
	emp = normalizeEmployee(emp)
	if err := s.validate(ctx, emp, 0); err != nil {
		return 0, err
	}
	return s.store.CreateEmployee(ctx, emp, attachments)
}

func (s *Service) UpdateEmployee(ctx context.Context, employeeID int64, emp Employee, attachments []Attachment) error {
	emp = normalizeEmployee(emp)
	if err := s.validate(ctx, emp, employeeID); err != nil {
		return err
	}
	return s.store.UpdateEmployee(ctx, employeeID, emp, attachments)
}

func (s *Service) DeleteEmployee(ctx context.Context, employeeID int64) error {
	return s.store.DeleteEmployee(ctx, employeeID)
}

func (s *Service) GetEmployee(ctx context.Context, employeeID int64) (*Employee, error) {
	return s.store.GetEmployee(ctx, employeeID)
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

// SearchEmployees normalizes the query before matching so letter variants in
// the query and in stored data compare equal. An empty query lists everyone.
func (s *Service) SearchEmployees(ctx context.Context, query string) ([]Employee, error) {
	normalized := arabic.Normalize(query)
	if normalized == "" {
		return s.store.ListEmployees(ctx)
	}
	return s.store.SearchEmployees(ctx, normalized)
}

func (s *Service) ListAttachments(ctx context.Context, employeeID int64) ([]Attachment, error) {
	return s.store.ListAttachments(ctx, employeeID)
}

func (s *Service) Photo(ctx context.Context, employeeID int64) (*Attachment, error) {
	return s.store.Photo(ctx, employeeID)
}

func (s *Service) CountEmployees(ctx context.Context) (int, error) {
	return s.store.CountEmployees(ctx)
}

func (s *Service) CountDepartments(ctx context.Context) (int, error) {
	return s.store.CountDepartments(ctx)
}

func (s *Service) CountAttachments(ctx context.Context) (int, error) {
	return s.store.CountAttachments(ctx)
}

func normalizeEmployee(emp Employee) Employee {
	emp.Name = arabic.Normalize(emp.Name)
	emp.Grade = arabic.Normalize(emp.Grade)
	emp.GradeDate = arabic.Normalize(emp.GradeDate)
	emp.HireDate = arabic.Normalize(emp.HireDate)
	emp.FileNo = arabic.Normalize(emp.FileNo)
	emp.Qualification = arabic.Normalize(emp.Qualification)
	emp.FunctionalGroup = arabic.Normalize(emp.FunctionalGroup)
	emp.TypeGroup = arabic.Normalize(emp.TypeGroup)
	emp.JobTitle = arabic.Normalize(emp.JobTitle)
	emp.Department = arabic.Normalize(emp.Department)
	emp.CurrentWork = arabic.Normalize(emp.CurrentWork)
	emp.BirthDate = arabic.Normalize(emp.BirthDate)
	emp.InsuranceNo = arabic.Normalize(emp.InsuranceNo)
	emp.NationalID = arabic.Normalize(emp.NationalID)
	emp.Address = arabic.Normalize(emp.Address)
	emp.Phone = arabic.Normalize(emp.Phone)
	emp.Notes = arabic.Normalize(emp.Notes)
	return emp
}
