package records

import (
	"context"
	"database/sql"
	"errors"
)

const employeeColumns = `name, grade, grade_date, hire_date, file_no, qualification,
functional_group, type_group, job_title, department, current_work,
birth_date, insurance_no, national_id, address, phone, notes`

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) GetEmployee(ctx context.Context, employeeID int64) (*Employee, error) {
	row := s.DB.QueryRowContext(ctx, `
    SELECT id, `+employeeColumns+`
    FROM employees
    WHERE id = ?
  `, employeeID)

	var emp Employee
	if err := scanEmployee(row, &emp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.QueryContext(ctx, `
    SELECT id, `+employeeColumns+`
    FROM employees
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// SearchEmployees matches the already-normalized substring against name,
// department, file_no and national_id. instr keeps the comparison
// case-sensitive, consistent with the normalize-before-compare policy.
func (s *Store) SearchEmployees(ctx context.Context, query string) ([]Employee, error) {
	rows, err := s.DB.QueryContext(ctx, `
    SELECT id, `+employeeColumns+`
    FROM employees
    WHERE instr(name, ?) > 0
       OR instr(department, ?) > 0
       OR instr(file_no, ?) > 0
       OR instr(national_id, ?) > 0
    ORDER BY id
  `, query, query, query, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// CreateEmployee inserts the record and persists the provided attachment set
// under the new id in the same transaction.
func (s *Store) CreateEmployee(ctx context.Context, emp Employee, attachments []Attachment) (int64, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
    INSERT INTO employees (`+employeeColumns+`)
    VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
  `, employeeArgs(emp)...)
	if err != nil {
		return 0, err
	}
	employeeID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := insertAttachments(ctx, tx, employeeID, attachments); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return employeeID, nil
}

// UpdateEmployee overwrites every attribute, then deletes all prior
// attachment rows for the employee and reinserts the given set. Edits replace
// the attachment set wholesale instead of merging, so upload timestamps
// reflect the submitted rows.
func (s *Store) UpdateEmployee(ctx context.Context, employeeID int64, emp Employee, attachments []Attachment) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	cmd, err := tx.ExecContext(ctx, `
    UPDATE employees
    SET name = ?, grade = ?, grade_date = ?, hire_date = ?, file_no = ?,
        qualification = ?, functional_group = ?, type_group = ?, job_title = ?,
        department = ?, current_work = ?, birth_date = ?, insurance_no = ?,
        national_id = ?, address = ?, phone = ?, notes = ?
    WHERE id = ?
  `, append(employeeArgs(emp), employeeID)...)
	if err != nil {
		return err
	}
	affected, err := cmd.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM attachments WHERE employee_id = ?", employeeID); err != nil {
		return err
	}
	if err := insertAttachments(ctx, tx, employeeID, attachments); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) DeleteEmployee(ctx context.Context, employeeID int64) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM attachments WHERE employee_id = ?", employeeID); err != nil {
		return err
	}

	cmd, err := tx.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", employeeID)
	if err != nil {
		return err
	}
	affected, err := cmd.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return tx.Commit()
}

func (s *Store) CountEmployees(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM employees").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) CountDepartments(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, "SELECT COUNT(DISTINCT department) FROM employees").Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) fileNoTaken(ctx context.Context, fileNo string, excludeID int64) (bool, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM employees WHERE file_no = ? AND id != ?", fileNo, excludeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) nationalIDTaken(ctx context.Context, nationalID string, excludeID int64) (bool, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM employees WHERE national_id = ? AND id != ?", nationalID, excludeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner, emp *Employee) error {
	return row.Scan(
		&emp.ID, &emp.Name, &emp.Grade, &emp.GradeDate, &emp.HireDate, &emp.FileNo,
		&emp.Qualification, &emp.FunctionalGroup, &emp.TypeGroup, &emp.JobTitle,
		&emp.Department, &emp.CurrentWork, &emp.BirthDate, &emp.InsuranceNo,
		&emp.NationalID, &emp.Address, &emp.Phone, &emp.Notes,
	)
}

func collectEmployees(rows *sql.Rows) ([]Employee, error) {
	var out []Employee
	for rows.Next() {
		var emp Employee
		if err := scanEmployee(rows, &emp); err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func employeeArgs(emp Employee) []any {
	return []any{
		emp.Name, emp.Grade, emp.GradeDate, emp.HireDate, emp.FileNo,
		emp.Qualification, emp.FunctionalGroup, emp.TypeGroup, emp.JobTitle,
		emp.Department, emp.CurrentWork, emp.BirthDate, emp.InsuranceNo,
		emp.NationalID, emp.Address, emp.Phone, emp.Notes,
	}
}
