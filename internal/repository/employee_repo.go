// Package repository provides sqlite-backed access to the employee
// directory and the persisted claim state.
package repository

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/kathiroli/travel-claim/internal/models"
)

// EmployeeRepository reads the static employee directory.
type EmployeeRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *sql.DB, logger *zap.Logger) *EmployeeRepository {
	return &EmployeeRepository{db: db, logger: logger}
}

// GetByPersNo retrieves an employee by personnel number. Returns nil, nil
// when the number is unknown.
func (r *EmployeeRepository) GetByPersNo(persNo string) (*models.Employee, error) {
	query := `
		SELECT pers_no, name, grade, position, department
		FROM employees
		WHERE pers_no = ?
	`

	var emp models.Employee
	err := r.db.QueryRow(query, persNo).Scan(
		&emp.PersNo,
		&emp.Name,
		&emp.Grade,
		&emp.Position,
		&emp.Department,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get employee", zap.String("pers_no", persNo), zap.Error(err))
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &emp, nil
}

// List returns the full directory ordered by personnel number.
func (r *EmployeeRepository) List() ([]*models.Employee, error) {
	query := `
		SELECT pers_no, name, grade, position, department
		FROM employees
		ORDER BY pers_no
	`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Failed to list employees", zap.Error(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		var emp models.Employee
		if err := rows.Scan(&emp.PersNo, &emp.Name, &emp.Grade, &emp.Position, &emp.Department); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, &emp)
	}
	return employees, rows.Err()
}
