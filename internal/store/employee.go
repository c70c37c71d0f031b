package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"staffhub.app/api-server/internal/model"
)

type employeeStore struct {
	db DBTX
}

func newEmployeeStore(db DBTX) EmployeeStore {
	return &employeeStore{db: db}
}

const employeeColumns = `e.id, e.department_id, d.name AS department_name,
	e.name, e.email, e.phone, e.dob, e.salary, e.status, e.photo,
	e.created_at, e.modified_at`

const employeeFrom = `
	FROM employees e
	LEFT JOIN departments d ON e.department_id = d.id`

func (s *employeeStore) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE e.id = $1", employeeColumns, employeeFrom)

	emp, err := scanEmployee(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting employee: %w", err)
	}
	return emp, nil
}

func (s *employeeStore) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE e.email = $1", employeeColumns, employeeFrom)

	emp, err := scanEmployee(s.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting employee by email: %w", err)
	}
	return emp, nil
}

// List shares one FROM/WHERE between the count and the data query;
// search matches name or email, case-insensitively.
func (s *employeeStore) List(ctx context.Context, params ListEmployeesParams) ([]model.Employee, int64, error) {
	where := "WHERE 1=1"
	args := []any{}

	if params.Status != nil {
		args = append(args, *params.Status)
		where += fmt.Sprintf(" AND e.status = $%d", len(args))
	}
	if params.DepartmentID != nil {
		args = append(args, *params.DepartmentID)
		where += fmt.Sprintf(" AND e.department_id = $%d", len(args))
	}
	if params.Search != nil && *params.Search != "" {
		args = append(args, "%"+*params.Search+"%")
		where += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.email ILIKE $%d)", len(args), len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*)" + employeeFrom + " " + where
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting employees: %w", err)
	}

	args = append(args, params.Limit, params.Offset)
	dataQuery := fmt.Sprintf(`SELECT %s %s %s
		ORDER BY e.id DESC
		LIMIT $%d OFFSET $%d`,
		employeeColumns, employeeFrom, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var emps []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(
			&e.ID, &e.DepartmentID, &e.DepartmentName, &e.Name, &e.Email,
			&e.Phone, &e.DOB, &e.Salary, &e.Status, &e.Photo,
			&e.CreatedAt, &e.ModifiedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning employee: %w", err)
		}
		emps = append(emps, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading employees: %w", err)
	}
	return emps, total, nil
}

func (s *employeeStore) Create(ctx context.Context, emp *model.Employee) error {
	query := `
		INSERT INTO employees (id, department_id, name, email, phone, dob, salary, status, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, modified_at`

	err := s.db.QueryRow(ctx, query,
		emp.ID, emp.DepartmentID, emp.Name, emp.Email, emp.Phone,
		emp.DOB, emp.Salary, emp.Status, emp.Photo,
	).Scan(&emp.CreatedAt, &emp.ModifiedAt)
	if err != nil {
		if uniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("creating employee: %w", err)
	}
	return nil
}

// Update writes only the provided fields; email is not updatable. The
// caller guarantees the patch is non-empty. DepartmentName on the
// returned row is not populated; fetch via GetByID when it matters.
func (s *employeeStore) Update(ctx context.Context, id int64, params UpdateEmployeeParams) (*model.Employee, error) {
	set := []string{}
	args := []any{}

	if params.DepartmentID != nil {
		args = append(args, *params.DepartmentID)
		set = append(set, fmt.Sprintf("department_id = $%d", len(args)))
	}
	if params.Name != nil {
		args = append(args, *params.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if params.Phone != nil {
		args = append(args, *params.Phone)
		set = append(set, fmt.Sprintf("phone = $%d", len(args)))
	}
	if params.DOB != nil {
		args = append(args, *params.DOB)
		set = append(set, fmt.Sprintf("dob = $%d", len(args)))
	}
	if params.Salary != nil {
		args = append(args, *params.Salary)
		set = append(set, fmt.Sprintf("salary = $%d", len(args)))
	}
	if params.Status != nil {
		args = append(args, *params.Status)
		set = append(set, fmt.Sprintf("status = $%d", len(args)))
	}
	if params.Photo != nil {
		args = append(args, *params.Photo)
		set = append(set, fmt.Sprintf("photo = $%d", len(args)))
	}
	set = append(set, "modified_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $%d
		RETURNING id, department_id, name, email, phone, dob, salary, status, photo, created_at, modified_at`,
		strings.Join(set, ", "), len(args))

	var e model.Employee
	err := s.db.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.DepartmentID, &e.Name, &e.Email, &e.Phone,
		&e.DOB, &e.Salary, &e.Status, &e.Photo, &e.CreatedAt, &e.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating employee: %w", err)
	}
	return &e, nil
}

func (s *employeeStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var e model.Employee
	err := row.Scan(
		&e.ID, &e.DepartmentID, &e.DepartmentName, &e.Name, &e.Email,
		&e.Phone, &e.DOB, &e.Salary, &e.Status, &e.Photo,
		&e.CreatedAt, &e.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
