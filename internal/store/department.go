package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"staffhub.app/api-server/internal/model"
)

type departmentStore struct {
	db DBTX
}

func newDepartmentStore(db DBTX) DepartmentStore {
	return &departmentStore{db: db}
}

const departmentColumns = `d.id, d.name, d.status, d.created_at, d.modified_at,
	COUNT(e.id) AS employee_count`

func (s *departmentStore) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		WHERE d.id = $1
		GROUP BY d.id`, departmentColumns)

	dept, err := scanDepartment(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting department: %w", err)
	}
	return dept, nil
}

// List runs the count query and the data query over the same predicate
// and parameter list; only projection and LIMIT/OFFSET differ.
func (s *departmentStore) List(ctx context.Context, params ListDepartmentsParams) ([]model.Department, int64, error) {
	where := "WHERE 1=1"
	args := []any{}

	if params.Status != nil {
		args = append(args, *params.Status)
		where += fmt.Sprintf(" AND d.status = $%d", len(args))
	}
	if params.Search != nil && *params.Search != "" {
		args = append(args, "%"+*params.Search+"%")
		where += fmt.Sprintf(" AND d.name ILIKE $%d", len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM departments d " + where
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting departments: %w", err)
	}

	args = append(args, params.Limit, params.Offset)
	dataQuery := fmt.Sprintf(`
		SELECT %s
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		%s
		GROUP BY d.id
		ORDER BY d.id DESC
		LIMIT $%d OFFSET $%d`, departmentColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing departments: %w", err)
	}
	defer rows.Close()

	depts, err := scanDepartments(rows)
	if err != nil {
		return nil, 0, err
	}
	return depts, total, nil
}

// ListAll returns every department with its employee count, ordered by
// name. The client uses it to populate select inputs.
func (s *departmentStore) ListAll(ctx context.Context) ([]model.Department, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id
		ORDER BY d.name ASC`, departmentColumns)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing all departments: %w", err)
	}
	defer rows.Close()

	return scanDepartments(rows)
}

func (s *departmentStore) Create(ctx context.Context, dept *model.Department) error {
	query := `
		INSERT INTO departments (id, name, status)
		VALUES ($1, $2, $3)
		RETURNING created_at, modified_at`

	err := s.db.QueryRow(ctx, query, dept.ID, dept.Name, dept.Status).
		Scan(&dept.CreatedAt, &dept.ModifiedAt)
	if err != nil {
		if uniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("creating department: %w", err)
	}
	dept.EmployeeCount = 0
	return nil
}

// Update writes only the provided fields. The caller guarantees the
// patch is non-empty. EmployeeCount on the returned row is not
// populated; fetch via GetByID when it matters.
func (s *departmentStore) Update(ctx context.Context, id int64, params UpdateDepartmentParams) (*model.Department, error) {
	set := []string{}
	args := []any{}

	if params.Name != nil {
		args = append(args, *params.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if params.Status != nil {
		args = append(args, *params.Status)
		set = append(set, fmt.Sprintf("status = $%d", len(args)))
	}
	set = append(set, "modified_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE departments
		SET %s
		WHERE id = $%d
		RETURNING id, name, status, created_at, modified_at`,
		strings.Join(set, ", "), len(args))

	var dept model.Department
	err := s.db.QueryRow(ctx, query, args...).
		Scan(&dept.ID, &dept.Name, &dept.Status, &dept.CreatedAt, &dept.ModifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating department: %w", err)
	}
	return &dept, nil
}

func (s *departmentStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *departmentStore) CountEmployees(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE department_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting dependent employees: %w", err)
	}
	return count, nil
}

func scanDepartment(row pgx.Row) (*model.Department, error) {
	var d model.Department
	err := row.Scan(&d.ID, &d.Name, &d.Status, &d.CreatedAt, &d.ModifiedAt, &d.EmployeeCount)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDepartments(rows pgx.Rows) ([]model.Department, error) {
	var depts []model.Department
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Status, &d.CreatedAt, &d.ModifiedAt, &d.EmployeeCount); err != nil {
			return nil, fmt.Errorf("scanning department: %w", err)
		}
		depts = append(depts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading departments: %w", err)
	}
	return depts, nil
}
