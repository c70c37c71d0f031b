package store

import (
	"context"
	"fmt"

	"staffhub.app/api-server/internal/model"
)

type statsStore struct {
	db DBTX
}

func newStatsStore(db DBTX) StatsStore {
	return &statsStore{db: db}
}

// salaryRanges is the fixed histogram, in presentation order.
var salaryRanges = []string{"0-50000", "50001-100000", "100000+"}

// EmployeeStats computes the three aggregate views over active
// employees. Run it through TxRunner.WithReadTx so all three observe
// the same snapshot.
func (s *statsStore) EmployeeStats(ctx context.Context) (*model.EmployeeStats, error) {
	highest, err := s.departmentHighestSalary(ctx)
	if err != nil {
		return nil, err
	}

	ranges, err := s.salaryRangeCount(ctx)
	if err != nil {
		return nil, err
	}

	youngest, err := s.youngestByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	return &model.EmployeeStats{
		DepartmentHighestSalary: highest,
		SalaryRangeCount:        ranges,
		YoungestByDepartment:    youngest,
	}, nil
}

// Departments without active employees are excluded by the inner join.
func (s *statsStore) departmentHighestSalary(ctx context.Context) ([]model.DepartmentSalary, error) {
	query := `
		SELECT d.name AS department, MAX(e.salary) AS salary
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		WHERE e.status = $1
		GROUP BY d.id, d.name
		ORDER BY d.name ASC`

	rows, err := s.db.Query(ctx, query, model.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("querying highest salaries: %w", err)
	}
	defer rows.Close()

	result := []model.DepartmentSalary{}
	for rows.Next() {
		var ds model.DepartmentSalary
		if err := rows.Scan(&ds.Department, &ds.Salary); err != nil {
			return nil, fmt.Errorf("scanning highest salary: %w", err)
		}
		result = append(result, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading highest salaries: %w", err)
	}
	return result, nil
}

func (s *statsStore) salaryRangeCount(ctx context.Context) ([]model.SalaryRangeCount, error) {
	query := `
		SELECT
			CASE
				WHEN e.salary <= 50000 THEN '0-50000'
				WHEN e.salary <= 100000 THEN '50001-100000'
				ELSE '100000+'
			END AS salary_range,
			COUNT(*) AS count
		FROM employees e
		WHERE e.status = $1
		GROUP BY 1`

	rows, err := s.db.Query(ctx, query, model.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("querying salary ranges: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64, len(salaryRanges))
	for rows.Next() {
		var bucket string
		var count int64
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("scanning salary range: %w", err)
		}
		counts[bucket] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading salary ranges: %w", err)
	}
	return fillSalaryRanges(counts), nil
}

// fillSalaryRanges orders the scanned counts by bucket bound and adds
// empty buckets the GROUP BY left out.
func fillSalaryRanges(counts map[string]int64) []model.SalaryRangeCount {
	result := make([]model.SalaryRangeCount, len(salaryRanges))
	for i, r := range salaryRanges {
		result[i] = model.SalaryRangeCount{Range: r, Count: counts[r]}
	}
	return result
}

// Ties on dob resolve to the higher id, so the result is deterministic.
func (s *statsStore) youngestByDepartment(ctx context.Context) ([]model.YoungestEmployee, error) {
	query := `
		SELECT DISTINCT ON (e.department_id)
			d.name AS department,
			e.name,
			DATE_PART('year', AGE(CURRENT_DATE, e.dob))::int AS age
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		WHERE e.status = $1
		ORDER BY e.department_id, e.dob DESC, e.id DESC`

	rows, err := s.db.Query(ctx, query, model.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("querying youngest employees: %w", err)
	}
	defer rows.Close()

	result := []model.YoungestEmployee{}
	for rows.Next() {
		var ye model.YoungestEmployee
		if err := rows.Scan(&ye.Department, &ye.Name, &ye.Age); err != nil {
			return nil, fmt.Errorf("scanning youngest employee: %w", err)
		}
		result = append(result, ye)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading youngest employees: %w", err)
	}
	return result, nil
}
