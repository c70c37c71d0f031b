package model

// DepartmentSalary is the highest active salary within one department.
type DepartmentSalary struct {
	Department string
	Salary     float64
}

// SalaryRangeCount is one bucket of the fixed salary histogram.
type SalaryRangeCount struct {
	Range string
	Count int64
}

// YoungestEmployee is the most recently born active employee of a
// department, with age in whole years at query time.
type YoungestEmployee struct {
	Department string
	Name       string
	Age        int
}

// EmployeeStats bundles the three aggregate views computed from a single
// read snapshot.
type EmployeeStats struct {
	DepartmentHighestSalary []DepartmentSalary
	SalaryRangeCount        []SalaryRangeCount
	YoungestByDepartment    []YoungestEmployee
}
