package dto

import "staffhub.app/api-server/internal/model"

type DepartmentSalaryResponse struct {
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

type SalaryRangeCountResponse struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

type YoungestEmployeeResponse struct {
	Department string `json:"department"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
}

type EmployeeStatsResponse struct {
	DepartmentHighestSalary []DepartmentSalaryResponse `json:"departmentHighestSalary"`
	SalaryRangeCount        []SalaryRangeCountResponse `json:"salaryRangeCount"`
	YoungestByDepartment    []YoungestEmployeeResponse `json:"youngestByDepartment"`
}

func ToEmployeeStatsResponse(stats *model.EmployeeStats) *EmployeeStatsResponse {
	resp := &EmployeeStatsResponse{
		DepartmentHighestSalary: make([]DepartmentSalaryResponse, len(stats.DepartmentHighestSalary)),
		SalaryRangeCount:        make([]SalaryRangeCountResponse, len(stats.SalaryRangeCount)),
		YoungestByDepartment:    make([]YoungestEmployeeResponse, len(stats.YoungestByDepartment)),
	}
	for i, ds := range stats.DepartmentHighestSalary {
		resp.DepartmentHighestSalary[i] = DepartmentSalaryResponse{Department: ds.Department, Salary: ds.Salary}
	}
	for i, rc := range stats.SalaryRangeCount {
		resp.SalaryRangeCount[i] = SalaryRangeCountResponse{Range: rc.Range, Count: rc.Count}
	}
	for i, ye := range stats.YoungestByDepartment {
		resp.YoungestByDepartment[i] = YoungestEmployeeResponse{Department: ye.Department, Name: ye.Name, Age: ye.Age}
	}
	return resp
}
