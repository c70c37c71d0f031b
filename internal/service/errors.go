package service

import "errors"

var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmailTaken             = errors.New("employee with this email already exists")
	ErrDepartmentHasEmployees = errors.New("cannot delete department with existing employees")
	ErrNoFieldsToUpdate       = errors.New("no fields to update")
)
