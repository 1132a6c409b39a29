package payroll

import "errors"

var (
	ErrEmployeeAlreadyExists = errors.New("payroll: employee already exists")
	ErrEmployeeNotFound      = errors.New("payroll: employee not found")
	ErrMemberAlreadyExists   = errors.New("payroll: union member already registered")
	ErrMemberNotFound        = errors.New("payroll: union member not found")

	ErrHourlyClassificationRequired       = errors.New("payroll: hourly classification required")
	ErrCommissionedClassificationRequired = errors.New("payroll: commissioned classification required")
	ErrUnionAffiliationRequired           = errors.New("payroll: union affiliation required")
)
