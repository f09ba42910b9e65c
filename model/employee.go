package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Department struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (Department) TableName() string { return "departments" }

type Employee struct {
	PersonId     uint            `gorm:"primaryKey" json:"personId"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     time.Time       `json:"hireDate"`
	DepartmentId uint            `json:"departmentId"`
	ManagerId    *uint           `json:"managerId"`
}

func (Employee) TableName() string { return "employees" }

type EmployeeOverview struct {
	PersonId     uint            `json:"personId"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     time.Time       `json:"hireDate"`
	DepartmentId uint            `json:"departmentId"`
	ManagerId    *uint           `json:"managerId"`
}
