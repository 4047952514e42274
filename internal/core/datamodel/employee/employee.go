package employee

import "time"

type Employee struct {
	ID                 int64     `gorm:"primaryKey"`
	FirstName          string    `gorm:"column:first_name;not null"`
	LastName           string    `gorm:"column:last_name;not null"`
	OfficialEmail      string    `gorm:"column:official_email;uniqueIndex;not null"`
	ContactNumber      string    `gorm:"column:contact_number;uniqueIndex;not null"`
	PasswordHash       string    `gorm:"column:password_hash;not null"`
	Role               string    `gorm:"column:role"`
	Designation        string    `gorm:"column:designation"`
	DepartmentID       *int64    `gorm:"column:department_id;index"`
	ReportingManagerID *int64    `gorm:"column:reporting_manager_id;index"`
	Addresses          []Address `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string {
	return "employees"
}

type Address struct {
	ID          int64     `gorm:"primaryKey"`
	EmployeeID  int64     `gorm:"column:employee_id;not null;index"`
	AddressType string    `gorm:"column:address_type;not null"`
	Line1       string    `gorm:"column:line1"`
	Line2       string    `gorm:"column:line2"`
	City        string    `gorm:"column:city"`
	State       string    `gorm:"column:state"`
	PostalCode  string    `gorm:"column:postal_code"`
	Country     string    `gorm:"column:country"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Address) TableName() string {
	return "employee_addresses"
}
