package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/employee"
)

// Role is compared by value everywhere; never compare role identities.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleEmployee   Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

type AddressType string

const (
	AddressPermanent AddressType = "PERMANENT"
	AddressCurrent   AddressType = "CURRENT"
)

func (t AddressType) Valid() bool {
	return t == AddressPermanent || t == AddressCurrent
}

type Address struct {
	ID         int64       `json:"id"`
	Type       AddressType `json:"address_type"`
	Line1      string      `json:"line1"`
	Line2      string      `json:"line2,omitempty"`
	City       string      `json:"city"`
	State      string      `json:"state"`
	PostalCode string      `json:"postal_code"`
	Country    string      `json:"country"`
}

type Employee struct {
	ID                 int64     `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	OfficialEmail      string    `json:"official_email"`
	ContactNumber      string    `json:"contact_number"`
	PasswordHash       string    `json:"-"`
	Role               Role      `json:"role"`
	Designation        string    `json:"designation"`
	DepartmentID       *int64    `json:"department_id,omitempty"`
	ReportingManagerID *int64    `json:"reporting_manager_id,omitempty"`
	Addresses          []Address `json:"addresses,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (e *Employee) HasAddressOfType(t AddressType) bool {
	for _, a := range e.Addresses {
		if a.Type == t {
			return true
		}
	}
	return false
}

// PublicView is the employee representation safe for responses: no password
// hash, no internal audit timestamps.
type PublicView struct {
	ID                 int64     `json:"id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	OfficialEmail      string    `json:"official_email"`
	ContactNumber      string    `json:"contact_number"`
	Role               Role      `json:"role"`
	Designation        string    `json:"designation"`
	DepartmentID       *int64    `json:"department_id,omitempty"`
	ReportingManagerID *int64    `json:"reporting_manager_id,omitempty"`
	Addresses          []Address `json:"addresses,omitempty"`
}

// Summary is the condensed view used by the directory listing.
type Summary struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	OfficialEmail string `json:"official_email"`
	Role          Role   `json:"role"`
	Designation   string `json:"designation"`
	DepartmentID  *int64 `json:"department_id,omitempty"`
}

func (e *Employee) ToPublicView() PublicView {
	return PublicView{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		OfficialEmail:      e.OfficialEmail,
		ContactNumber:      e.ContactNumber,
		Role:               e.Role,
		Designation:        e.Designation,
		DepartmentID:       e.DepartmentID,
		ReportingManagerID: e.ReportingManagerID,
		Addresses:          e.Addresses,
	}
}

func (e *Employee) ToSummary() Summary {
	return Summary{
		ID:            e.ID,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		OfficialEmail: e.OfficialEmail,
		Role:          e.Role,
		Designation:   e.Designation,
		DepartmentID:  e.DepartmentID,
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	dm := &employeeDatamodel.Employee{
		ID:                 e.ID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		OfficialEmail:      e.OfficialEmail,
		ContactNumber:      e.ContactNumber,
		PasswordHash:       e.PasswordHash,
		Role:               string(e.Role),
		Designation:        e.Designation,
		DepartmentID:       e.DepartmentID,
		ReportingManagerID: e.ReportingManagerID,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
	for _, a := range e.Addresses {
		dm.Addresses = append(dm.Addresses, employeeDatamodel.Address{
			ID:          a.ID,
			EmployeeID:  e.ID,
			AddressType: string(a.Type),
			Line1:       a.Line1,
			Line2:       a.Line2,
			City:        a.City,
			State:       a.State,
			PostalCode:  a.PostalCode,
			Country:     a.Country,
		})
	}
	return dm
}

func FromDataModel(dm *employeeDatamodel.Employee) *Employee {
	e := &Employee{
		ID:                 dm.ID,
		FirstName:          dm.FirstName,
		LastName:           dm.LastName,
		OfficialEmail:      dm.OfficialEmail,
		ContactNumber:      dm.ContactNumber,
		PasswordHash:       dm.PasswordHash,
		Role:               Role(dm.Role),
		Designation:        dm.Designation,
		DepartmentID:       dm.DepartmentID,
		ReportingManagerID: dm.ReportingManagerID,
		CreatedAt:          dm.CreatedAt,
		UpdatedAt:          dm.UpdatedAt,
	}
	for _, a := range dm.Addresses {
		e.Addresses = append(e.Addresses, Address{
			ID:         a.ID,
			Type:       AddressType(a.AddressType),
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		})
	}
	return e
}

func FromDataModels(dms []*employeeDatamodel.Employee) []*Employee {
	out := make([]*Employee, 0, len(dms))
	for _, dm := range dms {
		out = append(out, FromDataModel(dm))
	}
	return out
}
