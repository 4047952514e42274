package employee

import (
	errors "github.com/frahmantamala/org-directory/internal"
	"github.com/frahmantamala/org-directory/internal/core/common/validation"
)

type AddressDTO struct {
	Type       string `json:"address_type"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type CreateEmployeeDTO struct {
	FirstName          string       `json:"first_name"`
	LastName           string       `json:"last_name"`
	OfficialEmail      string       `json:"official_email"`
	ContactNumber      string       `json:"contact_number"`
	Password           string       `json:"password"`
	Role               string       `json:"role"`
	Designation        string       `json:"designation"`
	DepartmentID       *int64       `json:"department_id,omitempty"`
	ReportingManagerID *int64       `json:"reporting_manager_id,omitempty"`
	Addresses          []AddressDTO `json:"addresses,omitempty"`
}

// validRole rejects role values outside the known set; empty passes so an
// absent role can default downstream.
func validRole(value interface{}) *errors.AppError {
	if v, ok := value.(string); ok && v != "" && !Role(v).Valid() {
		return errors.NewValidationError(
			"role must be SUPER_ADMIN, ADMIN or EMPLOYEE", errors.ErrCodeInvalidRole)
	}
	return nil
}

func validAddressType(value interface{}) *errors.AppError {
	if v, ok := value.(string); ok && v != "" && !AddressType(v).Valid() {
		return errors.NewValidationError(
			"address_type must be PERMANENT or CURRENT", errors.ErrCodeInvalidAddress)
	}
	return nil
}

func (d CreateEmployeeDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("first_name", d.FirstName).Required().MaxLen(100)
	v.Field("last_name", d.LastName).Required().MaxLen(100)
	v.Field("official_email", d.OfficialEmail).Required().Email()
	v.Field("contact_number", d.ContactNumber).Required().ContactNumber()
	v.Field("password", d.Password).Required().MinLen(8)
	v.Field("role", d.Role).Custom(validRole)
	for _, a := range d.Addresses {
		v.Field("address_type", a.Type).Required().Custom(validAddressType)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateEmployeeDTO carries only the fields to change; nil means keep the
// stored value. Addresses, when present, are added to the employee after the
// per-type uniqueness check.
type UpdateEmployeeDTO struct {
	FirstName          *string      `json:"first_name,omitempty"`
	LastName           *string      `json:"last_name,omitempty"`
	OfficialEmail      *string      `json:"official_email,omitempty"`
	ContactNumber      *string      `json:"contact_number,omitempty"`
	Role               *string      `json:"role,omitempty"`
	Designation        *string      `json:"designation,omitempty"`
	DepartmentID       *int64       `json:"department_id,omitempty"`
	ReportingManagerID *int64       `json:"reporting_manager_id,omitempty"`
	Addresses          []AddressDTO `json:"addresses,omitempty"`
}

func (d UpdateEmployeeDTO) Validate() error {
	v := validation.NewValidator()
	if d.FirstName != nil {
		v.Field("first_name", *d.FirstName).Required().MaxLen(100)
	}
	if d.LastName != nil {
		v.Field("last_name", *d.LastName).Required().MaxLen(100)
	}
	if d.OfficialEmail != nil {
		v.Field("official_email", *d.OfficialEmail).Required().Email()
	}
	if d.ContactNumber != nil {
		v.Field("contact_number", *d.ContactNumber).Required().ContactNumber()
	}
	if d.Role != nil {
		v.Field("role", *d.Role).Required().Custom(validRole)
	}
	for _, a := range d.Addresses {
		v.Field("address_type", a.Type).Required().Custom(validAddressType)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (a AddressDTO) toDomain() Address {
	return Address{
		Type:       AddressType(a.Type),
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
