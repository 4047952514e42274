package auth

import "github.com/frahmantamala/org-directory/internal/employee"

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	return nil
}

// LoginResponse is returned on successful authentication. The token is the
// only session artifact; nothing is persisted server side.
type LoginResponse struct {
	EmployeeID  int64         `json:"employee_id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Role        employee.Role `json:"role"`
	Designation string        `json:"designation"`
	Token       string        `json:"token"`
}
