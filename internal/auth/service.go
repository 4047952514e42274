package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	errors "github.com/frahmantamala/org-directory/internal"
	employeeDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/org-directory/internal/employee"
)

// EmployeeStore is the slice of the credential store login needs.
type EmployeeStore interface {
	FindByEmail(email string) (*employeeDatamodel.Employee, error)
}

type Service struct {
	store    EmployeeStore
	tokenGen TokenGenerator
	logger   *slog.Logger
}

func NewService(store EmployeeStore, tokenGen TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		tokenGen: tokenGen,
		logger:   logger,
	}
}

// Login verifies the plaintext password against the stored hash and issues a
// session token. An unknown email and a wrong password fail identically so
// the response never reveals which one happened.
func (s *Service) Login(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	dm, err := s.store.FindByEmail(dto.Email)
	if err != nil {
		return nil, errors.NewInternalError("failed to look up credentials", err)
	}
	if dm == nil {
		s.logger.Error("login failed: no employee for email", "email", dto.Email)
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dm.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Error("login failed: password mismatch", "email", dto.Email)
		return nil, errors.ErrInvalidCredentials
	}

	emp := employee.FromDataModel(dm)
	role := emp.Role
	if role == "" {
		role = employee.RoleEmployee
	}

	token, err := s.tokenGen.GenerateAccessToken(emp.OfficialEmail, string(role), emp.ID)
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token", err)
	}

	s.logger.Info("employee logged in", "employee_id", emp.ID, "role", role)

	return &LoginResponse{
		EmployeeID:  emp.ID,
		FirstName:   emp.FirstName,
		LastName:    emp.LastName,
		Role:        role,
		Designation: emp.Designation,
		Token:       token,
	}, nil
}

// ValidateAccessToken validates a session token and returns its claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGen.ValidateToken(tokenString)
}
