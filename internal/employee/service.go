package employee

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	errors "github.com/frahmantamala/org-directory/internal"
	employeeDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/org-directory/internal/core/events"
)

// RepositoryAPI is the employee store contract. Finders return (nil, nil)
// when no row matches; errors are reserved for infrastructure failures.
type RepositoryAPI interface {
	FindByID(id int64) (*employeeDatamodel.Employee, error)
	FindByEmail(email string) (*employeeDatamodel.Employee, error)
	FindByContactNumber(contactNumber string) (*employeeDatamodel.Employee, error)
	FindByRole(role string) ([]*employeeDatamodel.Employee, error)
	FindByManager(managerID int64) ([]*employeeDatamodel.Employee, error)
	FindByDepartmentAndRole(departmentID int64, role string) ([]*employeeDatamodel.Employee, error)
	FindAll() ([]*employeeDatamodel.Employee, error)
	Save(emp *employeeDatamodel.Employee) error
	DeleteByID(id int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Service struct {
	repo       RepositoryAPI
	events     EventPublisher
	logger     *slog.Logger
	bcryptCost int
}

func NewService(repo RepositoryAPI, publisher EventPublisher, logger *slog.Logger, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		events:     publisher,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// Create signs up a new employee. Both uniqueness checks run before any
// write, so a rejected payload never leaves a partial record behind.
func (s *Service) Create(ctx context.Context, dto CreateEmployeeDTO) (*PublicView, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err, "email", dto.OfficialEmail)
		return nil, err
	}

	if err := s.checkCredentialsUnique(dto.OfficialEmail, dto.ContactNumber); err != nil {
		return nil, err
	}

	emp := &Employee{
		FirstName:          dto.FirstName,
		LastName:           dto.LastName,
		OfficialEmail:      dto.OfficialEmail,
		ContactNumber:      dto.ContactNumber,
		Role:               Role(dto.Role),
		Designation:        dto.Designation,
		DepartmentID:       dto.DepartmentID,
		ReportingManagerID: dto.ReportingManagerID,
	}
	for _, a := range dto.Addresses {
		emp.Addresses = append(emp.Addresses, a.toDomain())
	}

	if err := checkAddressTypesUnique(emp.Addresses); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password", err)
	}
	emp.PasswordHash = string(hash)

	dm := ToDataModel(emp)
	if err := s.repo.Save(dm); err != nil {
		s.logger.Error("failed to persist employee", "error", err, "email", dto.OfficialEmail)
		return nil, errors.NewInternalError("failed to save employee", err)
	}

	saved := FromDataModel(dm)
	s.logger.Info("employee created", "employee_id", saved.ID, "email", saved.OfficialEmail)

	if s.events != nil {
		_ = s.events.Publish(ctx, events.NewEmployeeCreatedEvent(saved.ID, saved.OfficialEmail, string(saved.Role)))
	}

	view := saved.ToPublicView()
	return &view, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*PublicView, error) {
	dm, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errors.NewInternalError("failed to look up employee", err)
	}
	if dm == nil {
		s.logger.Error("requested employee not found", "employee_id", id)
		return nil, errors.ErrEmployeeNotFound
	}

	view := FromDataModel(dm).ToPublicView()
	return &view, nil
}

// Update merges the provided fields onto the stored record; fields absent
// from the payload keep their stored values.
func (s *Service) Update(ctx context.Context, id int64, dto UpdateEmployeeDTO) (*PublicView, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee update validation failed", "error", err, "employee_id", id)
		return nil, err
	}

	dm, err := s.repo.FindByID(id)
	if err != nil {
		return nil, errors.NewInternalError("failed to look up employee", err)
	}
	if dm == nil {
		s.logger.Error("employee to update not found", "employee_id", id)
		return nil, errors.ErrEmployeeNotFound
	}

	emp := FromDataModel(dm)
	if dto.FirstName != nil {
		emp.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		emp.LastName = *dto.LastName
	}
	if dto.OfficialEmail != nil {
		emp.OfficialEmail = *dto.OfficialEmail
	}
	if dto.ContactNumber != nil {
		emp.ContactNumber = *dto.ContactNumber
	}
	if dto.Role != nil {
		emp.Role = Role(*dto.Role)
	}
	if dto.Designation != nil {
		emp.Designation = *dto.Designation
	}
	if dto.DepartmentID != nil {
		emp.DepartmentID = dto.DepartmentID
	}
	if dto.ReportingManagerID != nil {
		emp.ReportingManagerID = dto.ReportingManagerID
	}
	for _, a := range dto.Addresses {
		if emp.HasAddressOfType(AddressType(a.Type)) {
			return nil, errors.ErrDuplicateAddress
		}
		emp.Addresses = append(emp.Addresses, a.toDomain())
	}

	updated := ToDataModel(emp)
	updated.CreatedAt = dm.CreatedAt
	if err := s.repo.Save(updated); err != nil {
		s.logger.Error("failed to persist employee update", "error", err, "employee_id", id)
		return nil, errors.NewInternalError("failed to update employee", err)
	}

	s.logger.Info("employee updated", "employee_id", id)
	if s.events != nil {
		_ = s.events.Publish(ctx, events.NewEmployeeUpdatedEvent(id))
	}

	view := FromDataModel(updated).ToPublicView()
	return &view, nil
}

// Delete removes the employee record. Every store failure, including a row
// that is already gone, is reported uniformly as not-found so callers cannot
// distinguish "never existed" from "already deleted".
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(id); err != nil {
		s.logger.Info("employee already deleted", "employee_id", id, "error", err)
		return errors.ErrEmployeeRemoved
	}

	s.logger.Info("employee deleted", "employee_id", id)
	if s.events != nil {
		_ = s.events.Publish(ctx, events.NewEmployeeDeletedEvent(id))
	}
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]Summary, error) {
	dms, err := s.repo.FindAll()
	if err != nil {
		return nil, errors.NewInternalError("failed to list employees", err)
	}

	summaries := make([]Summary, 0, len(dms))
	for _, emp := range FromDataModels(dms) {
		summaries = append(summaries, emp.ToSummary())
	}

	s.logger.Info("listed employees", "count", len(summaries))
	return summaries, nil
}

// ManagersOfDepartment checks whether the department has any ADMIN employees
// and, if so, returns the whole directory rather than just that department's
// managers. This mirrors the long-standing upstream behavior; fixing it is a
// one-line change here once the consumers agree.
func (s *Service) ManagersOfDepartment(ctx context.Context, departmentID int64) ([]PublicView, error) {
	managers, err := s.repo.FindByDepartmentAndRole(departmentID, string(RoleAdmin))
	if err != nil {
		return nil, errors.NewInternalError("failed to look up department managers", err)
	}
	if len(managers) == 0 {
		s.logger.Info("department has no managers", "department_id", departmentID)
		return []PublicView{}, nil
	}

	all, err := s.repo.FindAll()
	if err != nil {
		return nil, errors.NewInternalError("failed to list employees", err)
	}

	views := make([]PublicView, 0, len(all))
	for _, emp := range FromDataModels(all) {
		views = append(views, emp.ToPublicView())
	}
	return views, nil
}

// checkCredentialsUnique rejects signups colliding on email first, then on
// contact number, matching the order external clients already rely on.
func (s *Service) checkCredentialsUnique(email, contactNumber string) error {
	byEmail, err := s.repo.FindByEmail(email)
	if err != nil {
		return errors.NewInternalError("failed to check email uniqueness", err)
	}
	if byEmail != nil {
		s.logger.Error("employee already exists with this email", "email", email)
		return errors.ErrDuplicateEmail
	}

	byContact, err := s.repo.FindByContactNumber(contactNumber)
	if err != nil {
		return errors.NewInternalError("failed to check contact number uniqueness", err)
	}
	if byContact != nil {
		s.logger.Error("employee already exists with this contact number", "contact_number", contactNumber)
		return errors.ErrDuplicateContact
	}
	return nil
}

func checkAddressTypesUnique(addresses []Address) error {
	seen := make(map[AddressType]bool, len(addresses))
	for _, a := range addresses {
		if seen[a.Type] {
			return errors.ErrDuplicateAddress
		}
		seen[a.Type] = true
	}
	return nil
}
