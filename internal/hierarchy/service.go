package hierarchy

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/org-directory/internal"
	departmentDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/org-directory/internal/department"
	"github.com/frahmantamala/org-directory/internal/employee"
)

// EmployeeRepo is the slice of the employee store hierarchy queries need.
type EmployeeRepo interface {
	FindByID(id int64) (*employeeDatamodel.Employee, error)
	FindByManager(managerID int64) ([]*employeeDatamodel.Employee, error)
	FindByRole(role string) ([]*employeeDatamodel.Employee, error)
}

type DepartmentRepo interface {
	GetAll() ([]*departmentDatamodel.Department, error)
}

// ReportsOrSelfResult is either the direct-report listing (privileged
// callers) or the caller-facing composite of an employee and their
// reporting manager; exactly one branch is populated.
type ReportsOrSelfResult struct {
	DirectReports    []employee.PublicView `json:"direct_reports,omitempty"`
	Employee         *employee.PublicView  `json:"employee,omitempty"`
	ReportingManager *employee.PublicView  `json:"reporting_manager,omitempty"`
}

// OrgSummaryResult is the organization snapshot: the top-level admin plus
// every department.
type OrgSummaryResult struct {
	SuperAdmin  employee.PublicView `json:"super_admin"`
	Departments []department.View   `json:"departments"`
}

type Service struct {
	employees   EmployeeRepo
	departments DepartmentRepo
	logger      *slog.Logger
}

func NewService(employees EmployeeRepo, departments DepartmentRepo, logger *slog.Logger) *Service {
	return &Service{
		employees:   employees,
		departments: departments,
		logger:      logger,
	}
}

// ReportsOrSelf resolves hierarchy for the given target employee. The
// caller's role comes from the request-scoped principal: the top-privilege
// role sees every direct report of the target, everyone else gets the
// target's own record together with their reporting manager. The result is
// pure given the context and target; no per-call state is kept.
func (s *Service) ReportsOrSelf(ctx context.Context, targetID int64) (*ReportsOrSelfResult, error) {
	principal, ok := internal.PrincipalFromContext(ctx)
	if !ok {
		return nil, internal.NewUnauthorizedError("no authenticated caller on request", internal.ErrCodeInvalidToken)
	}

	if principal.Role == string(employee.RoleSuperAdmin) {
		dms, err := s.employees.FindByManager(targetID)
		if err != nil {
			return nil, internal.NewInternalError("failed to list direct reports", err)
		}

		// no reports is a valid answer, not an error
		reports := make([]employee.PublicView, 0, len(dms))
		for _, dm := range dms {
			reports = append(reports, employee.FromDataModel(dm).ToPublicView())
		}

		s.logger.Info("resolved direct reports", "target_id", targetID, "count", len(reports))
		return &ReportsOrSelfResult{DirectReports: reports}, nil
	}

	dm, err := s.employees.FindByID(targetID)
	if err != nil {
		return nil, internal.NewInternalError("failed to look up employee", err)
	}
	if dm == nil {
		s.logger.Error("employee not found for hierarchy lookup", "target_id", targetID)
		return nil, internal.ErrEmployeeNotFound
	}

	emp := employee.FromDataModel(dm)
	if emp.ReportingManagerID == nil {
		s.logger.Error("employee has no reporting manager", "target_id", targetID)
		return nil, internal.ErrManagerNotFound
	}

	managerDM, err := s.employees.FindByID(*emp.ReportingManagerID)
	if err != nil {
		return nil, internal.NewInternalError("failed to look up reporting manager", err)
	}
	if managerDM == nil {
		s.logger.Error("reporting manager reference is dangling",
			"target_id", targetID, "manager_id", *emp.ReportingManagerID)
		return nil, internal.ErrManagerNotFound
	}

	empView := emp.ToPublicView()
	managerView := employee.FromDataModel(managerDM).ToPublicView()
	return &ReportsOrSelfResult{
		Employee:         &empView,
		ReportingManager: &managerView,
	}, nil
}

// OrgSummary returns the unique SUPER_ADMIN employee and the full department
// list. Department counts are assumed small enough for a single response.
func (s *Service) OrgSummary(ctx context.Context) (*OrgSummaryResult, error) {
	admins, err := s.employees.FindByRole(string(employee.RoleSuperAdmin))
	if err != nil {
		return nil, internal.NewInternalError("failed to look up super admin", err)
	}
	if len(admins) == 0 {
		s.logger.Error("super admin doesn't exist")
		return nil, internal.ErrSuperAdminNotFound
	}
	if len(admins) > 1 {
		s.logger.Error("multiple super admins found", "count", len(admins))
		return nil, internal.NewInternalError("organization has more than one super admin", nil)
	}

	dms, err := s.departments.GetAll()
	if err != nil {
		return nil, internal.NewInternalError("failed to list departments", err)
	}

	views := make([]department.View, 0, len(dms))
	for _, dm := range dms {
		views = append(views, department.FromDataModel(dm).ToView())
	}

	return &OrgSummaryResult{
		SuperAdmin:  employee.FromDataModel(admins[0]).ToPublicView(),
		Departments: views,
	}, nil
}
