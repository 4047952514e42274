package hierarchy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	departmentDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/org-directory/internal/employee"
)

var _ = ginkgo.Describe("HierarchyHandler", func() {
	var (
		handler  *Handler
		mockRepo *mockEmployeeRepo
		deptRepo *mockDepartmentRepo
		router   *chi.Mux
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockEmployeeRepo()
		deptRepo = &mockDepartmentRepo{}
		handler = NewHandler(NewService(mockRepo, deptRepo, testLogger()))

		router = chi.NewRouter()
		router.Get("/employees/{id}/reports", handler.Reports)
		router.Get("/organisation", handler.OrgSummaryHandler)
	})

	getAs := func(path string, role employee.Role) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req = req.WithContext(ctxWithRole(role))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	ginkgo.Describe("Reports", func() {
		ginkgo.BeforeEach(func() {
			mockRepo.add(&employeeDatamodel.Employee{ID: 1, OfficialEmail: "boss@example.com"})
			mockRepo.add(&employeeDatamodel.Employee{ID: 2, OfficialEmail: "a@example.com", ReportingManagerID: int64Ptr(1)})
			mockRepo.add(&employeeDatamodel.Employee{ID: 3, OfficialEmail: "b@example.com", ReportingManagerID: int64Ptr(1)})
		})

		ginkgo.It("should return 400 for a non-numeric id", func() {
			w := getAs("/employees/abc/reports", employee.RoleSuperAdmin)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should return 400 for a non-positive id", func() {
			w := getAs("/employees/0/reports", employee.RoleSuperAdmin)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should return 404 when the target employee does not exist", func() {
			w := getAs("/employees/999/reports", employee.RoleEmployee)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))

			var body map[string]interface{}
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body["success"]).To(gomega.BeFalse())
			gomega.Expect(body["message"]).To(gomega.Equal("Employee not found"))
		})

		ginkgo.It("should return the direct reports for a super admin caller", func() {
			w := getAs("/employees/1/reports", employee.RoleSuperAdmin)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var body struct {
				Success bool                `json:"success"`
				Data    ReportsOrSelfResult `json:"data"`
			}
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body.Success).To(gomega.BeTrue())
			gomega.Expect(body.Data.DirectReports).To(gomega.HaveLen(2))
			gomega.Expect(body.Data.Employee).To(gomega.BeNil())
		})

		ginkgo.It("should return the employee and their manager for other callers", func() {
			w := getAs("/employees/2/reports", employee.RoleEmployee)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var body struct {
				Data ReportsOrSelfResult `json:"data"`
			}
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body.Data.Employee).ToNot(gomega.BeNil())
			gomega.Expect(body.Data.Employee.OfficialEmail).To(gomega.Equal("a@example.com"))
			gomega.Expect(body.Data.ReportingManager).ToNot(gomega.BeNil())
			gomega.Expect(body.Data.ReportingManager.OfficialEmail).To(gomega.Equal("boss@example.com"))
		})

		ginkgo.It("should return 404 when the target has no reporting manager", func() {
			w := getAs("/employees/1/reports", employee.RoleEmployee)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))

			var body map[string]interface{}
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body["message"]).To(gomega.Equal("Reporting manager not found"))
		})
	})

	ginkgo.Describe("OrgSummaryHandler", func() {
		ginkgo.It("should return the super admin and departments", func() {
			mockRepo.add(&employeeDatamodel.Employee{
				ID: 1, OfficialEmail: "root@example.com", Role: string(employee.RoleSuperAdmin),
			})
			deptRepo.departments = append(deptRepo.departments,
				&departmentDatamodel.Department{ID: 10, Name: "Engineering"},
				&departmentDatamodel.Department{ID: 11, Name: "Finance"},
			)

			w := getAs("/organisation", employee.RoleSuperAdmin)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var body struct {
				Success bool             `json:"success"`
				Data    OrgSummaryResult `json:"data"`
			}
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body.Success).To(gomega.BeTrue())
			gomega.Expect(body.Data.SuperAdmin.OfficialEmail).To(gomega.Equal("root@example.com"))
			gomega.Expect(body.Data.Departments).To(gomega.HaveLen(2))
		})

		ginkgo.It("should return 404 when no super admin exists", func() {
			w := getAs("/organisation", employee.RoleAdmin)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusNotFound))

			var body map[string]interface{}
			gomega.Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body["message"]).To(gomega.Equal("Super admin doesn't exist"))
		})
	})
})
