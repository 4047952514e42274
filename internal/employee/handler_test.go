package employee_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	employeeDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/employee"
	"github.com/frahmantamala/org-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/org-directory/internal/employee/postgres"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    employee.RepositoryAPI
		service *employee.Service
		handler *employee.Handler
		router  *chi.Mux
		slogger *slog.Logger
	)

	BeforeEach(func() {
		var err error
		slogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&employeeDatamodel.Employee{}, &employeeDatamodel.Address{})
		Expect(err).NotTo(HaveOccurred())

		repo = employeePostgres.NewEmployeeRepository(db)
		service = employee.NewService(repo, nil, slogger, 4)
		handler = employee.NewHandler(service)

		router = chi.NewRouter()
		router.Post("/employees", handler.Create)
		router.Get("/employees", handler.ListAll)
		router.Get("/employees/{id}", handler.GetByID)
		router.Put("/employees/{id}", handler.Update)
		router.Delete("/employees/{id}", handler.Delete)
		router.Get("/departments/{id}/managers", handler.ManagersOfDepartment)
	})

	createEmployee := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	validBody := `{
		"first_name": "Sari",
		"last_name": "Wijaya",
		"official_email": "sari@example.com",
		"contact_number": "+6281234567",
		"password": "long_enough_password",
		"role": "EMPLOYEE",
		"designation": "Software Engineer"
	}`

	Describe("POST /employees", func() {
		It("should create an employee and return 201 with the envelope", func() {
			w := createEmployee(validBody)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var response struct {
				Status  int                 `json:"status"`
				Success bool                `json:"success"`
				Data    employee.PublicView `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Success).To(BeTrue())
			Expect(response.Data.ID).To(BeNumerically(">", 0))
			Expect(response.Data.OfficialEmail).To(Equal("sari@example.com"))
		})

		It("should never echo the password back", func() {
			w := createEmployee(validBody)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Body.String()).NotTo(ContainSubstring("long_enough_password"))
			Expect(w.Body.String()).NotTo(ContainSubstring("password_hash"))
		})

		It("should return 409 for a duplicate email", func() {
			Expect(createEmployee(validBody).Code).To(Equal(http.StatusCreated))

			w := createEmployee(validBody)
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("should return 400 for an invalid payload", func() {
			w := createEmployee(`{"first_name": "Only"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 for a malformed body", func() {
			w := createEmployee(`{not json`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /employees/{id}", func() {
		It("should return the employee", func() {
			w := createEmployee(validBody)
			var created struct {
				Data employee.PublicView `json:"data"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())

			req := httptest.NewRequest(http.MethodGet, "/employees/1", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("should return 404 for an unknown id", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/999", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-numeric id", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /employees/{id}", func() {
		BeforeEach(func() {
			Expect(createEmployee(validBody).Code).To(Equal(http.StatusCreated))
		})

		It("should merge the payload and return 202", func() {
			req := httptest.NewRequest(http.MethodPut, "/employees/1",
				bytes.NewBufferString(`{"designation": "Senior Software Engineer"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusAccepted))

			var response struct {
				Data employee.PublicView `json:"data"`
			}
			Expect(json.NewDecoder(rec.Body).Decode(&response)).To(Succeed())
			Expect(response.Data.Designation).To(Equal("Senior Software Engineer"))
			Expect(response.Data.FirstName).To(Equal("Sari"))
		})

		It("should return 404 for an unknown id", func() {
			req := httptest.NewRequest(http.MethodPut, "/employees/999",
				bytes.NewBufferString(`{"designation": "Nobody"}`))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /employees/{id}", func() {
		It("should return 204 with an empty body", func() {
			Expect(createEmployee(validBody).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodDelete, "/employees/1", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(rec.Body.Len()).To(BeZero())
		})

		It("should return 404 for an id that was never created", func() {
			req := httptest.NewRequest(http.MethodDelete, "/employees/999", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 404 for a second delete of the same id", func() {
			Expect(createEmployee(validBody).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodDelete, "/employees/1", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusNoContent))

			req = httptest.NewRequest(http.MethodDelete, "/employees/1", nil)
			rec = httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /employees", func() {
		It("should list summaries of every employee", func() {
			Expect(createEmployee(validBody).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodGet, "/employees", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var response struct {
				Data []employee.Summary `json:"data"`
			}
			Expect(json.NewDecoder(rec.Body).Decode(&response)).To(Succeed())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Data[0].OfficialEmail).To(Equal("sari@example.com"))
		})
	})

	Describe("GET /departments/{id}/managers", func() {
		It("should return an empty list for a department with no managers", func() {
			req := httptest.NewRequest(http.MethodGet, "/departments/1/managers", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var response struct {
				Data []employee.PublicView `json:"data"`
			}
			Expect(json.NewDecoder(rec.Body).Decode(&response)).To(Succeed())
			Expect(response.Data).To(BeEmpty())
		})
	})
})
