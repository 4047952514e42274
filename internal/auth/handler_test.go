package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/frahmantamala/org-directory/internal"
	"github.com/frahmantamala/org-directory/internal/employee"
)

var _ = ginkgo.Describe("AuthHandler", func() {
	var (
		handler   *Handler
		service   *Service
		mockStore *mockEmployeeStore
	)

	ginkgo.BeforeEach(func() {
		mockStore = newMockEmployeeStore()
		tokenGen := NewJWTTokenGenerator("handler-test-secret-long-enough-key", 15*time.Minute)
		service = NewService(mockStore, tokenGen, testLogger())
		handler = NewHandler(service)
	})

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.Login(w, req)
		return w
	}

	ginkgo.Describe("Login", func() {
		ginkgo.It("should return 200 and a token for valid credentials", func() {
			// When
			w := login(`{"email": "staff@example.com", "password": "correct_password"}`)

			// Then
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			var response struct {
				Success bool          `json:"success"`
				Data    LoginResponse `json:"data"`
			}
			gomega.Expect(json.NewDecoder(w.Body).Decode(&response)).To(gomega.Succeed())
			gomega.Expect(response.Success).To(gomega.BeTrue())
			gomega.Expect(response.Data.Token).ToNot(gomega.BeEmpty())
			gomega.Expect(response.Data.EmployeeID).To(gomega.Equal(int64(1)))
		})

		ginkgo.It("should return 400 when a field is missing", func() {
			w := login(`{"email": "staff@example.com"}`)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should return 400 for a malformed body", func() {
			w := login(`{not json`)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})

		ginkgo.It("should return 401 with the same message for bad email and bad password", func() {
			// When
			unknownEmail := login(`{"email": "nobody@example.com", "password": "x"}`)
			wrongPassword := login(`{"email": "staff@example.com", "password": "x"}`)

			// Then
			gomega.Expect(unknownEmail.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(wrongPassword.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(unknownEmail.Body.String()).To(gomega.Equal(wrongPassword.Body.String()))
		})
	})

	ginkgo.Describe("AuthMiddleware", func() {
		var (
			validToken string
			captured   *internal.Principal
			next       http.Handler
		)

		ginkgo.BeforeEach(func() {
			resp, err := service.Login(LoginDTO{Email: "admin@example.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			validToken = resp.Token

			captured = nil
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if p, ok := internal.PrincipalFromContext(r.Context()); ok {
					captured = p
				}
				w.WriteHeader(http.StatusOK)
			})
		})

		ginkgo.It("should place the verified principal on the request context", func() {
			// Given
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+validToken)
			w := httptest.NewRecorder()

			// When
			handler.AuthMiddleware(next).ServeHTTP(w, req)

			// Then
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(captured).ToNot(gomega.BeNil())
			gomega.Expect(captured.EmployeeID).To(gomega.Equal(int64(2)))
			gomega.Expect(captured.Email).To(gomega.Equal("admin@example.com"))
			gomega.Expect(captured.Role).To(gomega.Equal(string(employee.RoleAdmin)))
		})

		ginkgo.It("should return 401 when the header is missing", func() {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			w := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
			gomega.Expect(captured).To(gomega.BeNil())
		})

		ginkgo.It("should return 401 for a garbage token", func() {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer not.a.token")
			w := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should return 401 for a non-bearer header", func() {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			w := httptest.NewRecorder()

			handler.AuthMiddleware(next).ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("RequireRole", func() {
		var next http.Handler

		ginkgo.BeforeEach(func() {
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})

		serveWithRole := func(role string, allowed ...string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			ctx := internal.ContextWithPrincipal(req.Context(), &internal.Principal{
				EmployeeID: 1,
				Email:      "caller@example.com",
				Role:       role,
			})
			w := httptest.NewRecorder()
			handler.RequireRole(allowed...)(next).ServeHTTP(w, req.WithContext(ctx))
			return w
		}

		ginkgo.It("should pass a caller holding one of the allowed roles", func() {
			w := serveWithRole(string(employee.RoleAdmin),
				string(employee.RoleSuperAdmin), string(employee.RoleAdmin))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should return 403 for a caller with a different role", func() {
			w := serveWithRole(string(employee.RoleEmployee),
				string(employee.RoleSuperAdmin), string(employee.RoleAdmin))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("should return 401 when no principal is on the context", func() {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			w := httptest.NewRecorder()
			handler.RequireRole(string(employee.RoleAdmin))(next).ServeHTTP(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})
})
