package company_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barangay-portal/internal/company"
	companyerrors "barangay-portal/internal/company/errors"
	"barangay-portal/internal/domain"
	"barangay-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeCompanyService struct {
	UpsertFn  func(ctx context.Context, caller domain.Caller, req company.UpsertHrCompanyRequest) (company.HrCompanyResponse, bool, error)
	GetMineFn func(ctx context.Context, caller domain.Caller) (company.HrCompanyResponse, error)
	GetByIDFn func(ctx context.Context, id string) (company.HrCompanyResponse, error)
}

func (f *fakeCompanyService) Upsert(ctx context.Context, caller domain.Caller, req company.UpsertHrCompanyRequest) (company.HrCompanyResponse, bool, error) {
	return f.UpsertFn(ctx, caller, req)
}
func (f *fakeCompanyService) GetMine(ctx context.Context, caller domain.Caller) (company.HrCompanyResponse, error) {
	return f.GetMineFn(ctx, caller)
}
func (f *fakeCompanyService) GetByID(ctx context.Context, id string) (company.HrCompanyResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeCompanyService) FindByUser(ctx context.Context, userID uuid.UUID) (*company.HrCompany, error) {
	return nil, nil
}

func TestHandler_Upsert(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hr := domain.Caller{ID: uuid.New(), Role: domain.RoleHR}

	tests := []struct {
		name    string
		created bool
		want    int
	}{
		{"first save is 201", true, http.StatusCreated},
		{"later saves are 200", false, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeCompanyService{
				UpsertFn: func(ctx context.Context, caller domain.Caller, req company.UpsertHrCompanyRequest) (company.HrCompanyResponse, bool, error) {
					return company.HrCompanyResponse{Name: req.Name}, tt.created, nil
				},
			}
			h := company.NewHandler(svc, zap.NewNop())

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPut, "/hr-company", strings.NewReader(`{"name":"Acme"}`))
			c.Request.Header.Set("Content-Type", "application/json")
			middleware.SetCaller(c, hr)

			h.Upsert(c)

			assert.Equal(t, tt.want, w.Code)
		})
	}

	t.Run("bad email is 422", func(t *testing.T) {
		h := company.NewHandler(&fakeCompanyService{}, zap.NewNop())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/hr-company", strings.NewReader(`{"name":"Acme","contact_email":"nope"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		middleware.SetCaller(c, hr)

		h.Upsert(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestHandler_GetMine_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeCompanyService{
		GetMineFn: func(ctx context.Context, caller domain.Caller) (company.HrCompanyResponse, error) {
			return company.HrCompanyResponse{}, companyerrors.ErrHrCompanyNotFound
		},
	}
	h := company.NewHandler(svc, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/hr-company", nil)
	middleware.SetCaller(c, domain.Caller{ID: uuid.New(), Role: domain.RoleHR})

	h.GetMine(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
