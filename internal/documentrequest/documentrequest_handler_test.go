package documentrequest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barangay-portal/internal/documentrequest"
	documentrequesterrors "barangay-portal/internal/documentrequest/errors"
	"barangay-portal/internal/domain"
	"barangay-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeDocumentRequestService struct {
	CreateFn  func(ctx context.Context, caller domain.Caller, req documentrequest.CreateDocumentRequestRequest) (documentrequest.DocumentRequestResponse, error)
	ListFn    func(ctx context.Context, caller domain.Caller, filter documentrequest.ListFilter, page, pageSize int) ([]documentrequest.DocumentRequestResponse, int64, error)
	GetByIDFn func(ctx context.Context, caller domain.Caller, id string) (documentrequest.DocumentRequestResponse, error)
	UpdateFn  func(ctx context.Context, caller domain.Caller, id string, req documentrequest.UpdateDocumentRequestRequest) (documentrequest.DocumentRequestResponse, error)
}

func (f *fakeDocumentRequestService) Create(ctx context.Context, caller domain.Caller, req documentrequest.CreateDocumentRequestRequest) (documentrequest.DocumentRequestResponse, error) {
	return f.CreateFn(ctx, caller, req)
}
func (f *fakeDocumentRequestService) List(ctx context.Context, caller domain.Caller, filter documentrequest.ListFilter, page, pageSize int) ([]documentrequest.DocumentRequestResponse, int64, error) {
	return f.ListFn(ctx, caller, filter, page, pageSize)
}
func (f *fakeDocumentRequestService) GetByID(ctx context.Context, caller domain.Caller, id string) (documentrequest.DocumentRequestResponse, error) {
	return f.GetByIDFn(ctx, caller, id)
}
func (f *fakeDocumentRequestService) Update(ctx context.Context, caller domain.Caller, id string, req documentrequest.UpdateDocumentRequestRequest) (documentrequest.DocumentRequestResponse, error) {
	return f.UpdateFn(ctx, caller, id, req)
}
func (f *fakeDocumentRequestService) Types() []documentrequest.DocumentTypeResponse {
	return []documentrequest.DocumentTypeResponse{{Key: "cedula", Label: "Cedula", Fee: 50}}
}

type envelope struct {
	Status  string          `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   json.RawMessage `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func newJSONContext(method, target, body string, caller *domain.Caller) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if caller != nil {
		middleware.SetCaller(c, *caller)
	}
	return c, w
}

func TestDocumentRequestHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	caller := domain.Caller{ID: uuid.New(), Role: domain.RoleResident}

	t.Run("created", func(t *testing.T) {
		svc := &fakeDocumentRequestService{
			CreateFn: func(ctx context.Context, got domain.Caller, req documentrequest.CreateDocumentRequestRequest) (documentrequest.DocumentRequestResponse, error) {
				assert.Equal(t, caller.ID, got.ID)
				assert.Equal(t, "cedula", req.Type)
				return documentrequest.DocumentRequestResponse{ID: uuid.NewString(), Type: req.Type, Status: "pending"}, nil
			},
		}
		h := documentrequest.NewHandler(svc, zap.NewNop())

		c, w := newJSONContext(http.MethodPost, "/document-requests", `{"type":"cedula"}`, &caller)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Contains(t, string(env.Data), `"status":"pending"`)
	})

	t.Run("missing type is 422", func(t *testing.T) {
		h := documentrequest.NewHandler(&fakeDocumentRequestService{}, zap.NewNop())

		c, w := newJSONContext(http.MethodPost, "/document-requests", `{"notes":"x"}`, &caller)
		h.Create(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w.Body.Bytes()).Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := documentrequest.NewHandler(&fakeDocumentRequestService{}, zap.NewNop())

		c, w := newJSONContext(http.MethodPost, "/document-requests", `{"type":"cedula"}`, nil)
		h.Create(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDocumentRequestHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	caller := domain.Caller{ID: uuid.New(), Role: domain.RoleSecretary}

	svc := &fakeDocumentRequestService{
		ListFn: func(ctx context.Context, _ domain.Caller, filter documentrequest.ListFilter, page, pageSize int) ([]documentrequest.DocumentRequestResponse, int64, error) {
			assert.Equal(t, "approved", filter.Status)
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, pageSize)
			return []documentrequest.DocumentRequestResponse{{ID: uuid.NewString()}}, 6, nil
		},
	}
	h := documentrequest.NewHandler(svc, zap.NewNop())

	c, w := newJSONContext(http.MethodGet, "/document-requests?status=approved&page=2&per_page=5", "", &caller)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, float64(6), env.Meta["total"])
	assert.Equal(t, float64(2), env.Meta["totalPages"])
}

func TestDocumentRequestHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := uuid.NewString()

	t.Run("resident is forbidden", func(t *testing.T) {
		caller := domain.Caller{ID: uuid.New(), Role: domain.RoleResident}
		svc := &fakeDocumentRequestService{
			UpdateFn: func(ctx context.Context, _ domain.Caller, gotID string, req documentrequest.UpdateDocumentRequestRequest) (documentrequest.DocumentRequestResponse, error) {
				return documentrequest.DocumentRequestResponse{}, documentrequesterrors.ErrStaffOnly
			},
		}
		h := documentrequest.NewHandler(svc, zap.NewNop())

		c, w := newJSONContext(http.MethodPatch, "/document-requests/"+id, `{"status":"approved"}`, &caller)
		c.Params = gin.Params{{Key: "id", Value: id}}
		h.Update(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, w.Body.Bytes()).Code)
	})

	t.Run("bad status rejected at binding", func(t *testing.T) {
		caller := domain.Caller{ID: uuid.New(), Role: domain.RoleSecretary}
		h := documentrequest.NewHandler(&fakeDocumentRequestService{}, zap.NewNop())

		c, w := newJSONContext(http.MethodPatch, "/document-requests/"+id, `{"status":"archived"}`, &caller)
		c.Params = gin.Params{{Key: "id", Value: id}}
		h.Update(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("assignee missing maps to 422", func(t *testing.T) {
		caller := domain.Caller{ID: uuid.New(), Role: domain.RoleSecretary}
		svc := &fakeDocumentRequestService{
			UpdateFn: func(ctx context.Context, _ domain.Caller, gotID string, req documentrequest.UpdateDocumentRequestRequest) (documentrequest.DocumentRequestResponse, error) {
				assert.Equal(t, id, gotID)
				return documentrequest.DocumentRequestResponse{}, documentrequesterrors.ErrAssigneeNotFound
			},
		}
		h := documentrequest.NewHandler(svc, zap.NewNop())

		body := `{"assigned_to":"` + uuid.NewString() + `"}`
		c, w := newJSONContext(http.MethodPatch, "/document-requests/"+id, body, &caller)
		c.Params = gin.Params{{Key: "id", Value: id}}
		h.Update(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestDocumentRequestHandler_Types(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := documentrequest.NewHandler(&fakeDocumentRequestService{}, zap.NewNop())

	c, w := newJSONContext(http.MethodGet, "/document-requests/types", "", nil)
	h.Types(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"cedula"`)
}
