package contacts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"baerstudio/internal/httperr"
	"baerstudio/internal/notifications"
	"baerstudio/internal/shared/store"
	"baerstudio/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logger.GetDefault()
	return NewService(NewRepository(store.New(client)), notifications.NewLogPublisher(log), log)
}

func contactRequest() ContactRequest {
	return ContactRequest{
		Name:        "A",
		Email:       "a@x.com",
		Phone:       "555-0000",
		Service:     "video-production",
		ProjectType: "commercial",
		Budget:      "5k-10k",
		Message:     "We want a product video.",
	}
}

func TestCreateContactStoresSubmission(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	contact, err := svc.Create(ctx, contactRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "new", contact.Status)
	assert.False(t, contact.CreatedAt.IsZero())

	got, err := svc.Get(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, got.ID)
	assert.Equal(t, contact.Email, got.Email)
	assert.Equal(t, contact.Message, got.Message)
	assert.Equal(t, "new", got.Status)
	assert.True(t, contact.CreatedAt.Equal(got.CreatedAt))
}

func TestGetContactNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), "contact_missing")
	require.Error(t, err)
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestContactIDsUnique(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, contactRequest())
	require.NoError(t, err)
	second, err := svc.Create(ctx, contactRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSubmitContactEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupContactRoutes(router.Group("/api/v1"), NewController(newTestService(t)))

	body, err := json.Marshal(contactRequest())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ContactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Contact form submitted successfully", resp.Message)
	assert.NotEmpty(t, resp.ContactID)
}

func TestSubmitContactEndpointMissingMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupContactRoutes(router.Group("/api/v1"), NewController(newTestService(t)))

	reqBody := contactRequest()
	reqBody.Message = ""
	body, err := json.Marshal(reqBody)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
}
