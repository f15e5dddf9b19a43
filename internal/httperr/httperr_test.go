package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindConflict, KindOf(Conflict("taken")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindPaymentFailed, KindOf(PaymentFailed("declined")))
	assert.Equal(t, KindInternal, KindOf(Internal("boom", errors.New("cause"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("untagged")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("creating booking: %w", Conflict("taken"))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, Is(err, KindConflict))
	assert.False(t, Is(err, KindNotFound))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(Validation("bad input")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(PaymentFailed("declined")))
	assert.Equal(t, http.StatusConflict, StatusCode(Conflict("taken")))
	assert.Equal(t, http.StatusNotFound, StatusCode(NotFound("missing")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(Internal("boom", nil)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("untagged")))
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("redis: connection refused")
	err := Internal("failed to store booking", cause)
	assert.Contains(t, err.Error(), "failed to store booking")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func writeResponse(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	Write(c, err)
	return rec
}

func TestWriteClientError(t *testing.T) {
	rec := writeResponse(Conflict("Time slot is no longer available"))
	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Time slot is no longer available", body["error"])
}

func TestWriteMasksInternalDetail(t *testing.T) {
	rec := writeResponse(Internal("failed to store booking", errors.New("redis: connection refused")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
}

func TestWriteMasksUntaggedError(t *testing.T) {
	rec := writeResponse(errors.New("redis: connection refused"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["error"])
}
