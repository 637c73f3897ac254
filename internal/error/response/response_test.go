package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sternkern-rent-nexus/internal/error/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccessWritesOK(t *testing.T) {
	c, w := newTestContext(t)

	Success(c, gin.H{"house_number": "A1"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, code.ErrSuccess, resp.Code)
}

func TestCreatedWritesCreatedStatus(t *testing.T) {
	c, w := newTestContext(t)

	Created(c, gin.H{"house_number": "A1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, code.ErrSuccess, resp.Code)
	assert.Equal(t, code.GetMessage(code.ErrSuccess), resp.Message)
}

func TestFailMapsCodeToStatus(t *testing.T) {
	c, w := newTestContext(t)

	Fail(c, code.ErrUnitOccupied, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, code.ErrUnitOccupied, resp.Code)
}
