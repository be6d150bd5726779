// Copyright (c) 2026 Voltcart. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/voltcart/internal/platform/apperr"
	"github.com/taibuivan/voltcart/internal/platform/constants"
	"github.com/taibuivan/voltcart/internal/platform/respond"
)

/*
TestError_SessionExpiredRedirectsToLogin verifies the forced-logout rendering:
an expired session is never rendered as a JSON error in place, it sends the
browser to the login view no matter which handler was mid-flight.
*/
func TestError_SessionExpiredRedirectsToLogin(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)

	respond.Error(recorder, request, apperr.SessionExpired())

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, constants.LoginRoute, recorder.Header().Get("Location"))
}

/*
TestError_AppErrorRendersEnvelope verifies that ordinary application errors
stay in place as the standard JSON error envelope.
*/
func TestError_AppErrorRendersEnvelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/products/99", nil)

	respond.Error(recorder, request, apperr.NotFound("Product"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Location"))

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}
