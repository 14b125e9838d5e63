package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeForm(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := doJSON(router, http.MethodGet, "/forms/self_assessment", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	assert.Equal(t, "self_assessment", out["name"])
	fields := out["fields"].([]interface{})
	require.Len(t, fields, 2)
	answers := fields[0].(map[string]interface{})
	assert.Equal(t, "choice", answers["kind"])
	assert.Equal(t, "1", answers["default"])
	assert.Len(t, answers["options"], 5)
	assert.Equal(t, "action", fields[1].(map[string]interface{})["kind"])

	w = doJSON(router, http.MethodGet, "/forms/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
