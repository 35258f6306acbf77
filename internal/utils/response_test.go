package utils_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ms-events/internal/utils"
)

func TestWriteJSONSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteJSON(rec, 201, utils.SuccessResponse("Event created", map[string]string{"slug": "gophercon-eu"}))

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var decoded utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.True(t, decoded.Success)
	assert.Equal(t, "Event created", decoded.Message)
	assert.Empty(t, decoded.Error)
	assert.False(t, decoded.Timestamp.IsZero())
}

func TestWriteJSONErrorEnvelopeOmitsData(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteJSON(rec, 409, utils.ErrorResponse("Could not create event", "an event with this slug already exists"))

	assert.Equal(t, 409, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, false, raw["success"])
	assert.Equal(t, "an event with this slug already exists", raw["error"])
	assert.NotContains(t, raw, "data")
}
