package transport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelopeShape(t *testing.T) {
	env := NewSuccess(map[string]string{"id": "1"}, "Task created successfully")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(env.String()), &decoded))

	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, "Task created successfully", decoded["message"])
	assert.NotNil(t, decoded["data"])
	_, hasCount := decoded["count"]
	assert.False(t, hasCount)
	_, hasError := decoded["error"]
	assert.False(t, hasError)
}

func TestListEnvelopeCarriesCount(t *testing.T) {
	env := NewListSuccess([]int{1, 2, 3}, 3)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(env.String()), &decoded))

	assert.Equal(t, float64(3), decoded["count"])
	assert.Equal(t, true, decoded["success"])
}

func TestListEnvelopeZeroCountSurvives(t *testing.T) {
	// count=0 must serialize; omitempty on a plain int would drop it.
	env := NewListSuccess([]int{}, 0)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(env.String()), &decoded))

	count, ok := decoded["count"]
	require.True(t, ok)
	assert.Equal(t, float64(0), count)
}

func TestErrorEnvelopeShape(t *testing.T) {
	env := NewError("NOT_FOUND", "task not found")

	var decoded struct {
		Success bool `json:"success"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(env.String()), &decoded))

	assert.False(t, decoded.Success)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, "NOT_FOUND", decoded.Error.Code)
	assert.Equal(t, "task not found", decoded.Error.Message)
}
