package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_NoCredential(t *testing.T) {
	client, err := NewGeminiClient(context.Background(), "", DefaultModel)

	require.Error(t, err)
	assert.Nil(t, client)

	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Contains(t, configErr.Message, "API key")
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"whitespace", "  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSONBlock(tt.input))
		})
	}
}

func TestErrorKinds_Messages(t *testing.T) {
	assert.Contains(t, (&ConfigError{Message: "API key is not set"}).Error(), "configuration")
	assert.Contains(t, (&TransportError{StatusCode: 503, Body: "overloaded"}).Error(), "503")
	assert.Contains(t, (&EmptyResponseError{Message: "no candidates in response"}).Error(), "no content")
	assert.Contains(t, (&DecodeError{Raw: "oops"}).Error(), "decode")
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Cause: cause}
	assert.ErrorIs(t, err, cause)
}
