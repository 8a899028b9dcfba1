package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumRequest struct {
	Status string `validate:"omitempty,student_status"`
	Level  string `validate:"required,batch_level"`
	Role   string `validate:"omitempty,user_role"`
}

func TestRegisteredTags(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerTags(v))

	assert.NoError(t, v.Struct(enumRequest{Status: "at_risk", Level: "advanced", Role: "admin"}))

	err := v.Struct(enumRequest{Status: "graduated", Level: "pro"})
	require.Error(t, err)
	fields := ParseError(err)
	assert.Contains(t, fields, "Status")
	assert.Contains(t, fields, "Level")
	assert.NotContains(t, fields, "Role")
}

func TestParseErrorPlain(t *testing.T) {
	fields := ParseError(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"error": "unexpected EOF"}, fields)
	assert.Empty(t, ParseError(nil))
}
