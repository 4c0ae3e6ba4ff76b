package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_AbsentNullValue(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *int64
	}{
		{name: "absent", body: `{}`, wantSet: false},
		{name: "null", body: `{"class_id": null}`, wantSet: true},
		{name: "value", body: `{"class_id": 9}`, wantSet: true, wantValue: func() *int64 { v := int64(9); return &v }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateStudentEnrollmentRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.wantSet, req.ClassID.Set)
			assert.Equal(t, tt.wantValue, req.ClassID.Value)
		})
	}
}

func TestOptional_Or(t *testing.T) {
	current := int64(4)
	assert.Equal(t, &current, Optional[int64]{}.Or(&current))
	assert.Nil(t, Null[int64]().Or(&current))
	assert.Equal(t, int64(7), *Some(int64(7)).Or(&current))
}

func TestOptional_TypeMismatch(t *testing.T) {
	var req UpdateStudentEnrollmentRequest
	assert.Error(t, json.Unmarshal([]byte(`{"class_id": "nine"}`), &req))
}
