package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.May, 1)

	b, err := json.Marshal(Attendance{EmployeeID: "E1", Date: d, Status: StatusPresent})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"date":"2024-05-01"`)

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01"`), &back))
	assert.True(t, d.Equal(back.Time))

	assert.Error(t, json.Unmarshal([]byte(`"2024-13-01"`), &back))
}

func TestDate_Scan(t *testing.T) {
	cases := map[string]interface{}{
		"time":      time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		"string":    "2024-01-03",
		"bytes":     []byte("2024-01-03"),
		"timestamp": "2024-01-03T00:00:00Z",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(src))
			assert.Equal(t, "2024-01-03", d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("yesterday"))
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2024, time.January, 2).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", v)
}

func TestValidationError_Message(t *testing.T) {
	var v ValidationError
	assert.False(t, v.HasErrors())
	assert.Equal(t, "validation failed", v.Error())

	v.Add("email", "must be a valid email address")
	v.Add("employee_id", "must be at least 2 characters")
	v.Add("email", "ignored")

	assert.True(t, v.HasErrors())
	assert.Equal(t, "validation failed: email must be a valid email address; employee_id must be at least 2 characters", v.Error())
}
