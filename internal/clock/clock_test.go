package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixed = time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

func TestFormats(t *testing.T) {
	c := At(fixed)
	assert.Equal(t, "2026-03-14T09:26", c.NowLocal())
	assert.Equal(t, "2026-03-14", c.Today())
}

func TestApplyDefaults(t *testing.T) {
	c := At(fixed)

	fields := []*Field{
		{Type: FieldDate},
		{Type: FieldDateTime},
		{Type: FieldText},
		{Type: FieldDate, Value: "2020-01-01"},
		{Type: FieldDateTime, NoDefault: true},
		nil,
	}
	c.ApplyDefaults(fields)

	assert.Equal(t, "2026-03-14", fields[0].Value)
	assert.Equal(t, "2026-03-14T09:26", fields[1].Value)
	assert.Empty(t, fields[2].Value, "text fields are not prefilled")
	assert.Equal(t, "2020-01-01", fields[3].Value, "existing values are kept")
	assert.Empty(t, fields[4].Value, "opted-out fields are not prefilled")
}

func TestApplyDefaults_ClampsToMax(t *testing.T) {
	c := At(fixed)

	past := &Field{Type: FieldDate, Max: "2025-12-31"}
	future := &Field{Type: FieldDate, Max: "2027-01-01"}
	c.ApplyDefaults([]*Field{past, future})

	assert.Equal(t, "2025-12-31", past.Value)
	assert.Equal(t, "2026-03-14", future.Value)
}
