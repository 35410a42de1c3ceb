package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-11-03")
	require.NoError(t, err)
	assert.Equal(t, "2026-11-03", d.String())

	d, err = ParseDate("2026-11-03T18:30:00-03:00")
	require.NoError(t, err)
	assert.Equal(t, "2026-11-03", d.String())

	_, err = ParseDate("03/11/2026")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	var event Event
	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Meetup","fecha":"2026-11-03"}`), &event))
	assert.Equal(t, NewDate(2026, time.November, 3), event.Fecha)

	out, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"fecha":"2026-11-03"`)

	assert.Error(t, json.Unmarshal([]byte(`{"fecha":"mañana"}`), &event))
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2026-01-02", d.String())

	require.NoError(t, d.Scan([]byte("2026-03-04")))
	assert.Equal(t, "2026-03-04", d.String())

	require.NoError(t, d.Scan("2026-05-06 00:00:00"))
	assert.Equal(t, "2026-05-06", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
