package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsoTime(t *testing.T) {
	assert.Nil(t, isoTime(nil))

	ts := time.Date(2023, 6, 1, 14, 30, 5, 0, time.UTC)
	got := isoTime(&ts)
	require.NotNil(t, got)
	assert.Equal(t, "2023-06-01T14:30:05", *got)
}

func TestFullName(t *testing.T) {
	first, last := "Jane", "Doe"

	got := fullName(&first, &last)
	require.NotNil(t, got)
	assert.Equal(t, "Jane Doe", *got)

	got = fullName(&first, nil)
	require.NotNil(t, got)
	assert.Equal(t, "Jane", *got)

	got = fullName(nil, &last)
	require.NotNil(t, got)
	assert.Equal(t, "Doe", *got)

	assert.Nil(t, fullName(nil, nil))
}
