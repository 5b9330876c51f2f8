package audit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailNewestFirst(t *testing.T) {
	now := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)
	tr := New("Case Manager", func() time.Time { return now })

	tr.Add("System", "first")
	tr.Add("Calendar", "second")

	entries := tr.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Details)
	assert.Equal(t, "first", entries[1].Details)
	assert.Equal(t, "Case Manager", entries[0].User)
	assert.NotEmpty(t, entries[0].ID)
}

func TestTrailCapped(t *testing.T) {
	tr := New("", nil)
	for i := 0; i < defaultCap+50; i++ {
		tr.Add("Task Update", fmt.Sprintf("entry %d", i))
	}
	assert.Len(t, tr.List(), defaultCap)
	assert.Equal(t, fmt.Sprintf("entry %d", defaultCap+49), tr.List()[0].Details)
}
