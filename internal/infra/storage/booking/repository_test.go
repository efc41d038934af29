package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Граница полуоткрытого интервала: в SQL должны уйти строгие сравнения,
// иначе выезд и заезд в один день начнут считаться пересечением.
func TestOverlappingQuery_HalfOpenInterval(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	query, args, err := overlappingQuery(1, start, end).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT 1 FROM bookings WHERE room_id = $1 AND start_date < $2 AND end_date > $3 AND status IN ($4,$5) LIMIT 1",
		query)
	assert.Equal(t, []interface{}{int64(1), end, start, "created", "paid"}, args)
}
