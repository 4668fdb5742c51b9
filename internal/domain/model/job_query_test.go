package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// inBucket reports whether a job created at the given time falls inside the
// bucket's [from, to] interval.
func inBucket(t *testing.T, b DateBucket, created time.Time) bool {
	t.Helper()
	from, to, ok := b.Range(testNow)
	require.True(t, ok)
	return !created.Before(from) && !created.After(to)
}

func daysAgo(n int) time.Time { return testNow.AddDate(0, 0, -n) }

func TestDateBucket_Today(t *testing.T) {
	assert.True(t, inBucket(t, DateBucketToday, testNow))
	assert.False(t, inBucket(t, DateBucketToday, daysAgo(1).Add(-time.Second)))
}

func TestDateBucket_Yesterday(t *testing.T) {
	assert.True(t, inBucket(t, DateBucketYesterday, daysAgo(1)))
	assert.False(t, inBucket(t, DateBucketYesterday, daysAgo(2).Add(-time.Second)))
	assert.False(t, inBucket(t, DateBucketYesterday, testNow))
}

func TestDateBucket_Last3Days(t *testing.T) {
	assert.True(t, inBucket(t, DateBucketLast3Days, daysAgo(1)))
	assert.True(t, inBucket(t, DateBucketLast3Days, daysAgo(2)))
	assert.False(t, inBucket(t, DateBucketLast3Days, daysAgo(3).Add(-time.Second)))
}

func TestDateBucket_LastWeek(t *testing.T) {
	assert.True(t, inBucket(t, DateBucketLastWeek, daysAgo(1)))
	assert.True(t, inBucket(t, DateBucketLastWeek, daysAgo(6)))
	assert.False(t, inBucket(t, DateBucketLastWeek, daysAgo(7).Add(-time.Second)))
}

func TestDateBucket_MonthAgo_CalendarMonth(t *testing.T) {
	assert.True(t, inBucket(t, DateBucketMonthAgo, daysAgo(28)))
	assert.False(t, inBucket(t, DateBucketMonthAgo, daysAgo(38)))
}

func TestDateBucket_AllAndUnknownApplyNoFilter(t *testing.T) {
	_, _, ok := DateBucketAll.Range(testNow)
	assert.False(t, ok)

	_, _, ok = DateBucket("last_century").Range(testNow)
	assert.False(t, ok)
}

func TestDateBucket_Valid(t *testing.T) {
	for _, b := range []DateBucket{
		DateBucketAll, DateBucketToday, DateBucketYesterday,
		DateBucketLast3Days, DateBucketLastWeek, DateBucketMonthAgo,
	} {
		assert.True(t, b.Valid(), string(b))
	}
	assert.False(t, DateBucket("bogus").Valid())
}

func TestJobFilters_IsZero(t *testing.T) {
	assert.True(t, JobFilters{}.IsZero())
	assert.True(t, JobFilters{Created: DateBucketAll}.IsZero())
	assert.False(t, JobFilters{Title: "python"}.IsZero())
	assert.False(t, JobFilters{RemoteWork: RemoteFilterOnsite}.IsZero())
}
