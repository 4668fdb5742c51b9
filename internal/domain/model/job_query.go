package model

import "time"

// DateBucket names a relative creation-date range for the job listing filter.
type DateBucket string

const (
	// DateBucketAll applies no creation-date filter.
	DateBucketAll DateBucket = "all"
	// DateBucketToday covers [now-1d, now].
	DateBucketToday DateBucket = "today"
	// DateBucketYesterday covers [now-2d, now-1d].
	DateBucketYesterday DateBucket = "yesterday"
	// DateBucketLast3Days covers [now-3d, now].
	DateBucketLast3Days DateBucket = "last_3_days"
	// DateBucketLastWeek covers [now-7d, now].
	DateBucketLastWeek DateBucket = "last_week"
	// DateBucketMonthAgo covers [now-1 calendar month, now].
	DateBucketMonthAgo DateBucket = "month_ago"
)

// Valid returns true if the DateBucket is a known filter value.
func (b DateBucket) Valid() bool {
	switch b {
	case DateBucketAll, DateBucketToday, DateBucketYesterday,
		DateBucketLast3Days, DateBucketLastWeek, DateBucketMonthAgo:
		return true
	}
	return false
}

// Range resolves the bucket to an inclusive [from, to] interval relative to
// the supplied now. The second return value is false for DateBucketAll and
// unknown buckets, meaning no filter should be applied. The reference time is
// an explicit input so the computation stays pure and testable.
func (b DateBucket) Range(now time.Time) (from, to time.Time, ok bool) {
	to = now
	switch b {
	case DateBucketToday:
		from = now.AddDate(0, 0, -1)
	case DateBucketYesterday:
		from = now.AddDate(0, 0, -2)
		to = now.AddDate(0, 0, -1)
	case DateBucketLast3Days:
		from = now.AddDate(0, 0, -3)
	case DateBucketLastWeek:
		from = now.AddDate(0, 0, -7)
	case DateBucketMonthAgo:
		from = now.AddDate(0, -1, 0)
	default:
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// RemoteFilter is the tri-state remote_work listing filter.
type RemoteFilter string

const (
	// RemoteFilterAny applies no remote_work filter.
	RemoteFilterAny RemoteFilter = ""
	// RemoteFilterRemote keeps only remote jobs.
	RemoteFilterRemote RemoteFilter = "remote"
	// RemoteFilterOnsite keeps only on-site jobs.
	RemoteFilterOnsite RemoteFilter = "onsite"
)

// JobFilters is the set of composable listing predicates. Zero values mean
// "no filter"; unknown inputs are dropped at parse time, never surfaced as
// errors.
type JobFilters struct {
	Title      string       `json:"title,omitempty"`
	Location   string       `json:"location,omitempty"`
	Seniority  string       `json:"seniority,omitempty"`
	CompanyID  string       `json:"company,omitempty"`
	RemoteWork RemoteFilter `json:"remote_work,omitempty"`
	Created    DateBucket   `json:"created,omitempty"`
}

// IsZero reports whether no filter is active.
func (f JobFilters) IsZero() bool {
	return f.Title == "" && f.Location == "" && f.Seniority == "" &&
		f.CompanyID == "" && f.RemoteWork == RemoteFilterAny &&
		(f.Created == "" || f.Created == DateBucketAll)
}

// JobsListOptions bundles everything a repository needs to produce one page
// of the non-sponsored listing: the lookback cutoff, the composable filters,
// the explicit reference time for date buckets, and pagination bounds.
type JobsListOptions struct {
	Since   time.Time
	Now     time.Time
	Filters JobFilters
	Limit   int
	Offset  int
}
