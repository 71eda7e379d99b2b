package utils

import "time"

// SeychellesTZ is the fixed business timezone (UTC+4). All spa schedules,
// appointment start times and "is this slot in the past" comparisons are
// interpreted in this zone, system-wide.
var SeychellesTZ = time.FixedZone("UTC+4", 4*60*60)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// AuthCachePrefix is the Redis key prefix for the token allow-list.
const AuthCachePrefix = "authCache:"

// NowSeychelles returns the current time in the fixed spa timezone.
func NowSeychelles() time.Time {
	return time.Now().In(SeychellesTZ)
}
