package dumpmodel

import "time"

// ParseUint64 parses a leading run of decimal digits from s, mirroring C's
// strtoull rather than strconv.ParseUint: it succeeds as soon as at least
// one digit has been consumed and silently ignores any trailing
// non-digit content. Returns ok=false only if zero digits were consumed.
func ParseUint64(s string) (value uint64, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + uint64(s[i]-'0')
		i++
	}
	return value, i > 0
}

const (
	longTimestampLayout    = "2006-01-02T15:04:05Z"
	compactTimestampLayout = "20060102150405"
)

// ParseTimestampMS parses s against the long ISO layout first, then the
// compact layout, and returns milliseconds since the Unix epoch. Unlike
// the source this models (which calls mktime in the local timezone), this
// parses in UTC: a deliberate, documented deviation for cross-platform
// determinism, per the recommendation that new implementations parse
// timestamps as UTC.
func ParseTimestampMS(s string) (ms uint64, ok bool) {
	if t, err := time.Parse(longTimestampLayout, s); err == nil {
		return uint64(t.UTC().UnixMilli()), true
	}
	if t, err := time.ParseInLocation(compactTimestampLayout, s, time.UTC); err == nil {
		return uint64(t.UTC().UnixMilli()), true
	}
	return 0, false
}
