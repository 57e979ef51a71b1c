package entity

import "strings"

// DatePart reduces "2024-05-01", "2024-05-01 09:30:00" or
// "2024-05-01T09:30:00.000000Z" to "2024-05-01".
func DatePart(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, " T"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

// TimePart reduces "09:30", "09:30:00" or a full timestamp to "09:30".
// Anything without an hour and minute yields "".
func TimePart(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, " T"); i >= 0 {
		raw = raw[i+1:]
	}
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return ""
	}
	h, m := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if len(m) > 2 {
		m = m[:2]
	}
	if h == "" || m == "" {
		return ""
	}
	if len(h) == 1 {
		h = "0" + h
	}
	return h + ":" + m
}
