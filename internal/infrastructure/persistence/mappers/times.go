package mappers

import "time"

func msToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func msPtrToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

func timePtrToMsPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
