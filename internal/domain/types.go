package domain

import "time"

type (
	BoardId  = string
	ThreadId = string
	ReplyId  = string
	ClientId = string

	Millis = int64 // unix milliseconds, matches the on-disk document format
)

// NowMillis returns the current time in the resolution stored on disk.
func NowMillis() Millis {
	return time.Now().UnixMilli()
}
