package service

import (
	"fmt"
	"strings"
)

// Bucket identifies one of the eight fixed board slots. Buckets are never
// created or destroyed at runtime; identity is the name.
type Bucket string

// The eight buckets, in board order.
const (
	Monday    Bucket = "Monday"
	Tuesday   Bucket = "Tuesday"
	Wednesday Bucket = "Wednesday"
	Thursday  Bucket = "Thursday"
	Friday    Bucket = "Friday"
	Saturday  Bucket = "Saturday"
	Sunday    Bucket = "Sunday"
	Someday   Bucket = "Someday"
)

// Buckets returns all buckets in board order.
func Buckets() []Bucket {
	return []Bucket{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday, Someday}
}

// ParseBucket resolves a day name to a Bucket. Matching is case-insensitive
// and accepts any prefix of at least three characters (mon, tue, ... som).
func ParseBucket(name string) (Bucket, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if len(s) < 3 {
		return "", fmt.Errorf("unknown day: %s", name)
	}
	for _, b := range Buckets() {
		if strings.HasPrefix(strings.ToLower(string(b)), s) {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown day: %s", name)
}

// Task represents a single task on the board.
type Task struct {
	ID          string
	Description string
	Completed   bool
	Bucket      Bucket
}

// TaskPatch describes a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Description *string
	Completed   *bool
	Bucket      *Bucket
}
