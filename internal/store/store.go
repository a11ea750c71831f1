// Package store holds the entire application state in memory. Records live in
// per-entity maps keyed by a synthetic integer id that increases monotonically
// within each entity type and is never reused for the lifetime of the process.
// A restart discards everything.
package store

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"hrportal/internal/domain"
)

type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users         map[int]domain.User
	employees     map[int]domain.Employee
	documents     map[int]domain.Document
	attendance    map[int]domain.Attendance
	leaves        map[int]domain.Leave
	payrolls      map[int]domain.Payroll
	performances  map[int]domain.Performance
	activities    map[int]domain.Activity
	tasks         map[int]domain.Task
	announcements map[int]domain.Announcement
	events        map[int]domain.Event

	userSeq         int
	employeeSeq     int
	documentSeq     int
	attendanceSeq   int
	leaveSeq        int
	payrollSeq      int
	performanceSeq  int
	activitySeq     int
	taskSeq         int
	announcementSeq int
	eventSeq        int
}

func New() *Store {
	return &Store{
		now:           time.Now,
		users:         make(map[int]domain.User),
		employees:     make(map[int]domain.Employee),
		documents:     make(map[int]domain.Document),
		attendance:    make(map[int]domain.Attendance),
		leaves:        make(map[int]domain.Leave),
		payrolls:      make(map[int]domain.Payroll),
		performances:  make(map[int]domain.Performance),
		activities:    make(map[int]domain.Activity),
		tasks:         make(map[int]domain.Task),
		announcements: make(map[int]domain.Announcement),
		events:        make(map[int]domain.Event),
	}
}

// materialize builds a record from a validated value map by way of JSON, so
// field names line up with the wire tags the validator works against.
func materialize(values map[string]any, record any) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, record)
}

// merge overwrites exactly the keys present in the patch; omitted fields keep
// their prior values.
func merge(record any, patch map[string]any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var current map[string]any
	if err := json.Unmarshal(raw, &current); err != nil {
		return err
	}
	for key, value := range patch {
		current[key] = value
	}
	merged, err := json.Marshal(current)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, record)
}

// sortedIDs returns map keys ascending. Ids are assigned in creation order,
// so this is insertion order.
func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
