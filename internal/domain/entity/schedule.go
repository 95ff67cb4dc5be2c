// Package entity contains the core business objects of the project.
package entity

import "time"

// MaintenanceSchedule is a one-off plant care appointment for a user.
// Both the user and the plant are non-owning references: deleting either
// side is restricted while the schedule exists.
type MaintenanceSchedule struct {
	ID           int64             // Numeric identity of the schedule.
	UserID       int64             // The user the maintenance is performed for.
	PlantID      int64             // The plant being maintained.
	ScheduleDate time.Time         // Calendar date of the appointment (UTC, date precision).
	Status       MaintenanceStatus // Current position in the maintenance state machine.
}

// MaintenanceStatus represents the position of a schedule in its lifecycle.
type MaintenanceStatus string

const (
	MaintenanceScheduled MaintenanceStatus = "scheduled"
	MaintenanceCompleted MaintenanceStatus = "completed"
	MaintenanceMissed    MaintenanceStatus = "missed"
	MaintenanceCancelled MaintenanceStatus = "cancelled"
)

// maintenanceTransitions is the full table of legal schedule status
// transitions. completed, missed and cancelled are terminal.
var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceScheduled: {MaintenanceCompleted, MaintenanceMissed, MaintenanceCancelled},
}

// String returns the string representation of the MaintenanceStatus.
func (s MaintenanceStatus) String() string {
	return string(s)
}

// IsValid checks if the MaintenanceStatus is a valid value.
func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceCompleted, MaintenanceMissed, MaintenanceCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted from s.
func (s MaintenanceStatus) IsTerminal() bool {
	return len(maintenanceTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition. It is a pure table lookup with no side effects.
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	for _, allowed := range maintenanceTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ParseMaintenanceStatus converts a raw string into a MaintenanceStatus.
// The boolean is false when the string is not part of the closed set.
func ParseMaintenanceStatus(s string) (MaintenanceStatus, bool) {
	status := MaintenanceStatus(s)

	return status, status.IsValid()
}
