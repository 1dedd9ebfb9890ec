package roster

import "fmt"

// Assignment notes written into the roster
const (
	NoteNotOnWeekends     = "Not scheduled on weekends"
	NoteNoEligibleStaff   = "No eligible staff"
	NoteWeeklyAssignment  = "Weekly assignment"
	NoteAssignedByWish    = "Assigned based on wish"
	NoteAssignedAvailable = "Assigned based on availability"
)

func weekendBlockNote(k int) string {
	return fmt.Sprintf("Weekend block assignment (%d/3)", k)
}

func nightBlockNote(k, size int) string {
	return fmt.Sprintf("Block assignment (%d/%d)", k, size)
}

func weekendPairNote(k int) string {
	return fmt.Sprintf("Weekend pair (%d/2)", k)
}
