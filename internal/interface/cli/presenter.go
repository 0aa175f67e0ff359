package cli

import (
	"fmt"
	"strings"

	"github.com/alem-hub/progress-tracker/internal/domain/course"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// Fixed protocol messages.
const (
	msgTitle           = "Learning Progress Tracker"
	msgNoInput         = "No input."
	msgUnknownCommand  = "Error: unknown command!"
	msgExitHint        = "Enter 'exit' to exit the program."
	msgBye             = "Bye!"
	msgAddStudentsHint = "Enter student credentials or 'back' to return:"
	msgBadCredentials  = "Incorrect credentials."
	msgEmailTaken      = "This email is already taken."
	msgStudentAdded    = "The student has been added."
	msgAddPointsHint   = "Enter an id and points or 'back' to return:"
	msgBadPoints       = "Incorrect points format."
	msgPointsUpdated   = "Points updated."
	msgFindHint        = "Enter an id or 'back' to return:"
	msgStudentsHeader  = "Students:"
	msgNoStudents      = "No students found."
	msgStatisticsHint  = "Type the name of a course to see details or 'back' to quit:"
	msgUnknownCourse   = "Unknown course."

	// placeholder for an absent superlative
	notApplicable = "n/a"
)

func formatIncorrectField(field string) string {
	return fmt.Sprintf("Incorrect %s.", field)
}

func formatStudentsAdded(n int) string {
	return fmt.Sprintf("Total %d students have been added.", n)
}

func formatStudentNotFound(raw string) string {
	return fmt.Sprintf("No student is found for id=%s.", raw)
}

func formatStudentsNotified(n int) string {
	return fmt.Sprintf("Total %d students have been notified.", n)
}

func formatInternalError(err error) string {
	return "Error: " + err.Error()
}

// formatStudentPoints renders "<id> points: Python=a; DSA=b; Databases=c; Flask=d".
func formatStudentPoints(s *student.Student) string {
	parts := make([]string, 0, course.Count)
	for i, c := range course.All() {
		parts = append(parts, fmt.Sprintf("%s=%d", c.Name, s.Points[i]))
	}
	return fmt.Sprintf("%s points: %s", s.ID, strings.Join(parts, "; "))
}
