// Package student contains the student record domain model.
//
// This is the business-logic core: the package defines the Student entity,
// its value objects (StudentID, CGPA) and the AcademicStanding enumeration,
// plus the domain events other parts of the system react to. It imports
// nothing outside the domain layer.
//
// # Entities and value objects
//
// Student is the central entity:
//
//	s, err := NewStudent(NewStudentParams{
//	    ID:         "CS2023001",
//	    Name:       "Aidana Bekova",
//	    Department: "Computer Science",
//	})
//
// CGPA is a float in [0.0, 10.0] and drives the standing classification:
//
//	if err := s.UpdateCGPA(8.4); err != nil { ... }
//	standing := s.AcademicStanding() // StandingGood
//
// # Error contract
//
// Hard failures (malformed ID, CGPA out of range, course limit reached)
// are returned as shared.DomainError values; expected outcomes (duplicate
// enrollment, probation hold) are returned as booleans. Callers branch on
// the boolean and propagate the error.
package student
