package student

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/campus-hub/academic-registry/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// StudentID represents a unique student identifier.
type StudentID string

// Student IDs are 4-16 uppercase alphanumerics containing at least one
// letter and one digit, e.g. "CS2023001".
var studentIDRegex = regexp.MustCompile(`^[A-Z0-9]{4,16}$`)

// IsValid checks the student ID format.
func (s StudentID) IsValid() bool {
	str := string(s)
	if !studentIDRegex.MatchString(str) {
		return false
	}
	return strings.ContainsAny(str, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") &&
		strings.ContainsAny(str, "0123456789")
}

// String returns the string representation.
func (s StudentID) String() string {
	return string(s)
}

// CGPA represents a cumulative grade-point average on a 10-point scale.
type CGPA float64

const (
	// MinCGPA is the lower bound of the CGPA scale.
	MinCGPA CGPA = 0.0
	// MaxCGPA is the upper bound of the CGPA scale.
	MaxCGPA CGPA = 10.0
)

// IsValid checks that the CGPA is within [0.0, 10.0].
func (c CGPA) IsValid() bool {
	return c >= MinCGPA && c <= MaxCGPA
}

// Float64 returns the underlying float64 value.
func (c CGPA) Float64() float64 {
	return float64(c)
}

// ══════════════════════════════════════════════════════════════════════════════
// ACADEMIC STANDING
// ══════════════════════════════════════════════════════════════════════════════

// AcademicStanding classifies a student's performance level, derived
// purely from CGPA.
type AcademicStanding string

const (
	// StandingExcellent - CGPA >= 9.0.
	StandingExcellent AcademicStanding = "excellent"
	// StandingGood - CGPA >= 7.0 and < 9.0.
	StandingGood AcademicStanding = "good"
	// StandingSatisfactory - CGPA >= 5.0 and < 7.0.
	StandingSatisfactory AcademicStanding = "satisfactory"
	// StandingProbation - CGPA < 5.0. Blocks semester advancement.
	StandingProbation AcademicStanding = "probation"
)

// IsValid checks that the standing is one of the known levels.
func (a AcademicStanding) IsValid() bool {
	switch a {
	case StandingExcellent, StandingGood, StandingSatisfactory, StandingProbation:
		return true
	default:
		return false
	}
}

// StandingForCGPA classifies a CGPA into an academic standing.
// Boundary values belong to the higher tier.
func StandingForCGPA(cgpa CGPA) AcademicStanding {
	switch {
	case cgpa >= 9.0:
		return StandingExcellent
	case cgpa >= 7.0:
		return StandingGood
	case cgpa >= 5.0:
		return StandingSatisfactory
	default:
		return StandingProbation
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// DefaultCourseLimit is the maximum number of simultaneous course
// enrollments a student may hold unless overridden at construction
// (REGISTRAR_MAX_ENROLLED_COURSES in config).
const DefaultCourseLimit = 8

// Student is the central entity of the system: identity, academic
// standing, and the ordered list of enrolled course codes.
//
// The ID is immutable after construction. CGPA and semester change only
// through UpdateCGPA and AdvanceToNextSemester; the enrollment list
// changes only through EnrollInCourse.
type Student struct {
	id              StudentID
	name            string
	department      string
	cgpa            CGPA
	semester        int
	enrolledCourses []string
	courseLimit     int
}

// NewStudentParams contains parameters for creating a new student.
type NewStudentParams struct {
	ID         string
	Name       string
	Department string

	// CourseLimit caps simultaneous enrollments. Zero means
	// DefaultCourseLimit.
	CourseLimit int
}

// NewStudent creates a new student with validation of all fields.
// The new student starts with CGPA 0.0, semester 1, and no enrollments.
func NewStudent(params NewStudentParams) (*Student, error) {
	id := StudentID(strings.TrimSpace(params.ID))
	if !id.IsValid() {
		return nil, shared.NewDomainError("student", "NewStudent", shared.ErrInvalidID,
			fmt.Sprintf("invalid student ID format: %q", params.ID))
	}

	name := strings.TrimSpace(params.Name)
	if len(name) == 0 || len(name) > 100 {
		return nil, shared.NewDomainError("student", "NewStudent", shared.ErrInvalidArgument,
			"name must be 1-100 chars")
	}

	department := strings.TrimSpace(params.Department)
	if len(department) == 0 || len(department) > 100 {
		return nil, shared.NewDomainError("student", "NewStudent", shared.ErrInvalidArgument,
			"department must be 1-100 chars")
	}

	limit := params.CourseLimit
	if limit == 0 {
		limit = DefaultCourseLimit
	}
	if limit < 1 {
		return nil, shared.NewDomainError("student", "NewStudent", shared.ErrInvalidArgument,
			"course limit must be positive")
	}

	return &Student{
		id:              id,
		name:            name,
		department:      department,
		cgpa:            MinCGPA,
		semester:        1,
		enrolledCourses: make([]string, 0, limit),
		courseLimit:     limit,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// EnrollInCourse appends a course code to the student's enrollment list.
// It returns false without mutation if the course is already present, and
// an error if the course limit has been reached.
func (s *Student) EnrollInCourse(courseCode string) (bool, error) {
	if s.IsEnrolledIn(courseCode) {
		return false, nil
	}

	if len(s.enrolledCourses) >= s.courseLimit {
		return false, shared.NewDomainError("student", "EnrollInCourse", shared.ErrLimitExceeded,
			fmt.Sprintf("maximum of %d enrolled courses reached", s.courseLimit))
	}

	s.enrolledCourses = append(s.enrolledCourses, courseCode)
	return true, nil
}

// UpdateCGPA replaces the student's CGPA.
// Returns an out-of-range error if the value is outside [0.0, 10.0].
func (s *Student) UpdateCGPA(newCGPA CGPA) error {
	if !newCGPA.IsValid() {
		return shared.NewDomainError("student", "UpdateCGPA", shared.ErrOutOfRange,
			fmt.Sprintf("CGPA %.2f outside [%.1f, %.1f]", float64(newCGPA), float64(MinCGPA), float64(MaxCGPA)))
	}

	s.cgpa = newCGPA
	return nil
}

// AcademicStanding returns the standing derived from the current CGPA.
func (s *Student) AcademicStanding() AcademicStanding {
	return StandingForCGPA(s.cgpa)
}

// AdvanceToNextSemester increments the semester counter.
// Returns false without mutation if the student is on probation.
func (s *Student) AdvanceToNextSemester() bool {
	if s.AcademicStanding() == StandingProbation {
		return false
	}

	s.semester++
	return true
}

// IsEnrolledIn reports whether the course code is in the enrollment list.
func (s *Student) IsEnrolledIn(courseCode string) bool {
	for _, code := range s.enrolledCourses {
		if code == courseCode {
			return true
		}
	}
	return false
}

// ══════════════════════════════════════════════════════════════════════════════
// GETTERS
// ══════════════════════════════════════════════════════════════════════════════

// ID returns the student's unique identifier.
func (s *Student) ID() StudentID {
	return s.id
}

// Name returns the student's full name.
func (s *Student) Name() string {
	return s.name
}

// Department returns the student's department.
func (s *Student) Department() string {
	return s.department
}

// CGPA returns the current CGPA.
func (s *Student) CGPA() CGPA {
	return s.cgpa
}

// Semester returns the current semester, starting at 1.
func (s *Student) Semester() int {
	return s.semester
}

// CourseLimit returns the maximum number of simultaneous enrollments.
func (s *Student) CourseLimit() int {
	return s.courseLimit
}

// EnrolledCourses returns a copy of the enrollment list in enrollment order.
func (s *Student) EnrolledCourses() []string {
	courses := make([]string, len(s.enrolledCourses))
	copy(courses, s.enrolledCourses)
	return courses
}

// String returns a compact representation for logging.
func (s *Student) String() string {
	return fmt.Sprintf(
		"Student{ID: %s, Department: %s, CGPA: %.2f, Semester: %d, Courses: %d}",
		s.id, s.department, float64(s.cgpa), s.semester, len(s.enrolledCourses),
	)
}
