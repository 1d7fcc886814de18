// Package registration contains the course catalog and registration ledger.
//
// The Registry owns the catalog mapping and each course's enrollment set
// exclusively. Students are referenced by ID only; the registry never owns
// or destroys Student objects. All operations are synchronous, single-step
// evaluations over current in-memory state, intended for a single caller.
package registration

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/campus-hub/academic-registry/internal/domain/shared"
	"github.com/campus-hub/academic-registry/internal/domain/student"
	"github.com/campus-hub/academic-registry/pkg/clock"
)

// CourseCode represents a course identifier such as "CS101" or "MATH201".
type CourseCode string

// Course codes are 2-4 uppercase letters followed by 3 digits.
var courseCodeRegex = regexp.MustCompile(`^[A-Z]{2,4}[0-9]{3}$`)

// IsValid checks the course code format.
func (c CourseCode) IsValid() bool {
	return courseCodeRegex.MatchString(string(c))
}

// String returns the string representation.
func (c CourseCode) String() string {
	return string(c)
}

// courseInfo holds the catalog entry for one course. Owned exclusively by
// the Registry; enrolledStudents holds student IDs, not student objects.
type courseInfo struct {
	courseName           string
	maxCapacity          int
	prerequisites        map[string]struct{}
	enrolledStudents     map[string]struct{}
	registrationDeadline time.Time
}

// Registry is the course-registration ledger: a catalog of courses keyed
// by course code, with per-course capacities, prerequisites, enrollment
// sets, and registration deadlines.
type Registry struct {
	courses map[string]*courseInfo
	clock   clock.Clock
}

// NewRegistry creates an empty registry using the system clock for
// deadline checks.
func NewRegistry() *Registry {
	return NewRegistryWithClock(clock.System())
}

// NewRegistryWithClock creates an empty registry with an explicit time
// source. A nil clock falls back to the system clock.
func NewRegistryWithClock(c clock.Clock) *Registry {
	if c == nil {
		c = clock.System()
	}
	return &Registry{
		courses: make(map[string]*courseInfo),
		clock:   c,
	}
}

// AddCourse inserts a new course into the catalog with an empty
// enrollment set. It fails with an invalid-argument error if the code is
// malformed or already present, and with an out-of-range error if the
// capacity is negative. Courses are never removed once added.
func (r *Registry) AddCourse(courseCode CourseCode, courseName string, capacity int, prerequisites []CourseCode, deadline time.Time) error {
	if !courseCode.IsValid() {
		return shared.NewDomainError("registration", "AddCourse", shared.ErrInvalidFormat,
			fmt.Sprintf("invalid course code: %q", string(courseCode)))
	}
	if _, exists := r.courses[string(courseCode)]; exists {
		return shared.NewDomainError("registration", "AddCourse", shared.ErrAlreadyExists,
			fmt.Sprintf("course %s already exists", courseCode))
	}
	if capacity < 0 {
		return shared.NewDomainError("registration", "AddCourse", shared.ErrNegativeValue,
			"capacity must be non-negative")
	}
	if strings.TrimSpace(courseName) == "" {
		return shared.NewDomainError("registration", "AddCourse", shared.ErrEmptyValue,
			"course name is required")
	}

	prereqs := make(map[string]struct{}, len(prerequisites))
	for _, p := range prerequisites {
		prereqs[string(p)] = struct{}{}
	}

	r.courses[string(courseCode)] = &courseInfo{
		courseName:           strings.TrimSpace(courseName),
		maxCapacity:          capacity,
		prerequisites:        prereqs,
		enrolledStudents:     make(map[string]struct{}),
		registrationDeadline: deadline,
	}
	return nil
}

// RegisterStudent attempts to register a student for a course.
//
// An unknown course code raises an invalid-argument error; every other
// rejection is reported as a Status. Checks run in a fixed order and the
// first match wins:
//
//  1. StatusRegistrationClosed - the deadline has passed
//  2. StatusAlreadyEnrolled   - the student ID is in the enrollment set
//  3. StatusCourseFull        - the enrollment set is at capacity
//  4. StatusPrereqNotMet      - a prerequisite is missing
//  5. StatusSuccess           - the student ID joins the enrollment set
//     and the course code joins the student's own list
//
// The ordering is observable: a student already enrolled in a full,
// expired course sees StatusRegistrationClosed.
//
// Prerequisite satisfaction means the prerequisite appears in the
// student's current enrollment list; completion is not tracked.
func (r *Registry) RegisterStudent(s *student.Student, courseCode CourseCode) (Status, error) {
	course, exists := r.courses[string(courseCode)]
	if !exists {
		return "", shared.NewDomainError("registration", "RegisterStudent", shared.ErrInvalidArgument,
			fmt.Sprintf("course %s does not exist", courseCode))
	}

	if r.clock.Now().After(course.registrationDeadline) {
		return StatusRegistrationClosed, nil
	}

	if _, enrolled := course.enrolledStudents[s.ID().String()]; enrolled {
		return StatusAlreadyEnrolled, nil
	}

	if len(course.enrolledStudents) >= course.maxCapacity {
		return StatusCourseFull, nil
	}

	if !r.validatePrerequisites(s, courseCode) {
		return StatusPrereqNotMet, nil
	}

	course.enrolledStudents[s.ID().String()] = struct{}{}
	if _, err := s.EnrollInCourse(string(courseCode)); err != nil {
		// The course-side insert stands; the student's own limit tripped.
		return "", err
	}
	return StatusSuccess, nil
}

// validatePrerequisites reports whether every prerequisite of the course
// appears in the student's enrollment list. Unknown courses fail
// (defensive; RegisterStudent checks existence first).
func (r *Registry) validatePrerequisites(s *student.Student, courseCode CourseCode) bool {
	course, exists := r.courses[string(courseCode)]
	if !exists {
		return false
	}

	for prereq := range course.prerequisites {
		if !s.IsEnrolledIn(prereq) {
			return false
		}
	}
	return true
}

// WithdrawStudent removes a student ID from a course's enrollment set.
// Returns false if the course is unknown or the student was not enrolled.
//
// Only the course side is updated: the student's own enrollment list
// keeps the course code.
func (r *Registry) WithdrawStudent(studentID student.StudentID, courseCode CourseCode) bool {
	course, exists := r.courses[string(courseCode)]
	if !exists {
		return false
	}

	if _, enrolled := course.enrolledStudents[studentID.String()]; !enrolled {
		return false
	}

	delete(course.enrolledStudents, studentID.String())
	return true
}

// EnrollmentCount returns the number of students enrolled in a course.
// Fails with an out-of-range error for an unknown course.
func (r *Registry) EnrollmentCount(courseCode CourseCode) (int, error) {
	course, exists := r.courses[string(courseCode)]
	if !exists {
		return 0, shared.NewDomainError("registration", "EnrollmentCount", shared.ErrOutOfRange,
			fmt.Sprintf("course %s does not exist", courseCode))
	}
	return len(course.enrolledStudents), nil
}

// IsCourseFull reports whether a course has reached capacity.
// Fails with an out-of-range error for an unknown course.
func (r *Registry) IsCourseFull(courseCode CourseCode) (bool, error) {
	course, exists := r.courses[string(courseCode)]
	if !exists {
		return false, shared.NewDomainError("registration", "IsCourseFull", shared.ErrOutOfRange,
			fmt.Sprintf("course %s does not exist", courseCode))
	}
	return len(course.enrolledStudents) >= course.maxCapacity, nil
}

// HasCourse reports whether a course code is in the catalog.
func (r *Registry) HasCourse(courseCode CourseCode) bool {
	_, exists := r.courses[string(courseCode)]
	return exists
}

// CourseName returns the catalog name of a course.
func (r *Registry) CourseName(courseCode CourseCode) (string, error) {
	course, exists := r.courses[string(courseCode)]
	if !exists {
		return "", shared.NewDomainError("registration", "CourseName", shared.ErrNotFound,
			fmt.Sprintf("course %s does not exist", courseCode))
	}
	return course.courseName, nil
}

// SeatsLeft returns the remaining capacity of a course.
func (r *Registry) SeatsLeft(courseCode CourseCode) (int, error) {
	course, exists := r.courses[string(courseCode)]
	if !exists {
		return 0, shared.NewDomainError("registration", "SeatsLeft", shared.ErrNotFound,
			fmt.Sprintf("course %s does not exist", courseCode))
	}
	left := course.maxCapacity - len(course.enrolledStudents)
	if left < 0 {
		left = 0
	}
	return left, nil
}

// Deadline returns the registration deadline of a course.
func (r *Registry) Deadline(courseCode CourseCode) (time.Time, error) {
	course, exists := r.courses[string(courseCode)]
	if !exists {
		return time.Time{}, shared.NewDomainError("registration", "Deadline", shared.ErrNotFound,
			fmt.Sprintf("course %s does not exist", courseCode))
	}
	return course.registrationDeadline, nil
}

// Prerequisites returns the prerequisite codes of a course in sorted order.
func (r *Registry) Prerequisites(courseCode CourseCode) ([]CourseCode, error) {
	course, exists := r.courses[string(courseCode)]
	if !exists {
		return nil, shared.NewDomainError("registration", "Prerequisites", shared.ErrNotFound,
			fmt.Sprintf("course %s does not exist", courseCode))
	}

	prereqs := make([]CourseCode, 0, len(course.prerequisites))
	for p := range course.prerequisites {
		prereqs = append(prereqs, CourseCode(p))
	}
	sort.Slice(prereqs, func(i, j int) bool { return prereqs[i] < prereqs[j] })
	return prereqs, nil
}

// CourseCodes returns every catalog code in sorted order.
func (r *Registry) CourseCodes() []CourseCode {
	codes := make([]CourseCode, 0, len(r.courses))
	for code := range r.courses {
		codes = append(codes, CourseCode(code))
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
