package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/academic-registry/internal/domain/shared"
	"github.com/campus-hub/academic-registry/internal/domain/student"
	"github.com/campus-hub/academic-registry/pkg/clock"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newTestRegistry(t *testing.T) (*Registry, *clock.Fixed) {
	t.Helper()
	clk := clock.NewFixed(testNow)
	return NewRegistryWithClock(clk), clk
}

func newTestStudent(t *testing.T, id string) *student.Student {
	t.Helper()
	s, err := student.NewStudent(student.NewStudentParams{
		ID:         id,
		Name:       "Test Student",
		Department: "Computer Science",
	})
	require.NoError(t, err)
	return s
}

func futureDeadline() time.Time {
	return testNow.Add(14 * 24 * time.Hour)
}

func TestAddCourse(t *testing.T) {
	r, _ := newTestRegistry(t)

	err := r.AddCourse("CS201", "Data Structures", 60, nil, futureDeadline())
	require.NoError(t, err)

	assert.True(t, r.HasCourse("CS201"))

	name, err := r.CourseName("CS201")
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", name)

	count, err := r.EnrollmentCount("CS201")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddCourse_DuplicateCode(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.AddCourse("CS201", "Data Structures", 60, nil, futureDeadline()))

	err := r.AddCourse("CS201", "Algorithms", 40, nil, futureDeadline())
	require.Error(t, err)
	assert.True(t, shared.IsInvalidArgument(err))
}

func TestAddCourse_NegativeCapacity(t *testing.T) {
	r, _ := newTestRegistry(t)

	err := r.AddCourse("CS201", "Data Structures", -1, nil, futureDeadline())
	require.Error(t, err)
	assert.True(t, shared.IsOutOfRange(err))
	assert.False(t, r.HasCourse("CS201"))
}

func TestAddCourse_InvalidCode(t *testing.T) {
	r, _ := newTestRegistry(t)

	for _, code := range []CourseCode{"", "cs101", "C1", "CS10", "COMPSCI101"} {
		err := r.AddCourse(code, "Whatever", 10, nil, futureDeadline())
		require.Errorf(t, err, "code %q", code)
		assert.True(t, shared.IsInvalidArgument(err))
	}
}

func TestRegisterStudent_Success(t *testing.T) {
	r, _ := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 60, nil, futureDeadline()))

	status, err := r.RegisterStudent(s, "CS101")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)

	// Both sides mutated on success.
	count, err := r.EnrollmentCount("CS101")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, s.IsEnrolledIn("CS101"))
}

func TestRegisterStudent_UnknownCourse(t *testing.T) {
	r, _ := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	// Unknown courses raise an error, unlike business-rule rejections.
	_, err := r.RegisterStudent(s, "CS999")
	require.Error(t, err)
	assert.True(t, shared.IsInvalidArgument(err))
}

func TestRegisterStudent_AlreadyEnrolled(t *testing.T) {
	r, _ := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 60, nil, futureDeadline()))

	status, err := r.RegisterStudent(s, "CS101")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, status)

	status, err = r.RegisterStudent(s, "CS101")
	require.NoError(t, err)
	assert.Equal(t, StatusAlreadyEnrolled, status)

	count, err := r.EnrollmentCount("CS101")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegisterStudent_CourseFull(t *testing.T) {
	r, _ := newTestRegistry(t)
	first := newTestStudent(t, "CS2023001")
	second := newTestStudent(t, "CS2023002")

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 1, nil, futureDeadline()))

	status, err := r.RegisterStudent(first, "CS101")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)

	status, err = r.RegisterStudent(second, "CS101")
	require.NoError(t, err)
	assert.Equal(t, StatusCourseFull, status)
	assert.False(t, second.IsEnrolledIn("CS101"))

	full, err := r.IsCourseFull("CS101")
	require.NoError(t, err)
	assert.True(t, full)
}

func TestRegisterStudent_ZeroCapacityIsAlwaysFull(t *testing.T) {
	r, _ := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 0, nil, futureDeadline()))

	status, err := r.RegisterStudent(s, "CS101")
	require.NoError(t, err)
	assert.Equal(t, StatusCourseFull, status)
}

func TestRegisterStudent_PrereqNotMet(t *testing.T) {
	r, _ := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	require.NoError(t, r.AddCourse("CS201", "Data Structures", 60, []CourseCode{"CS101"}, futureDeadline()))

	status, err := r.RegisterStudent(s, "CS201")
	require.NoError(t, err)
	assert.Equal(t, StatusPrereqNotMet, status)

	// Enrollment in the prerequisite satisfies the check; completion is
	// not tracked.
	_, err = s.EnrollInCourse("CS101")
	require.NoError(t, err)

	status, err = r.RegisterStudent(s, "CS201")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
}

func TestRegisterStudent_MultiplePrerequisites(t *testing.T) {
	r, _ := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	require.NoError(t, r.AddCourse("CS301", "Operating Systems", 40,
		[]CourseCode{"CS101", "MATH201"}, futureDeadline()))

	_, err := s.EnrollInCourse("CS101")
	require.NoError(t, err)

	status, err := r.RegisterStudent(s, "CS301")
	require.NoError(t, err)
	assert.Equal(t, StatusPrereqNotMet, status)

	_, err = s.EnrollInCourse("MATH201")
	require.NoError(t, err)

	status, err = r.RegisterStudent(s, "CS301")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
}

func TestRegisterStudent_RegistrationClosed(t *testing.T) {
	r, clk := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 60, nil, futureDeadline()))

	clk.Set(futureDeadline().Add(time.Second))

	status, err := r.RegisterStudent(s, "CS101")
	require.NoError(t, err)
	assert.Equal(t, StatusRegistrationClosed, status)
	assert.False(t, s.IsEnrolledIn("CS101"))
}

func TestRegisterStudent_DeadlineExactlyNowStillOpen(t *testing.T) {
	r, clk := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 60, nil, testNow))
	clk.Set(testNow)

	status, err := r.RegisterStudent(s, "CS101")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
}

func TestRegisterStudent_DeadlinePrecedence(t *testing.T) {
	// A student already enrolled in a full, expired course sees
	// REGISTRATION_CLOSED: the deadline is checked first.
	r, clk := newTestRegistry(t)
	enrolled := newTestStudent(t, "CS2023001")
	outsider := newTestStudent(t, "CS2023002")

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 1, nil, futureDeadline()))

	status, err := r.RegisterStudent(enrolled, "CS101")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, status)

	full, err := r.IsCourseFull("CS101")
	require.NoError(t, err)
	require.True(t, full)

	clk.Set(futureDeadline().Add(time.Hour))

	status, err = r.RegisterStudent(enrolled, "CS101")
	require.NoError(t, err)
	assert.Equal(t, StatusRegistrationClosed, status,
		"deadline wins over already-enrolled")

	status, err = r.RegisterStudent(outsider, "CS101")
	require.NoError(t, err)
	assert.Equal(t, StatusRegistrationClosed, status,
		"deadline wins over course-full")
}

func TestRegisterStudent_StudentLimitTripsAfterCourseInsert(t *testing.T) {
	r, _ := newTestRegistry(t)
	s, err := student.NewStudent(student.NewStudentParams{
		ID:          "CS2023001",
		Name:        "Test Student",
		Department:  "Computer Science",
		CourseLimit: 1,
	})
	require.NoError(t, err)

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 60, nil, futureDeadline()))
	require.NoError(t, r.AddCourse("CS102", "Discrete Mathematics", 60, nil, futureDeadline()))

	status, err := r.RegisterStudent(s, "CS101")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, status)

	_, err = r.RegisterStudent(s, "CS102")
	require.Error(t, err)
	assert.True(t, shared.IsLimitExceeded(err))

	// The course-side insert stands even though the student's own list
	// rejected the course.
	count, err := r.EnrollmentCount("CS102")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.False(t, s.IsEnrolledIn("CS102"))
}

func TestWithdrawStudent(t *testing.T) {
	r, _ := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 60, nil, futureDeadline()))

	status, err := r.RegisterStudent(s, "CS101")
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, status)

	assert.True(t, r.WithdrawStudent(s.ID(), "CS101"))

	count, err := r.EnrollmentCount("CS101")
	require.NoError(t, err)
	assert.Zero(t, count)

	// Withdrawal updates only the course side: the student's own list
	// still holds the course code.
	assert.True(t, s.IsEnrolledIn("CS101"))

	// Second withdrawal is a no-op.
	assert.False(t, r.WithdrawStudent(s.ID(), "CS101"))
}

func TestWithdrawStudent_UnknownCourse(t *testing.T) {
	r, _ := newTestRegistry(t)
	assert.False(t, r.WithdrawStudent("CS2023001", "CS999"))
}

func TestEnrollmentCount_UnknownCourse(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, err := r.EnrollmentCount("CS999")
	require.Error(t, err)
	assert.True(t, shared.IsOutOfRange(err))
}

func TestIsCourseFull_UnknownCourse(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, err := r.IsCourseFull("CS999")
	require.Error(t, err)
	assert.True(t, shared.IsOutOfRange(err))
}

func TestSeatsLeft(t *testing.T) {
	r, _ := newTestRegistry(t)
	s := newTestStudent(t, "CS2023001")

	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 2, nil, futureDeadline()))

	left, err := r.SeatsLeft("CS101")
	require.NoError(t, err)
	assert.Equal(t, 2, left)

	_, err = r.RegisterStudent(s, "CS101")
	require.NoError(t, err)

	left, err = r.SeatsLeft("CS101")
	require.NoError(t, err)
	assert.Equal(t, 1, left)

	_, err = r.SeatsLeft("CS999")
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}

func TestPrerequisites_SortedSnapshot(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.AddCourse("CS301", "Operating Systems", 40,
		[]CourseCode{"MATH201", "CS101", "CS101"}, futureDeadline()))

	prereqs, err := r.Prerequisites("CS301")
	require.NoError(t, err)
	assert.Equal(t, []CourseCode{"CS101", "MATH201"}, prereqs, "deduplicated and sorted")
}

func TestCourseCodes(t *testing.T) {
	r, _ := newTestRegistry(t)

	require.NoError(t, r.AddCourse("MATH201", "Linear Algebra", 80, nil, futureDeadline()))
	require.NoError(t, r.AddCourse("CS101", "Intro to Programming", 60, nil, futureDeadline()))

	assert.Equal(t, []CourseCode{"CS101", "MATH201"}, r.CourseCodes())
}

func TestStatus_Properties(t *testing.T) {
	assert.True(t, StatusSuccess.IsValid())
	assert.False(t, StatusSuccess.IsRejection())

	for _, status := range []Status{
		StatusCourseFull, StatusPrereqNotMet, StatusTimeConflict,
		StatusAlreadyEnrolled, StatusRegistrationClosed,
	} {
		assert.True(t, status.IsValid())
		assert.True(t, status.IsRejection())
	}

	assert.False(t, Status("maybe").IsValid())
}
