package registration

// Status describes the outcome of a registration attempt.
//
// Business-rule rejections are reported through this closed enumeration,
// never as errors; only referencing an unknown course raises an error
// (see Registry.RegisterStudent).
type Status string

const (
	// StatusSuccess - registration completed; both the course's
	// enrollment set and the student's course list were updated.
	StatusSuccess Status = "success"

	// StatusCourseFull - the course has reached maximum capacity.
	StatusCourseFull Status = "course_full"

	// StatusPrereqNotMet - prerequisites not satisfied.
	StatusPrereqNotMet Status = "prereq_not_met"

	// StatusTimeConflict - schedule conflicts with another course.
	// Reserved: no validation path produces it yet.
	StatusTimeConflict Status = "time_conflict"

	// StatusAlreadyEnrolled - the student is already in the course's
	// enrollment set.
	StatusAlreadyEnrolled Status = "already_enrolled"

	// StatusRegistrationClosed - the registration deadline has passed.
	StatusRegistrationClosed Status = "registration_closed"
)

// IsValid checks that the status is one of the known outcomes.
func (s Status) IsValid() bool {
	switch s {
	case StatusSuccess, StatusCourseFull, StatusPrereqNotMet,
		StatusTimeConflict, StatusAlreadyEnrolled, StatusRegistrationClosed:
		return true
	default:
		return false
	}
}

// IsRejection reports whether the status is a business-rule rejection.
func (s Status) IsRejection() bool {
	return s.IsValid() && s != StatusSuccess
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}
