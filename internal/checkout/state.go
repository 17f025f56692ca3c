package checkout

// SubmissionState is the form-level submission state machine:
//
//	Idle -> Validating -> Rejected -> Idle
//	Idle -> Validating -> Submitting -> Confirmed -> Idle
//
// Validating, Rejected and Confirmed are only held while the session lock is.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateRejected   SubmissionState = "rejected"
	StateSubmitting SubmissionState = "submitting"
	StateConfirmed  SubmissionState = "confirmed"
)
