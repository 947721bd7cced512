package exams

// Status is the closed set of exam request states. A request starts
// Pending; Approved, Rejected and Cancelled are terminal.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

// legacyConfirmed is still sent by older clients and maps to Approved.
const legacyConfirmed = "Confirmed"

// ParseStatus validates a raw status string against the closed set,
// folding the legacy "Confirmed" alias into Approved.
func ParseStatus(raw string) (Status, error) {
	switch raw {
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusApproved), legacyConfirmed:
		return StatusApproved, nil
	case string(StatusRejected):
		return StatusRejected, nil
	case string(StatusCancelled):
		return StatusCancelled, nil
	case "":
		return "", ErrMissingStatus
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// IsConfirmed reports whether a stored status counts as a confirmed
// exam, accepting both the enum value and the legacy alias.
func IsConfirmed(raw string) bool {
	return raw == string(StatusApproved) || raw == legacyConfirmed
}
