package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "TLMD_SVC_"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	MongoCollectionUsers    = "users"
	MongoCollectionDoctors  = "doctors"
	MongoCollectionBookings = "bookings"
)

const (
	BookingStatusConfirmed = "confirmed"

	// Layout of Booking.CreatedAt; the timestamp is informational only.
	BookingCreatedAtLayout = "2006-01-02 15:04"

	BookingLockKeyFormat = "booking-lock:%s:%s"

	SessionKeyFormat = "session:%s"
)

const (
	MeetingRoomNameFormat = "consult-%s"
	MeetingLinkFormat     = "https://meet.jit.si/%s"
)

// Message severities rendered by the presentation layer.
const (
	SeveritySuccess = "success"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)
