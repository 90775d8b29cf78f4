package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientAllFieldsRequired             = "all fields are required"
	ErrClientEmailAlreadyRegistered        = "email already registered, please login"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientOnlyPatientsCanBook           = "only patients can book appointments"
	ErrClientOnlyDoctorsCanEditProfile     = "only doctors can edit a doctor profile"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientSlotRequired                  = "please select a time slot"
	ErrClientSlotAlreadyBooked             = "this time slot is already booked, please choose another"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevFailedToHashPassword     = "failed to hash password with bcrypt"
	ErrDevEmailAlreadyExists       = "email already exists in users collection"
	ErrDevInvalidCredentials       = "credentials do not match any user"
	ErrDevInvalidRoleType          = "role does not allow this operation"
	ErrDevDoctorProfileNotExists   = "no doctor profile for the given email"
	ErrDevSlotEmpty                = "slot is empty after trimming"
	ErrDevSlotTaken                = "booking already exists for doctor email and slot"
	ErrDevSlotLockNotAcquired      = "could not acquire booking lock for doctor email and slot"
	ErrDevAuthTokenMissing         = "authorization token is missing"
	ErrDevAuthTokenInvalid         = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken        = "failed to sign session JWT"
	ErrDevAuthInvalidSession       = "session not found or expired"
	ErrDevServerDeadlineExceeded   = "server process exceeded the given deadline"
	ErrDevServerProcess            = "unexpected server fault while processing request"
	ErrDevDBFailedToFindDocument   = "failed to find document(s) on mongo database"
	ErrDevDBFailedToInsertDocument = "failed to insert document on mongo database"
	ErrDevDBFailedToUpdateDocument = "failed to update document on mongo database"
	ErrDevDBFailedToIterateCursor  = "failed to iterate mongo cursor"
	ErrDevRedisGetData             = "failed to get data from redis"
	ErrDevRedisSetData             = "failed to set data to redis"
	ErrDevRedisDeleteData          = "failed to delete data from redis"
	ErrDevRedisStoreSession        = "failed to store session data to redis"
	ErrDevSMTPSendEmail            = "failed to send email through smtp host %s"
)
