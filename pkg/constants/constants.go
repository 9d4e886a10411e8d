package constants

const (
	CHANNEL_SIZE = 100 // buffered channel size for the chat hub

	MEMBER_ID_PREFIX = "PHSC" // club prefix on every member id
	MEMBER_ID_PERIOD = "2601" // intake period marker (YYMM)
	MEMBER_SEQ_MIN   = 1      // lowest member sequence number
	MEMBER_SEQ_MAX   = 999    // highest member sequence number

	DEFAULT_MEMBER_PASSWORD = "member123" // fallback when an admin creates a member without a password
	MIN_PASSWORD_LENGTH     = 8

	PROOF_MAX_SIZE = 5 * 1024 * 1024 // proof-of-payment upload cap (5 MiB)

	TOKEN_EXPIRY_HOURS = 24 // session token lifetime

	DEFAULT_CHAT_HISTORY_LIMIT = 100 // messages returned when no limit is given
)
