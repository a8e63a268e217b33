package models

// Rejection codes returned alongside vote errors so clients can tell a
// policy rejection apart from a server failure.
const (
	CodeRoundClosed   = "round_closed"
	CodeInvalidValue  = "invalid_value"
	CodeDuplicateVote = "duplicate_vote"
)

// Request types

type SubmitVoteRequest struct {
	UserID string `json:"user_id"`
	// Raw client-supplied value; parsed server-side so unparseable input
	// gets a structured invalid_value rejection instead of a JSON error.
	VoteValue string `json:"vote_value"`
}

// Response types

type StatusResponse struct {
	Status string `json:"status"`
}

type VotingStatusResponse struct {
	VotingOpen bool `json:"voting_open"`
}

type VoteCountResponse struct {
	Count int `json:"count"`
}

type CloseRoundResponse struct {
	Status string    `json:"status"`
	Avg    *float64  `json:"avg"`
	Sdev   *float64  `json:"sdev"`
	Median *float64  `json:"median"`
	Votes  []float64 `json:"votes"`
}

type HistoryResponse struct {
	Count      int     `json:"count"`
	LastRounds []Round `json:"last_rounds"`
}

type DuplicateCheckResponse struct {
	Enabled bool   `json:"enabled"`
	Status  string `json:"status,omitempty"`
}

// Domain types

// Round is one completed voting round. Votes and Users have equal length and
// share ordering: Users[i] is the dense index of the voter who cast Votes[i].
type Round struct {
	Timestamp string    `json:"timestamp"`
	Avg       float64   `json:"avg"`
	Sdev      float64   `json:"sdev"`
	Median    float64   `json:"median"`
	Votes     []float64 `json:"votes"`
	Users     []int     `json:"users"`
}

// Vote is a single ledger entry of the currently open round.
type Vote struct {
	Value     float64 `json:"value"`
	UserIndex int     `json:"user_index"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
