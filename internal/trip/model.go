package trip

import "time"

// ParticipantStatus represents a participant's invitation state.
// Only accepted participants count toward the roster the expense
// engine validates against.
type ParticipantStatus string

const (
	ParticipantStatusInvited  ParticipantStatus = "invited"
	ParticipantStatusAccepted ParticipantStatus = "accepted"
)

// Trip represents one trip. Every expense and settlement in the trip
// shares its currency; conversion is out of scope.
type Trip struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// Participant represents one person on a trip. Identity is owned by
// the surrounding membership system; the engine only needs an opaque
// id and a display name.
type Participant struct {
	ID          int64             `json:"id"`
	TripID      int64             `json:"trip_id"`
	DisplayName string            `json:"display_name"`
	Status      ParticipantStatus `json:"status"`
	JoinedAt    time.Time         `json:"joined_at"`
}

// Roster is the set of accepted participants for one trip, keyed by id.
type Roster map[int64]*Participant

// Contains reports whether the participant id is on the roster.
func (r Roster) Contains(id int64) bool {
	_, ok := r[id]
	return ok
}
