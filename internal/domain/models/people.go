// internal/domain/models/people.go
package models

// MentalHealth is a student's latest wellbeing score.
type MentalHealth struct {
	Score       int    `bson:"score" json:"score"`
	LastUpdated string `bson:"last_updated" json:"lastUpdated"`
}

// Student is keyed by email.
type Student struct {
	Email           string       `bson:"_id" json:"email"`
	Name            string       `bson:"name" json:"name"`
	Grade           int          `bson:"grade" json:"grade"`
	Organization    string       `bson:"organization" json:"organization"`
	MentalHealth    MentalHealth `bson:"mental_health" json:"mentalHealth"`
	SessionDuration *int         `bson:"session_duration,omitempty" json:"sessionDuration,omitempty"` // minutes
	Active          bool         `bson:"active" json:"active"`
}

// Duration returns the session duration in minutes, treating a missing
// value as zero.
func (s Student) Duration() int {
	if s.SessionDuration == nil {
		return 0
	}
	return *s.SessionDuration
}

// Teacher is keyed by an integer id.
type Teacher struct {
	ID     int    `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Phone  string `bson:"phone" json:"phone"`
	Status string `bson:"status" json:"status"` // enabled | disabled
}

// Enabled reports whether the teacher is enabled.
func (t Teacher) Enabled() bool { return t.Status == StatusEnabled }
