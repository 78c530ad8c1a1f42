// internal/domain/models/organization.go
package models

// Institution status values.
const (
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
)

// Institution types, one per organizations tab.
const (
	TypeSchool   = "school"
	TypeCoaching = "coaching"
)

// Institution is a school or coaching center listed on the organizations screen.
type Institution struct {
	ID       int    `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Address  string `bson:"address" json:"address"`
	District string `bson:"district" json:"district"`
	State    string `bson:"state" json:"state"`
	Pincode  string `bson:"pincode" json:"pincode"`
	Status   string `bson:"status" json:"status"` // enabled | disabled
	Type     string `bson:"type" json:"type"`     // school | coaching
}

// Enabled reports whether the institution is enabled.
func (i Institution) Enabled() bool { return i.Status == StatusEnabled }

// ValidInstitutionType reports whether t names an organizations tab.
func ValidInstitutionType(t string) bool {
	return t == TypeSchool || t == TypeCoaching
}
