// internal/domain/models/school.go
package models

// AI tool targets.
const (
	TargetStudents = "Students"
	TargetTeachers = "Teachers"
)

// Tool activity actions.
const (
	ActionAdded    = "Added"
	ActionRemoved  = "Removed"
	ActionEnabled  = "Enabled"
	ActionDisabled = "Disabled"
)

// AiTool is a named feature that can be switched on per target group.
// The name identifies the tool within its list.
type AiTool struct {
	Name    string `bson:"name" json:"name"`
	Enabled bool   `bson:"enabled" json:"enabled"`
}

// Principal is the head of a school.
type Principal struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// SchoolStats holds usage totals shown on the detail screen.
type SchoolStats struct {
	TotalStudents  int `bson:"total_students" json:"totalStudents"`
	TotalTeachers  int `bson:"total_teachers" json:"totalTeachers"`
	ActiveStudents int `bson:"active_students" json:"activeStudents"`
	ActiveTeachers int `bson:"active_teachers" json:"activeTeachers"`
}

// AiTools is the allocation of tools for one organization.
//
// Allocated is maintained alongside the two lists and is never
// recomputed from their lengths.
type AiTools struct {
	ForStudents []AiTool `bson:"for_students" json:"forStudents"`
	ForTeachers []AiTool `bson:"for_teachers" json:"forTeachers"`
	Allocated   int      `bson:"allocated" json:"allocated"`
}

// SchoolData is the organization detail aggregate.
type SchoolData struct {
	ID          int         `bson:"_id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Location    string      `bson:"location,omitempty" json:"location,omitempty"`
	Logo        string      `bson:"logo" json:"logo"`
	Affiliation string      `bson:"affiliation" json:"affiliation"`
	Email       string      `bson:"email" json:"email"`
	Contact     []string    `bson:"contact" json:"contact"`
	Principal   Principal   `bson:"principal" json:"principal"`
	Stats       SchoolStats `bson:"stats" json:"stats"`
	AiTools     AiTools     `bson:"ai_tools" json:"aiTools"`
	Status      string      `bson:"status" json:"status"` // Active | Inactive
}

// Clone returns a copy that shares no slices with s.
func (s SchoolData) Clone() SchoolData {
	out := s
	out.Contact = append([]string(nil), s.Contact...)
	out.AiTools.ForStudents = append([]AiTool(nil), s.AiTools.ForStudents...)
	out.AiTools.ForTeachers = append([]AiTool(nil), s.AiTools.ForTeachers...)
	return out
}

// RecentToolActivity records one change to an organization's tools.
type RecentToolActivity struct {
	Name      string `json:"name"`
	Target    string `json:"target"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
}
