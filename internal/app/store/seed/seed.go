// Package seed holds the console's initial data set. The memory backend
// starts from these values on every boot; the Mongo backend inserts them
// into empty collections.
package seed

import (
	"fmt"

	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	bokaro    = "Bokaro Steel City"
	jharkhand = "Jharkhand"
)

// Institutions returns the nine seeded institutions, seven schools followed
// by two coaching centers.
func Institutions() []models.Institution {
	inst := func(id int, name, address, pincode, typ string) models.Institution {
		return models.Institution{
			ID:       id,
			Name:     name,
			Address:  address,
			District: bokaro,
			State:    jharkhand,
			Pincode:  pincode,
			Status:   models.StatusEnabled,
			Type:     typ,
		}
	}
	return []models.Institution{
		inst(1, "DPS Bokaro", "Sector 4", "827004", models.TypeSchool),
		inst(2, "St. Xavier's School", "Sector 1", "827001", models.TypeSchool),
		inst(3, "Chinmaya Vidyalaya", "Sector 5", "827006", models.TypeSchool),
		inst(4, "Holy Cross School", "Sector 3", "827003", models.TypeSchool),
		inst(5, "DAV Public School", "Sector 6", "827006", models.TypeSchool),
		inst(6, "Kendriya Vidyalaya", "Sector 2", "827002", models.TypeSchool),
		inst(7, "Sacred Heart School", "Sector 8", "827008", models.TypeSchool),
		inst(8, "Bansal Classes", "Sector 2", "827002", models.TypeCoaching),
		inst(9, "Aakash Institute", "Sector 4", "827004", models.TypeCoaching),
	}
}

// SampleSchool is the detail aggregate every organization starts from.
func SampleSchool() models.SchoolData {
	return models.SchoolData{
		ID:          1,
		Name:        "DPS Bokaro",
		Location:    "Sector 4, Bokaro Steel City, Jharkhand 827004",
		Logo:        "/images/logo.png",
		Affiliation: "CBSE",
		Email:       "dpsbokaro123@dps.ac.in",
		Contact:     []string{"7896485789", "7964852136"},
		Principal:   models.Principal{Name: "Dr. P ShamRaju", Phone: "7587964878", Image: "/images/abhi.jpg"},
		Stats: models.SchoolStats{
			TotalStudents:  2000,
			TotalTeachers:  75,
			ActiveStudents: 1100,
			ActiveTeachers: 60,
		},
		AiTools: models.AiTools{
			ForStudents: []models.AiTool{{Name: "Quiz Generator", Enabled: true}, {Name: "Study Planner", Enabled: true}},
			ForTeachers: []models.AiTool{{Name: "Attendance Tracker", Enabled: true}, {Name: "Grade Analyzer", Enabled: true}},
			Allocated:   4,
		},
		Status: "Active",
	}
}

// SchoolFor derives a detail aggregate for an institution that has none yet,
// using the sample data with the institution's identity and address.
func SchoolFor(inst models.Institution) models.SchoolData {
	s := SampleSchool()
	s.ID = inst.ID
	s.Name = inst.Name
	s.Location = fmt.Sprintf("%s, %s, %s %s", inst.Address, inst.District, inst.State, inst.Pincode)
	if inst.Status != models.StatusEnabled {
		s.Status = "Inactive"
	}
	return s
}

// Schools returns the seeded detail aggregates.
func Schools() []models.SchoolData {
	return []models.SchoolData{SampleSchool()}
}

func minutes(m int) *int { return &m }

// Students returns the seeded student roster.
func Students() []models.Student {
	st := func(name, email string, grade, score int, date string, dur *int, active bool) models.Student {
		return models.Student{
			Email:           email,
			Name:            name,
			Grade:           grade,
			Organization:    "org123",
			MentalHealth:    models.MentalHealth{Score: score, LastUpdated: date},
			SessionDuration: dur,
			Active:          active,
		}
	}
	return []models.Student{
		st("John Doe", "johndoe1234@gmail.com", 8, 35, "2025-03-10", minutes(15), true),
		st("Jane Smith", "janesmith@gmail.com", 9, 92, "2025-03-15", minutes(45), true),
		st("Alice Johnson", "alicej@gmail.com", 7, 95, "2025-03-12", minutes(30), true),
		st("Bob Brown", "bobbrown@gmail.com", 8, 88, "2025-02-01", minutes(10), false),
		st("Charlie Davis", "charlied@gmail.com", 10, 49, "2025-03-16", minutes(20), true),
		st("Diana Evans", "dianae@gmail.com", 8, 95, "2025-03-14", minutes(35), true),
	}
}

// Teachers returns the seeded teacher roster.
func Teachers() []models.Teacher {
	return []models.Teacher{
		{ID: 1, Name: "Emma Wilson", Email: "emmaw@gmail.com", Phone: "9696969696", Status: models.StatusEnabled},
		{ID: 2, Name: "Frank Harris", Email: "frankh@gmail.com", Phone: "9696969697", Status: models.StatusEnabled},
		{ID: 3, Name: "Grace Lee", Email: "gracel@gmail.com", Phone: "9696969698", Status: models.StatusDisabled},
		{ID: 4, Name: "Henry Clark", Email: "henryc@gmail.com", Phone: "9696969699", Status: models.StatusEnabled},
		{ID: 5, Name: "Isabella Lewis", Email: "isabellal@gmail.com", Phone: "9696969700", Status: models.StatusEnabled},
	}
}

// Credential is a seeded login before hashing.
type Credential struct {
	ID       string
	Email    string
	Password string
	Name     string
	Role     string
}

// Credentials lists the seeded console operators.
func Credentials() []Credential {
	return []Credential{
		{ID: "1", Email: "abhi@gmail.com", Password: "abhishek@1234", Name: "Admin User", Role: models.RoleAdmin},
		{ID: "2", Email: "manager@example.com", Password: "manager123", Name: "Manager User", Role: models.RoleManager},
	}
}

// Users hashes the seeded credentials with the given bcrypt cost.
func Users(cost int) ([]models.User, error) {
	creds := Credentials()
	out := make([]models.User, 0, len(creds))
	for _, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash seed user %s: %w", c.Email, err)
		}
		out = append(out, models.User{
			ID:           c.ID,
			Email:        c.Email,
			PasswordHash: string(hash),
			Name:         c.Name,
			Role:         c.Role,
		})
	}
	return out, nil
}
