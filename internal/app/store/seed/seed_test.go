package seed

import (
	"testing"

	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
	"golang.org/x/crypto/bcrypt"
)

func TestInstitutions_SplitByType(t *testing.T) {
	var schools, coaching int
	for _, i := range Institutions() {
		switch i.Type {
		case models.TypeSchool:
			schools++
		case models.TypeCoaching:
			coaching++
		default:
			t.Errorf("institution %d has unknown type %q", i.ID, i.Type)
		}
		if i.District != "Bokaro Steel City" {
			t.Errorf("institution %d district = %q", i.ID, i.District)
		}
	}
	if schools != 7 || coaching != 2 {
		t.Errorf("schools/coaching = %d/%d, want 7/2", schools, coaching)
	}
}

func TestSampleSchool_AllocatedMatchesLists(t *testing.T) {
	s := SampleSchool()
	if got := len(s.AiTools.ForStudents) + len(s.AiTools.ForTeachers); got != s.AiTools.Allocated {
		t.Errorf("allocated = %d, lists hold %d", s.AiTools.Allocated, got)
	}
}

func TestSchoolFor(t *testing.T) {
	inst := Institutions()[7]
	s := SchoolFor(inst)
	if s.ID != 8 || s.Name != "Bansal Classes" {
		t.Errorf("SchoolFor() = %d %q", s.ID, s.Name)
	}
	if s.Location != "Sector 2, Bokaro Steel City, Jharkhand 827002" {
		t.Errorf("Location = %q", s.Location)
	}
}

func TestUsers_HashesPasswords(t *testing.T) {
	users, err := Users(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	creds := Credentials()
	for i, u := range users {
		if u.PasswordHash == creds[i].Password {
			t.Errorf("user %s stored a plain password", u.Email)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds[i].Password)); err != nil {
			t.Errorf("user %s hash does not match: %v", u.Email, err)
		}
	}
}

func TestStudents_MissingDurationIsZero(t *testing.T) {
	s := models.Student{}
	if s.Duration() != 0 {
		t.Errorf("Duration() = %d, want 0", s.Duration())
	}
	if got := Students()[1].Duration(); got != 45 {
		t.Errorf("Jane Smith duration = %d, want 45", got)
	}
}
