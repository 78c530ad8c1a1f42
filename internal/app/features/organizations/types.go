// internal/app/features/organizations/types.go
package organizations

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/htmlsanitize"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

// institutionInput is the add and edit form body. Only the name is checked,
// and only when adding.
type institutionInput struct {
	Name     string `json:"name" validate:"required,notblank" label:"Name"`
	Address  string `json:"address"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Status   string `json:"status"`
}

// clean strips markup and surrounding space from every field. A status
// other than enabled or disabled is dropped.
func (in *institutionInput) clean() {
	in.Name = htmlsanitize.PlainText(in.Name)
	in.Address = htmlsanitize.PlainText(in.Address)
	in.District = htmlsanitize.PlainText(in.District)
	in.State = htmlsanitize.PlainText(in.State)
	in.Pincode = htmlsanitize.PlainText(in.Pincode)
	in.Status = knownStatus(htmlsanitize.PlainText(in.Status))
}

func knownStatus(s string) string {
	switch s = strings.ToLower(s); s {
	case models.StatusEnabled, models.StatusDisabled:
		return s
	}
	return ""
}

// apply copies the form onto inst. ID and Type are not editable, and an
// empty status keeps the current one.
func (in institutionInput) apply(inst models.Institution) models.Institution {
	inst.Name = in.Name
	inst.Address = in.Address
	inst.District = in.District
	inst.State = in.State
	inst.Pincode = in.Pincode
	if in.Status != "" {
		inst.Status = in.Status
	}
	return inst
}

func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

func flipStatus(i models.Institution) models.Institution {
	if i.Enabled() {
		i.Status = models.StatusDisabled
	} else {
		i.Status = models.StatusEnabled
	}
	return i
}
