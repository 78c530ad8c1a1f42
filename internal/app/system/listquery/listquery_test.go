package listquery_test

import (
	"testing"

	"github.com/myvedaai/Admin-Dashboard/internal/app/store/seed"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/listquery"
	"github.com/myvedaai/Admin-Dashboard/internal/domain/models"
)

func institutionPipeline() *listquery.Pipeline[models.Institution] {
	return &listquery.Pipeline[models.Institution]{
		Search: []func(models.Institution) string{
			func(i models.Institution) string { return i.Name },
			func(i models.Institution) string { return i.Address },
			func(i models.Institution) string { return i.District },
			func(i models.Institution) string { return i.State },
			func(i models.Institution) string { return i.Pincode },
		},
		Enabled: models.Institution.Enabled,
		Ranges: map[string]listquery.RangeFilter[models.Institution]{
			"type": {Bands: []listquery.Band[models.Institution]{
				{Name: models.TypeSchool, Match: func(i models.Institution) bool { return i.Type == models.TypeSchool }},
				{Name: models.TypeCoaching, Match: func(i models.Institution) bool { return i.Type == models.TypeCoaching }},
			}},
		},
		Fields: map[string]listquery.Field[models.Institution]{
			"name":     {Compare: listquery.ByText(func(i models.Institution) string { return i.Name })},
			"district": {Compare: listquery.ByText(func(i models.Institution) string { return i.District })},
		},
	}
}

func names(items []models.Institution) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestApply_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	p := institutionPipeline()
	all := seed.Institutions()

	tests := []struct {
		name   string
		search string
		tab    string
		want   int
	}{
		{"bokaro matches every seeded district", "bokaro", "", 9},
		{"upper case query", "BOKARO", "", 9},
		{"schools tab", "bokaro", models.TypeSchool, 7},
		{"coaching tab", "bokaro", models.TypeCoaching, 2},
		{"pincode", "827006", "", 2},
		{"address", "sector 2", "", 2},
		{"no match", "zzz", "", 0},
		{"empty search", "", "", 9},
		{"whitespace search", "   ", "", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := listquery.Criteria{Search: tt.search, Status: listquery.StatusAll}
			if tt.tab != "" {
				c.Ranges = map[string]string{"type": tt.tab}
			}
			got := p.Apply(all, c)
			if len(got) != tt.want {
				t.Errorf("Apply(%q, tab=%q) returned %d, want %d: %v", tt.search, tt.tab, len(got), tt.want, names(got))
			}
		})
	}
}

func TestApply_StatusFilter(t *testing.T) {
	p := institutionPipeline()
	all := seed.Institutions()
	all[2].Status = models.StatusDisabled

	tests := []struct {
		status string
		want   int
	}{
		{listquery.StatusAll, 9},
		{listquery.StatusEnabled, 8},
		{listquery.StatusDisabled, 1},
		{"", 9},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := p.Apply(all, listquery.Criteria{Status: tt.status})
			if len(got) != tt.want {
				t.Errorf("Apply(status=%q) = %d, want %d", tt.status, len(got), tt.want)
			}
		})
	}
}

func TestApply_SortToggleReverses(t *testing.T) {
	p := institutionPipeline()
	items := []models.Institution{{ID: 1, Name: "Bansal Classes"}, {ID: 2, Name: "DPS Bokaro"}}

	var s listquery.SortState
	s = s.Toggle("name", p.InitialDirection("name"))
	got := names(p.Apply(items, listquery.Criteria{Sort: s}))
	if got[0] != "Bansal Classes" || got[1] != "DPS Bokaro" {
		t.Errorf("first click = %v, want ascending", got)
	}

	s = s.Toggle("name", p.InitialDirection("name"))
	got = names(p.Apply(items, listquery.Criteria{Sort: s}))
	if got[0] != "DPS Bokaro" || got[1] != "Bansal Classes" {
		t.Errorf("second click = %v, want descending", got)
	}
}

func TestSortState_NewFieldResetsToInitial(t *testing.T) {
	s := listquery.SortState{Field: "name", Dir: listquery.Desc}
	got := s.Toggle("district", listquery.Asc)
	if got.Field != "district" || got.Dir != listquery.Asc {
		t.Errorf("Toggle(district) = %+v, want district asc", got)
	}
	got = s.Select("name", listquery.Asc)
	if got.Dir != listquery.Asc {
		t.Errorf("Select(name) = %+v, want asc", got)
	}
}

func TestApply_StableSortKeepsSourceOrderForTies(t *testing.T) {
	p := institutionPipeline()
	all := seed.Institutions()

	for _, dir := range []listquery.Direction{listquery.Asc, listquery.Desc} {
		got := p.Apply(all, listquery.Criteria{Sort: listquery.SortState{Field: "district", Dir: dir}})
		for i := range got {
			if got[i].ID != all[i].ID {
				t.Fatalf("dir %v: position %d has id %d, want %d", dir, i, got[i].ID, all[i].ID)
			}
		}
	}
}

func TestApply_NoSortKeepsSourceOrder(t *testing.T) {
	p := institutionPipeline()
	all := seed.Institutions()
	got := p.Apply(all, listquery.Criteria{})
	for i := range got {
		if got[i].ID != all[i].ID {
			t.Fatalf("position %d has id %d, want %d", i, got[i].ID, all[i].ID)
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	p := institutionPipeline()
	all := seed.Institutions()
	_ = p.Apply(all, listquery.Criteria{Sort: listquery.SortState{Field: "name", Dir: listquery.Desc}})
	if all[0].Name != "DPS Bokaro" {
		t.Errorf("input reordered: first = %q", all[0].Name)
	}
}

func TestValidBand(t *testing.T) {
	p := institutionPipeline()
	tests := []struct {
		filter, band string
		want         bool
	}{
		{"type", "school", true},
		{"type", "all", true},
		{"type", "", true},
		{"type", "college", false},
		{"grade", "1-4", false},
	}
	for _, tt := range tests {
		if got := p.ValidBand(tt.filter, tt.band); got != tt.want {
			t.Errorf("ValidBand(%q, %q) = %v, want %v", tt.filter, tt.band, got, tt.want)
		}
	}
}

func TestDirection_JSON(t *testing.T) {
	var d listquery.Direction
	if err := d.UnmarshalJSON([]byte(`"desc"`)); err != nil || d != listquery.Desc {
		t.Errorf("UnmarshalJSON(desc) = %v, %v", d, err)
	}
	if err := d.UnmarshalJSON([]byte(`"sideways"`)); err == nil {
		t.Error("UnmarshalJSON(sideways) succeeded, want error")
	}
}
