package seed

// MonthlyUsage is one point of the dashboard usage trend.
type MonthlyUsage struct {
	Month    string `json:"month"`
	Students int    `json:"students"`
	Teachers int    `json:"teachers"`
}

// ToolShare is one slice of the AI tool usage breakdown.
type ToolShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// OrgUsage is one bar of the per-organization usage chart.
type OrgUsage struct {
	Name     string `json:"name"`
	Students int    `json:"students"`
	Teachers int    `json:"teachers"`
}

// DailyEngagement is one day of the weekly engagement chart.
type DailyEngagement struct {
	Day      string `json:"day"`
	Chats    int    `json:"chats"`
	Sessions int    `json:"sessions"`
}

// Requirement is a custom feature request count.
type Requirement struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// WeeklyActivity is one day of an organization's activity chart.
type WeeklyActivity struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func UsageTrends() []MonthlyUsage {
	return []MonthlyUsage{
		{"Oct", 1800, 320},
		{"Nov", 1950, 340},
		{"Dec", 2000, 350},
		{"Jan", 2100, 370},
		{"Feb", 2150, 385},
		{"Mar", 2200, 400},
	}
}

func ToolUsage() []ToolShare {
	return []ToolShare{
		{"AI Tutor", 42},
		{"Content Generator", 28},
		{"Quiz Creator", 16},
		{"Study Planner", 14},
	}
}

func OrgUsageData() []OrgUsage {
	return []OrgUsage{
		{"DPS Bokaro", 550, 100},
		{"Holy Cross", 450, 80},
		{"Coaching 1", 600, 120},
		{"Coaching 2", 400, 70},
		{"DYP College", 200, 30},
	}
}

func Engagement() []DailyEngagement {
	chats := []int{850, 940, 1020, 980, 1100, 700, 650}
	sessions := []int{420, 450, 480, 460, 510, 340, 310}
	out := make([]DailyEngagement, len(weekdays))
	for i, d := range weekdays {
		out[i] = DailyEngagement{Day: d, Chats: chats[i], Sessions: sessions[i]}
	}
	return out
}

// TopRequirements lists the most requested custom features.
func TopRequirements() []Requirement {
	return []Requirement{
		{"Enhanced AI Quiz Generator", 45},
		{"Personalized Study Plans", 32},
		{"Real-time Attendance Tracking", 28},
	}
}

func weekly(counts []int) []WeeklyActivity {
	out := make([]WeeklyActivity, len(weekdays))
	for i, d := range weekdays {
		out[i] = WeeklyActivity{Day: d, Count: counts[i]}
	}
	return out
}

// StudentActivity is the weekly student activity on the detail screen.
func StudentActivity() []WeeklyActivity {
	return weekly([]int{850, 920, 980, 940, 1000, 700, 650})
}

// TeacherActivity is the weekly teacher activity on the detail screen.
func TeacherActivity() []WeeklyActivity {
	return weekly([]int{45, 50, 55, 52, 58, 40, 38})
}
