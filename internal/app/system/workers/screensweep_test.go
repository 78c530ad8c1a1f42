package workers

import (
	"testing"
	"time"

	"github.com/myvedaai/Admin-Dashboard/internal/app/system/screens"
	"go.uber.org/zap"
)

func TestScreenSweep_DropsIdleScreens(t *testing.T) {
	reg := screens.New()
	if _, err := screens.Open(reg, "tok", "organizations", func() (int, error) { return 1, nil }); err != nil {
		t.Fatal(err)
	}

	w := NewScreenSweep(reg, zap.NewNop(), 5*time.Millisecond, 0)
	w.Start()
	defer w.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if reg.Len() == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("idle screen was never swept")
}
