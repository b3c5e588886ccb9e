// file: internals/features/school/classes/scheduler/lifecycle_scheduler.go
package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	classService "bimbelku_backend/internals/features/school/classes/service"
)

// StartClassLifecycleScheduler menjalankan sweep status kelas secara
// periodik (default tiap 24 jam, override via CLASS_LIFECYCLE_INTERVAL_HOURS).
func StartClassLifecycleScheduler(db *gorm.DB) {
	go func() {
		intervalHours := 24
		if val := os.Getenv("CLASS_LIFECYCLE_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		for {
			log.Println("[LIFECYCLE] Menjalankan sweep status kelas...")
			result := classService.RunLifecycleSweep(context.Background(), db, time.Now())
			log.Printf("[LIFECYCLE] selesai: activated=%d closed=%d failed=%d",
				result.Activated, result.Closed, result.Failed)

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
