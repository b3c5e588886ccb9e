// file: internals/features/school/classes/service/class_lifecycle_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "bimbelku_backend/internals/features/school/classes/model"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
)

/* ======================================================
   ClassLifecycleScheduler — sweep harian status kelas
   upcoming → active (start_date tiba)
   active   → closed (end_date lewat) + cascade enrollment
   Idempoten: transisi selalu cek status saat ini dulu.
====================================================== */

type SweepResult struct {
	Activated int `json:"activated"`
	Closed    int `json:"closed"`
	Failed    int `json:"failed"`
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RunLifecycleSweep memproses tiap kelas secara independen: kegagalan satu
// kelas dicatat dan tidak memblokir yang lain.
func RunLifecycleSweep(ctx context.Context, db *gorm.DB, now time.Time) SweepResult {
	today := dateOnly(now)
	var result SweepResult

	// upcoming → active
	var upcoming []classModel.ClassModel
	if err := db.WithContext(ctx).
		Where("class_status = ?", classModel.ClassStatusUpcoming).
		Find(&upcoming).Error; err != nil {
		log.Printf("[LIFECYCLE ERROR] gagal ambil kelas upcoming: %v", err)
		return result
	}
	for i := range upcoming {
		c := &upcoming[i]
		if dateOnly(c.ClassStartDate).After(today) {
			continue
		}
		if err := db.WithContext(ctx).
			Model(&classModel.ClassModel{}).
			Where("class_id = ?", c.ClassID).
			Where("class_status = ?", classModel.ClassStatusUpcoming).
			Update("class_status", classModel.ClassStatusActive).Error; err != nil {
			log.Printf("[LIFECYCLE ERROR] aktivasi kelas %s: %v", c.ClassID, err)
			result.Failed++
			continue
		}
		result.Activated++
	}

	// active → closed (+ cascade)
	var active []classModel.ClassModel
	if err := db.WithContext(ctx).
		Where("class_status = ?", classModel.ClassStatusActive).
		Find(&active).Error; err != nil {
		log.Printf("[LIFECYCLE ERROR] gagal ambil kelas active: %v", err)
		return result
	}
	for i := range active {
		c := &active[i]
		if !dateOnly(c.ClassEndDate).Before(today) {
			continue
		}
		if err := CloseClass(ctx, db, c); err != nil {
			log.Printf("[LIFECYCLE ERROR] penutupan kelas %s: %v", c.ClassID, err)
			result.Failed++
			continue
		}
		result.Closed++
	}

	return result
}

// CloseClass menutup kelas dan meng-cascade enrollment aktifnya ke completed,
// dalam satu transaksi. Cascade eksplisit — bukan efek samping hook save.
// Berlaku untuk kelas berstatus apa pun: kelas upcoming boleh punya
// enrollment aktif, jadi penutupan dari upcoming pun wajib cascade.
func CloseClass(ctx context.Context, db *gorm.DB, c *classModel.ClassModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := CascadeClassClosure(tx, c.ClassID); err != nil {
			return err
		}
		return tx.Model(&classModel.ClassModel{}).
			Where("class_id = ?", c.ClassID).
			Where("class_status <> ?", classModel.ClassStatusClosed).
			Update("class_status", classModel.ClassStatusClosed).Error
	})
}

// CascadeClassClosure menandai semua enrollment aktif kelas ini completed.
func CascadeClassClosure(tx *gorm.DB, classID uuid.UUID) error {
	return tx.Model(&enrollModel.ClassEnrollmentModel{}).
		Where("class_enrollment_class_id = ?", classID).
		Where("class_enrollment_status = ?", enrollModel.EnrollmentStatusActive).
		Update("class_enrollment_status", enrollModel.EnrollmentStatusCompleted).Error
}
