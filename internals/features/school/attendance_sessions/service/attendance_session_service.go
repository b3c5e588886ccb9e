// file: internals/features/school/attendance_sessions/service/attendance_session_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/helpers/apperr"

	attendanceModel "bimbelku_backend/internals/features/school/attendance_sessions/model"
	classModel "bimbelku_backend/internals/features/school/classes/model"
	enrollModel "bimbelku_backend/internals/features/school/enrollments/model"
	reconService "bimbelku_backend/internals/features/finance/payments/service"
)

/* ======================================================
   AttendanceSession — roll-call per kelas per hari
====================================================== */

// DateOnly menormalkan ke tengah malam UTC (granularitas hari kalender).
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GetOrCreateToday mencari sesi (kelas, hari ini); kalau belum ada dibuat
// lazy, di-seed satu record "absent" per murid yang masih aktif.
func GetOrCreateToday(ctx context.Context, db *gorm.DB, classID uuid.UUID, now time.Time) (*attendanceModel.AttendanceSessionModel, bool, error) {
	var class classModel.ClassModel
	if err := db.WithContext(ctx).Where("class_id = ?", classID).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperr.NotFound("class", classID)
		}
		return nil, false, err
	}

	if !class.HasScheduleData() {
		return nil, false, apperr.Validation("schedule", "kelas belum punya data jadwal")
	}

	today := DateOnly(now)
	weekday := int(now.Weekday()) // 0=Minggu..6=Sabtu
	inSchedule := false
	for _, d := range class.ClassDayOfWeeks {
		if d == weekday {
			inSchedule = true
			break
		}
	}
	if !inSchedule {
		return nil, false, apperr.Validation("schedule", "hari ini bukan jadwal kelas")
	}
	if today.Before(DateOnly(class.ClassStartDate)) || today.After(DateOnly(class.ClassEndDate)) {
		return nil, false, apperr.Validation("schedule", "tanggal di luar periode kelas")
	}

	// Sudah ada?
	var existing attendanceModel.AttendanceSessionModel
	err := db.WithContext(ctx).
		Preload("AttendanceSessionRecords").
		Where("attendance_session_class_id = ?", classID).
		Where("attendance_session_date = ?", today).
		First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	// Buat + seed roster dalam satu transaksi.
	// Index unik (class, date) menangkal pembuatan ganda dari request balapan.
	var session attendanceModel.AttendanceSessionModel
	txErr := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session = attendanceModel.AttendanceSessionModel{
			AttendanceSessionClassID: classID,
			AttendanceSessionDate:    today,
		}
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		var enrollments []enrollModel.ClassEnrollmentModel
		if err := tx.
			Where("class_enrollment_class_id = ?", classID).
			Where("class_enrollment_status = ?", enrollModel.EnrollmentStatusActive).
			Order("class_enrollment_enrolled_at ASC").
			Find(&enrollments).Error; err != nil {
			return err
		}
		for _, enr := range enrollments {
			rec := attendanceModel.AttendanceRecordModel{
				AttendanceRecordSessionID: session.AttendanceSessionID,
				AttendanceRecordStudentID: enr.ClassEnrollmentStudentID,
				AttendanceRecordStatus:    attendanceModel.AttendanceStatusAbsent,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			session.AttendanceSessionRecords = append(session.AttendanceSessionRecords, rec)
		}
		return nil
	})
	if txErr != nil {
		// Kalah race pembuatan → ambil sesi yang menang
		var again attendanceModel.AttendanceSessionModel
		if err := db.WithContext(ctx).
			Preload("AttendanceSessionRecords").
			Where("attendance_session_class_id = ?", classID).
			Where("attendance_session_date = ?", today).
			First(&again).Error; err == nil {
			return &again, false, nil
		}
		return nil, false, txErr
	}

	return &session, true, nil
}

type UpdateEntry struct {
	StudentID uuid.UUID
	Status    attendanceModel.AttendanceStatus
	Note      *string
}

// UpdateSession menimpa status/note record yang studentID-nya terdaftar di
// sesi; entri untuk murid yang tidak ada di roster dilewati diam-diam
// (toleransi untuk state klien basi) — hanya dicatat di log.
// Setelah persist berhasil, rekonsiliasi tagihan murid + akrual pengajar
// dipicu di sini; kegagalannya hanya dicatat di log dan tidak pernah
// menggagalkan penulisan absensi yang sudah commit.
func UpdateSession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID, entries []UpdateEntry) (*attendanceModel.AttendanceSessionModel, error) {
	for _, e := range entries {
		if !e.Status.Valid() {
			return nil, apperr.Validation("status", "harus present/absent/late")
		}
	}

	var session attendanceModel.AttendanceSessionModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Preload("AttendanceSessionRecords").
			Where("attendance_session_id = ?", sessionID).
			First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("attendance_session", sessionID)
			}
			return err
		}

		rosterByStudent := make(map[uuid.UUID]*attendanceModel.AttendanceRecordModel, len(session.AttendanceSessionRecords))
		for i := range session.AttendanceSessionRecords {
			rec := &session.AttendanceSessionRecords[i]
			rosterByStudent[rec.AttendanceRecordStudentID] = rec
		}

		now := time.Now()
		skipped := 0
		for _, e := range entries {
			rec, ok := rosterByStudent[e.StudentID]
			if !ok {
				skipped++
				continue
			}
			rec.AttendanceRecordStatus = e.Status
			rec.AttendanceRecordNote = e.Note
			rec.AttendanceRecordCheckedAt = &now
			if err := tx.Save(rec).Error; err != nil {
				return err
			}
		}
		if skipped > 0 {
			log.Printf("[ATTENDANCE] session=%s: %d entri dilewati (murid tidak ada di roster)",
				sessionID, skipped)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := reconService.Reconcile(ctx, db, &session); err != nil {
		log.Printf("[RECONCILE ERROR] session=%s: %v", sessionID, err)
	}
	if err := reconService.ReconcileTeacher(ctx, db, &session); err != nil {
		log.Printf("[RECONCILE ERROR] teacher session=%s: %v", sessionID, err)
	}

	return &session, nil
}

// CompleteSession menandai sesi selesai. Hanya flag — updateSession
// berikutnya tetap diterima dan memicu rekonsiliasi ulang.
func CompleteSession(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*attendanceModel.AttendanceSessionModel, error) {
	var session attendanceModel.AttendanceSessionModel
	if err := db.WithContext(ctx).
		Where("attendance_session_id = ?", sessionID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("attendance_session", sessionID)
		}
		return nil, err
	}
	if session.AttendanceSessionIsCompleted {
		return nil, apperr.InvalidState("attendance_session", "completed", "complete")
	}
	session.AttendanceSessionIsCompleted = true
	if err := db.WithContext(ctx).Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetByID memuat sesi + roster.
func GetByID(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) (*attendanceModel.AttendanceSessionModel, error) {
	var session attendanceModel.AttendanceSessionModel
	if err := db.WithContext(ctx).
		Preload("AttendanceSessionRecords").
		Where("attendance_session_id = ?", sessionID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("attendance_session", sessionID)
		}
		return nil, err
	}
	return &session, nil
}
