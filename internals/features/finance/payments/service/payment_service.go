// file: internals/features/finance/payments/service/payment_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/helpers/apperr"

	paymentModel "bimbelku_backend/internals/features/finance/payments/model"
	teacherPaymentModel "bimbelku_backend/internals/features/finance/teacher_payments/model"
)

/* ======================================================
   Pencatatan pembayaran manual (kasir/admin)
   History append-only; paid_amount terakumulasi; kolom
   turunan lain tetap hasil hitung ulang.
====================================================== */

type PayInput struct {
	Amount int64
	Date   *time.Time
	Method string
	Note   string
}

// RecordPayment menambahkan pembayaran ke tagihan murid.
func RecordPayment(ctx context.Context, db *gorm.DB, paymentID uuid.UUID, in PayInput) (*paymentModel.PaymentModel, error) {
	if in.Amount <= 0 {
		return nil, apperr.Validation("amount", "harus > 0")
	}

	var payment paymentModel.PaymentModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("payment_id = ?", paymentID).
			First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("payment", paymentID)
			}
			return err
		}

		paidAt := time.Now()
		if in.Date != nil {
			paidAt = *in.Date
		}
		payment.PaymentHistory = append(payment.PaymentHistory, paymentModel.PaymentHistoryEntry{
			Amount: in.Amount,
			Date:   paidAt,
			Method: in.Method,
			Note:   in.Note,
		})
		payment.PaymentPaidAmount += in.Amount
		ComputePaymentAmounts(&payment)

		return tx.Save(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// RecordTeacherPayment menambahkan pembayaran ke akrual gaji pengajar.
func RecordTeacherPayment(ctx context.Context, db *gorm.DB, teacherPaymentID uuid.UUID, in PayInput) (*teacherPaymentModel.TeacherPaymentModel, error) {
	if in.Amount <= 0 {
		return nil, apperr.Validation("amount", "harus > 0")
	}

	var tp teacherPaymentModel.TeacherPaymentModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("teacher_payment_id = ?", teacherPaymentID).
			First(&tp).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("teacher_payment", teacherPaymentID)
			}
			return err
		}

		paidAt := time.Now()
		if in.Date != nil {
			paidAt = *in.Date
		}
		tp.TeacherPaymentHistory = append(tp.TeacherPaymentHistory, paymentModel.PaymentHistoryEntry{
			Amount: in.Amount,
			Date:   paidAt,
			Method: in.Method,
			Note:   in.Note,
		})
		tp.TeacherPaymentPaidAmount += in.Amount
		ComputeTeacherPaymentAmounts(&tp)

		return tx.Save(&tp).Error
	})
	if err != nil {
		return nil, err
	}
	return &tp, nil
}
