// file: internals/features/finance/payments/service/payment_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"bimbelku_backend/internals/helpers/apperr"

	attendanceModel "bimbelku_backend/internals/features/school/attendance_sessions/model"
	paymentModel "bimbelku_backend/internals/features/finance/payments/model"
)

func TestRecordPaymentAccumulates(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	class := makeClass(t, db, nil)
	budi := makeEnrolledStudent(t, db, class.ClassID, "Budi", 0)
	sess := makeSession(t, db, class.ClassID, marchWednesdays[0])
	markAttendance(t, db, sess.AttendanceSessionID, budi.StudentID, attendanceModel.AttendanceStatusPresent)
	require.NoError(t, Reconcile(ctx, db, &sess))

	var payment paymentModel.PaymentModel
	require.NoError(t, db.Where("payment_student_id = ?", budi.StudentID).First(&payment).Error)
	require.EqualValues(t, 100000, payment.PaymentFinalAmount)

	p, err := RecordPayment(ctx, db, payment.PaymentID, PayInput{Amount: 60000, Method: "cash"})
	require.NoError(t, err)
	require.EqualValues(t, 60000, p.PaymentPaidAmount)
	require.Equal(t, paymentModel.PaymentStatusPartial, p.PaymentStatus)
	require.Len(t, []paymentModel.PaymentHistoryEntry(p.PaymentHistory), 1)

	p, err = RecordPayment(ctx, db, payment.PaymentID, PayInput{Amount: 40000, Method: "transfer", Note: "pelunasan"})
	require.NoError(t, err)
	require.EqualValues(t, 100000, p.PaymentPaidAmount)
	require.EqualValues(t, 0, p.PaymentRemainingAmount)
	require.Equal(t, paymentModel.PaymentStatusPaid, p.PaymentStatus)
	require.Len(t, []paymentModel.PaymentHistoryEntry(p.PaymentHistory), 2)
	require.Equal(t, "pelunasan", p.PaymentHistory[1].Note)
}

func TestRecordPaymentValidation(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	var valErr *apperr.ValidationError
	_, err := RecordPayment(ctx, db, uuid.New(), PayInput{Amount: 0, Method: "cash"})
	require.ErrorAs(t, err, &valErr)

	_, err = RecordPayment(ctx, db, uuid.New(), PayInput{Amount: -5000, Method: "cash"})
	require.ErrorAs(t, err, &valErr)

	var nfErr *apperr.NotFoundError
	_, err = RecordPayment(ctx, db, uuid.New(), PayInput{Amount: 10000, Method: "cash"})
	require.ErrorAs(t, err, &nfErr)
}
