// file: internals/helpers/apperr/apperr.go
package apperr

import (
	"fmt"

	"github.com/google/uuid"
)

/* ===============================
   Taksonomi error domain
   (dipakai service → dimap ke HTTP oleh helper.JsonAppError)
=================================*/

type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s tidak ditemukan (id=%s)", e.Entity, e.ID)
}

func NotFound(entity string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

type DuplicateError struct {
	Entity string
	Key    string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s sudah ada (%s)", e.Entity, e.Key)
}

func Duplicate(entity, key string) *DuplicateError {
	return &DuplicateError{Entity: entity, Key: key}
}

type CapacityExceededError struct {
	ClassID   uuid.UUID
	Requested int
	Available int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("kapasitas kelas %s penuh: diminta %d, sisa slot %d",
		e.ClassID, e.Requested, e.Available)
}

func CapacityExceeded(classID uuid.UUID, requested, available int) *CapacityExceededError {
	return &CapacityExceededError{ClassID: classID, Requested: requested, Available: available}
}

type ScheduleConflictError struct {
	StudentID          uuid.UUID
	ConflictingClassID uuid.UUID
	Detail             string
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("jadwal murid %s bentrok dengan kelas %s: %s",
		e.StudentID, e.ConflictingClassID, e.Detail)
}

func ScheduleConflict(studentID, classID uuid.UUID, detail string) *ScheduleConflictError {
	return &ScheduleConflictError{StudentID: studentID, ConflictingClassID: classID, Detail: detail}
}

type InvalidStateError struct {
	Entity       string
	CurrentState string
	AttemptedOp  string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s berstatus %s, tidak bisa %s", e.Entity, e.CurrentState, e.AttemptedOp)
}

func InvalidState(entity, currentState, attemptedOp string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, CurrentState: currentState, AttemptedOp: attemptedOp}
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
