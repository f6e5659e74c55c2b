// file: internals/features/finance/ledger/service/errors.go
package service

import (
	"errors"
	"fmt"
)

/* ===================== Kontrak error dari Store ===================== */

var (
	// ErrNotFound: baris tidak ditemukan (atau beda tenant).
	ErrNotFound = errors.New("record tidak ditemukan")
	// ErrDuplicate: bentrok unique constraint (dedupe key / receipt_no).
	ErrDuplicate = errors.New("duplicate key")
)

/* ===================== Taksonomi error ledger ===================== */
/* Dikembalikan apa adanya ke caller; controller yang memetakan ke HTTP.
   - ValidationError  → 400
   - ConflictError    → 409
   - NotFoundError    → 404
   - DependencyError  → 409 (delete ditolak Reconciliation Guard)
*/

type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type ConflictError struct{ Msg string }

func (e *ConflictError) Error() string { return e.Msg }

func NewConflictError(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

type NotFoundError struct{ Msg string }

func (e *NotFoundError) Error() string { return e.Msg }

func NewNotFoundError(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// DependencyError menyebut entitas dependen + jumlahnya supaya operator tahu
// kenapa delete ditolak.
type DependencyError struct {
	Msg       string
	Dependent string
	Count     int64
}

func (e *DependencyError) Error() string { return e.Msg }

func NewDependencyError(dependent string, count int64, format string, args ...any) error {
	return &DependencyError{
		Msg:       fmt.Sprintf(format, args...),
		Dependent: dependent,
		Count:     count,
	}
}

/* ===================== Pengecek (dipakai controller & test) ===================== */

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

func IsDependency(err error) bool {
	var de *DependencyError
	return errors.As(err, &de)
}
