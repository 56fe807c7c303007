package infra

import (
	"errors"
	"log/slog"

	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"
	"github.com/zhangwenhan0216/reservation/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind   RepositoryErrorKind
	msg    string
	detail string
	err    error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Detail is the server's DETAIL text, set for constraint violations.
func (e RepositoryError) Detail() string {
	return e.detail
}

// WrapRepoErr classifies err and wraps it with msg. An explicit kind, when
// given, overrides the classification.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	var detail string

	switch {
	case err == nil:
	case pgconv.IsNoRows(err):
		k = KindNotFound
	default:
		if pgErr, ok := pgconv.AsPgError(err); ok {
			k = ClassifyPgError(pgErr.Code, pgErr.SchemaName, pgErr.TableName)
			detail = pgErr.Detail
		}
	}
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}
	if k == KindNotFound {
		slog.Debug("Repository error: "+msg, logArgs...)
	} else {
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, detail: detail, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsRepoErr reports whether err's chain holds a RepositoryError.
func IsRepoErr(err error) bool {
	var e RepositoryError
	return errors.As(err, &e)
}

// DetailOf returns the DETAIL text carried by a RepositoryError in err's chain.
func DetailOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.detail
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolation RepositoryErrorKind = "EXCLUSION_VIOLATION"
	KindInvalidInput       RepositoryErrorKind = "INVALID_INPUT"
)

const (
	ReservationSchema = "rsvp"
	ReservationTable  = "reservations"
)

// SQLSTATE codes handled by ClassifyPgError.
const (
	codeExclusionViolation = "23P01"
	codeUniqueViolation    = "23505"
	codeForeignKey         = "23503"
	codeInvalidText        = "22P02"
	codeInvalidDatetime    = "22007"
	codeDatetimeOverflow   = "22008"
)

// ClassifyPgError maps a server error's identity to a kind. Only an exclusion
// violation raised by rsvp.reservations counts as a reservation conflict.
func ClassifyPgError(code, schema, table string) RepositoryErrorKind {
	switch code {
	case codeExclusionViolation:
		if schema == ReservationSchema && table == ReservationTable {
			return KindExclusionViolation
		}
		return KindDBFailure
	case codeUniqueViolation:
		return KindDuplicateKey
	case codeForeignKey:
		return KindForeignKeyViolated
	case codeInvalidText, codeInvalidDatetime, codeDatetimeOverflow:
		return KindInvalidInput
	default:
		return KindDBFailure
	}
}
