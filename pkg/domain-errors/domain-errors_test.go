package domainerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// Justification: these are the primitives every lookup failure flows through.
// Unit tests ensure invariants like "wrapped domain errors preserve original code"
// and "errors.Is matches by code" are maintained.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeUnknownCredentialType, Message: "no schema registered"}
		s.Equal("no schema registered", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeUnknownCredentialType}
		s.Equal("unknown_credential_type", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("table out of sync")
		err := &Error{Code: CodeInvariantViolation, Message: "registry inconsistent", Err: inner}
		s.Equal(inner, err.Unwrap())
	})

	s.Run("returns nil when no wrapped error", func() {
		err := &Error{Code: CodeUnknownReasonName, Message: "no code registered"}
		s.Nil(err.Unwrap())
	})

	s.Run("works with errors.Unwrap", func() {
		inner := errors.New("root cause")
		err := &Error{Code: CodeInvariantViolation, Err: inner}
		s.Equal(inner, errors.Unwrap(err))
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeUnknownReasonName, Message: "reason Bogus"}
		err2 := &Error{Code: CodeUnknownReasonName, Message: "reason Phony"}
		s.True(err1.Is(err2))
	})

	s.Run("does not match different codes", func() {
		err1 := &Error{Code: CodeUnknownReasonName}
		err2 := &Error{Code: CodeUnknownCredentialType}
		s.False(err1.Is(err2))
	})

	s.Run("does not match non-domain errors", func() {
		err1 := &Error{Code: CodeUnknownReasonName}
		err2 := errors.New("unknown_reason_name")
		s.False(err1.Is(err2))
	})

	s.Run("works with errors.Is through chain", func() {
		inner := &Error{Code: CodeUnknownCredentialType, Message: "original"}
		wrapped := &Error{Code: CodeInvariantViolation, Message: "wrapped", Err: inner}
		target := &Error{Code: CodeUnknownCredentialType}

		// errors.Is should find the inner error through the chain
		s.True(errors.Is(wrapped, target))
	})
}

func (s *DomainErrorsSuite) TestNew() {
	s.Run("creates error with code and message", func() {
		err := New(CodeUnknownCredentialType, "no schema registered")
		s.Require().NotNil(err)

		var domainErr *Error
		s.Require().True(errors.As(err, &domainErr))
		s.Equal(CodeUnknownCredentialType, domainErr.Code)
		s.Equal("no schema registered", domainErr.Message)
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves original domain code when wrapping domain error", func() {
		original := New(CodeUnknownReasonName, "no code registered")
		wrapped := Wrap(original, CodeInvariantViolation, "validation failed")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		// Should preserve CodeUnknownReasonName, not CodeInvariantViolation
		s.Equal(CodeUnknownReasonName, domainErr.Code)
		s.Equal("validation failed", domainErr.Message)
	})

	s.Run("uses provided code when wrapping non-domain error", func() {
		original := errors.New("descriptor without code")
		wrapped := Wrap(original, CodeInvariantViolation, "registry inconsistent")

		var domainErr *Error
		s.Require().True(errors.As(wrapped, &domainErr))
		s.Equal(CodeInvariantViolation, domainErr.Code)
		s.Equal("registry inconsistent", domainErr.Message)
	})

	s.Run("wrapped error is accessible via Unwrap", func() {
		original := errors.New("root cause")
		wrapped := Wrap(original, CodeInvariantViolation, "registry inconsistent")

		s.True(errors.Is(wrapped, original))
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.Run("returns true for matching code", func() {
		err := New(CodeUnknownReasonName, "no code registered")
		s.True(HasCode(err, CodeUnknownReasonName))
	})

	s.Run("returns false for non-matching code", func() {
		err := New(CodeUnknownReasonName, "no code registered")
		s.False(HasCode(err, CodeUnknownCredentialType))
	})

	s.Run("returns false for non-domain error", func() {
		err := errors.New("regular error")
		s.False(HasCode(err, CodeUnknownReasonName))
	})

	s.Run("finds code through error chain", func() {
		inner := New(CodeUnknownCredentialType, "original")
		wrapped := Wrap(inner, CodeInvariantViolation, "wrapped")
		// HasCode should find the preserved original code
		s.True(HasCode(wrapped, CodeUnknownCredentialType))
	})

	s.Run("returns false for nil error", func() {
		s.False(HasCode(nil, CodeUnknownReasonName))
	})
}
