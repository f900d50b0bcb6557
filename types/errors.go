package types

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrCode int

const (
	None ErrCode = iota
	UnrelatedTypes
	ArityMismatch
	UnsupportedVariant
	NotFound
	InvalidRank
	Parse
	UnresolvedLiteral
)

// CodedError is implemented by every error this module produces
type CodedError interface {
	error
	Code() ErrCode
}

// FormatWithCode renders err prefixed by its code, if it (or something it wraps) has one
func FormatWithCode(err error) string {
	if err == nil {
		return ""
	}
	var coded CodedError
	if errors.As(err, &coded) {
		return fmt.Sprintf("(E%03d) %s", coded.Code(), err.Error())
	}
	return err.Error()
}

// UnrelatedTypesError is returned when Type is not a subtype of Reference
type UnrelatedTypesError struct {
	Type      Type
	Reference *Class
}

func (e *UnrelatedTypesError) Error() string {
	return fmt.Sprintf("%s is not assignable to %s", e.Type, e.Reference)
}
func (e *UnrelatedTypesError) Code() ErrCode { return UnrelatedTypes }

func unrelated(t Type, reference *Class) error {
	return errors.WithStack(&UnrelatedTypesError{Type: t, Reference: reference})
}

// ArityMismatchError means a generic declaration and the arguments applied to it disagree.
// A well-formed host model never produces it.
type ArityMismatchError struct {
	Raw  *Class
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s declares %d type parameters but %d arguments were given", e.Raw, e.Want, e.Got)
}
func (e *ArityMismatchError) Code() ErrCode { return ArityMismatch }

func arityMismatch(raw *Class, got int) error {
	return errors.WithStack(&ArityMismatchError{Raw: raw, Want: len(raw.typeParams), Got: got})
}

// UnsupportedVariantError signals a visitor was dispatched on a variant it does not handle
type UnsupportedVariantError struct {
	Visitor string
	Subject fmt.Stringer
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("%s is not defined for %T (%s)", e.Visitor, e.Subject, e.Subject)
}
func (e *UnsupportedVariantError) Code() ErrCode { return UnsupportedVariant }

type NotFoundError struct {
	What  string
	Where fmt.Stringer
}

func (e *NotFoundError) Error() string {
	if e.Where == nil {
		return fmt.Sprintf("cannot find %s", e.What)
	}
	return fmt.Sprintf("cannot find %s on %s", e.What, e.Where)
}
func (e *NotFoundError) Code() ErrCode { return NotFound }

func notFound(where fmt.Stringer, format string, args ...any) error {
	return errors.WithStack(&NotFoundError{What: fmt.Sprintf(format, args...), Where: where})
}

type InvalidRankError struct {
	Rank int
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("array rank must not be negative, got %d", e.Rank)
}
func (e *InvalidRankError) Code() ErrCode { return InvalidRank }

// UnresolvedLiteralError is returned by LiteralOf when a class extends TypeLiteral
// without fixing its argument
type UnresolvedLiteralError struct {
	Class *Class
}

func (e *UnresolvedLiteralError) Error() string {
	return fmt.Sprintf("%s does not fix the argument of %s", e.Class, TypeLiteral)
}
func (e *UnresolvedLiteralError) Code() ErrCode { return UnresolvedLiteral }
