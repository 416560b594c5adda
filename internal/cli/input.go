package cli

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/agbru/fibkm/internal/conversion"
	apperrors "github.com/agbru/fibkm/internal/errors"
)

// ParseMiles parses a distance the way a user types it. The whole string
// must be a non-negative, finite decimal number.
func ParseMiles(raw string) (float64, error) {
	invalid := apperrors.ValidationError{Field: "distance", Value: raw, Message: "must be non-negative number"}

	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, invalid
	}
	miles, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(miles) || math.IsInf(miles, 0) || miles < 0 {
		return 0, invalid
	}
	return miles, nil
}

// ParseIndex parses a whole number of miles for the Fibonacci path. It
// returns an OutOfRangeError for values beyond conversion.MaxIndex and a
// ValidationError for anything that is not a positive integer.
func ParseIndex(raw string) (int, error) {
	invalid := apperrors.ValidationError{Field: "distance", Value: raw, Message: "must be positive integer"}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(raw), "-") {
			return 0, apperrors.OutOfRangeError{Field: "distance", Value: math.MaxInt, Max: conversion.MaxIndex}
		}
		return 0, invalid
	}
	if n <= 0 {
		return 0, invalid
	}
	if n > conversion.MaxIndex {
		return 0, apperrors.OutOfRangeError{Field: "distance", Value: n, Max: conversion.MaxIndex}
	}
	return n, nil
}
