package conversion

//go:generate mockgen -source=converter.go -destination=mocks/mock_converter.go -package=mocks

import (
	"context"
	"math"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/fibkm/internal/errors"
)

const tracerName = "github.com/agbru/fibkm/internal/conversion"

// Result is the outcome of converting one distance with one method.
type Result struct {
	Method     Method  `json:"method"`
	Miles      float64 `json:"miles"`
	Kilometers float64 `json:"kilometers"`
	Outcome    Outcome `json:"outcome"`
}

// Converter is the public interface of a conversion method. Exactly one
// method runs per call; callers wanting several methods hold several
// Converters.
type Converter interface {
	// Convert converts miles to kilometers. It fails only when miles is
	// negative, NaN or infinite.
	Convert(ctx context.Context, miles float64) (Result, error)

	// Name returns the display name of the method.
	Name() string

	// Method returns the method identifier.
	Method() Method
}

// MethodConverter decorates a coreConverter with input validation, an
// OpenTelemetry span and observer notification.
type MethodConverter struct {
	core    coreConverter
	subject *Subject
}

// NewConverter wraps core. It panics if core is nil. A nil subject means
// results are not observed.
func NewConverter(core coreConverter, subject *Subject) *MethodConverter {
	if core == nil {
		panic("conversion: the coreConverter implementation cannot be nil")
	}
	if subject == nil {
		subject = NewSubject()
	}
	return &MethodConverter{core: core, subject: subject}
}

// Name returns the display name of the wrapped method.
func (c *MethodConverter) Name() string { return c.core.Name() }

// Method returns the identifier of the wrapped method.
func (c *MethodConverter) Method() Method { return c.core.Method() }

// Convert validates miles, runs the wrapped method and notifies observers.
func (c *MethodConverter) Convert(ctx context.Context, miles float64) (Result, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "Convert", trace.WithAttributes(
		attribute.String("conversion.method", string(c.core.Method())),
		attribute.Float64("conversion.miles", miles),
	))
	defer span.End()

	if err := ValidateMiles(miles); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.subject.NotifyError(c.core.Method(), miles, err)
		return Result{}, err
	}

	km, outcome := c.core.ConvertCore(miles)
	res := Result{Method: c.core.Method(), Miles: miles, Kilometers: km, Outcome: outcome}
	span.SetAttributes(
		attribute.Float64("conversion.kilometers", km),
		attribute.String("conversion.outcome", string(outcome)),
	)
	c.subject.Notify(res)
	return res, nil
}

// ValidateMiles rejects negative and non-finite distances.
func ValidateMiles(miles float64) error {
	raw := strconv.FormatFloat(miles, 'g', -1, 64)
	switch {
	case math.IsNaN(miles) || math.IsInf(miles, 0):
		return apperrors.ValidationError{Field: "miles", Value: raw, Message: "must be a finite number"}
	case miles < 0:
		return apperrors.ValidationError{Field: "miles", Value: raw, Message: "must be non-negative number"}
	}
	return nil
}
