// Package binding holds the value-conversion service used by flow builders.
package binding

import (
	"reflect"
	"strconv"
	"sync"

	"github.com/spf13/cast"
)

// DefaultConversionServiceType is the container type name of DefaultConversionService.
const DefaultConversionServiceType = "binding.DefaultConversionService"

// ConversionService converts loosely typed values (usually configuration text)
// into a target kind.
type ConversionService interface {
	Convert(value any, target reflect.Kind) (any, error)
	CanConvert(target reflect.Kind) bool
}

// ConverterFunc converts a single value.
type ConverterFunc func(value any) (any, error)

// NoConverterError is returned when no converter is registered for a kind.
type NoConverterError struct{ Target reflect.Kind }

// Error implements the error interface.
func (e NoConverterError) Error() string {
	return "binding: no converter to " + strconv.Quote(e.Target.String())
}

// DefaultConversionService converts to the basic scalar kinds.
//
// It is safe for concurrent use; AddConverter may be called at any time.
type DefaultConversionService struct {
	mu         sync.RWMutex
	converters map[reflect.Kind]ConverterFunc
}

// NewDefaultConversionService returns a service with the built-in converters
// for bool, int, int64, float64 and string.
func NewDefaultConversionService() *DefaultConversionService {
	s := &DefaultConversionService{converters: make(map[reflect.Kind]ConverterFunc)}
	s.converters[reflect.Bool] = func(v any) (any, error) { return cast.ToBoolE(v) }
	s.converters[reflect.Int] = func(v any) (any, error) { return cast.ToIntE(v) }
	s.converters[reflect.Int64] = func(v any) (any, error) { return cast.ToInt64E(v) }
	s.converters[reflect.Float64] = func(v any) (any, error) { return cast.ToFloat64E(v) }
	s.converters[reflect.String] = func(v any) (any, error) { return cast.ToStringE(v) }
	return s
}

// AddConverter registers (or replaces) the converter for target.
func (s *DefaultConversionService) AddConverter(target reflect.Kind, fn ConverterFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.converters[target] = fn
}

// CanConvert implements ConversionService.
func (s *DefaultConversionService) CanConvert(target reflect.Kind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.converters[target]
	return ok
}

// Convert implements ConversionService.
func (s *DefaultConversionService) Convert(value any, target reflect.Kind) (any, error) {
	s.mu.RLock()
	fn, ok := s.converters[target]
	s.mu.RUnlock()
	if !ok {
		return nil, NoConverterError{Target: target}
	}
	return fn(value)
}

// String implements fmt.Stringer.
func (s *DefaultConversionService) String() string { return DefaultConversionServiceType }

// ConvertTo converts value with cs and asserts the result to T.
func ConvertTo[T any](cs ConversionService, value any) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil {
		return zero, NoConverterError{Target: reflect.Interface}
	}
	kind := rt.Kind()
	out, err := cs.Convert(value, kind)
	if err != nil {
		return zero, err
	}
	typed, ok := out.(T)
	if !ok {
		return zero, NoConverterError{Target: kind}
	}
	return typed, nil
}
