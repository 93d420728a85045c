package logger

import (
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	// FieldRun is the structured log field key for the screening run id.
	FieldRun = "run_id"
	// FieldCandidate is the structured log field key for a candidate resume.
	FieldCandidate = "candidate"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger is replaced with a no-op one.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the fields identifying a screening run and a candidate.
// Empty values are ignored.
func CommonFields(run, candidate string) []zap.Field {
	return StringFields(
		StringField{Key: FieldRun, Value: run},
		StringField{Key: FieldCandidate, Value: candidate},
	)
}

// WithCommonFields attaches the run and candidate fields to the logger.
func WithCommonFields(logger *zap.Logger, run, candidate string) *zap.Logger {
	return WithFields(logger, CommonFields(run, candidate)...)
}

// StructFields flattens the top level of a tagged struct into zap fields,
// one per mapstructure key, sorted by key.
func StructFields(v any) ([]zap.Field, error) {
	var m map[string]any
	if err := mapstructure.Decode(v, &m); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Any(k, m[k]))
	}
	return fields, nil
}
