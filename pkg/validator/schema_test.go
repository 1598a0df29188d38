package validator_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

func failures(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	require.Error(t, err)
	errs := validator.ExtractValidationErrors(err)
	require.NotEmpty(t, errs)
	return errs
}

func TestBaseSchemas(t *testing.T) {
	t.Parallel()

	type myInt int

	tests := []struct {
		name     string
		schema   validator.Fragment
		input    any
		want     any
		wantCode string
	}{
		{name: "string", schema: validator.String(), input: "hi", want: "hi"},
		{name: "string rejects number", schema: validator.String(), input: 1, wantCode: validator.CodeInvalidType},
		{name: "string absent", schema: validator.String(), input: nil, wantCode: validator.CodeRequired},
		{name: "number int", schema: validator.Number(), input: 3, want: 3.0},
		{name: "number float32", schema: validator.Number(), input: float32(1.5), want: 1.5},
		{name: "number json", schema: validator.Number(), input: json.Number("2.25"), want: 2.25},
		{name: "number named type", schema: validator.Number(), input: myInt(7), want: 7.0},
		{name: "number rejects text", schema: validator.Number(), input: "1", wantCode: validator.CodeInvalidType},
		{name: "number rejects NaN", schema: validator.Number(), input: math.NaN(), wantCode: validator.CodeInvalidType},
		{name: "int", schema: validator.Int(), input: 4.0, want: 4},
		{name: "int rejects fraction", schema: validator.Int(), input: 4.5, wantCode: validator.CodeInvalidType},
		{name: "int rejects infinity", schema: validator.Int(), input: math.Inf(1), wantCode: validator.CodeInvalidType},
		{name: "int rejects above max", schema: validator.Int(), input: 1e20, wantCode: validator.CodeInvalidType},
		{name: "int rejects below min", schema: validator.Int(), input: -1e20, wantCode: validator.CodeInvalidType},
		{name: "int rejects 2^63", schema: validator.Int(), input: json.Number("9223372036854775808"), wantCode: validator.CodeInvalidType},
		{name: "int rejects max uint64", schema: validator.Int(), input: uint64(math.MaxUint64), wantCode: validator.CodeInvalidType},
		{name: "int min int32", schema: validator.Int(), input: int32(math.MinInt32), want: math.MinInt32},
		{name: "bool", schema: validator.Bool(), input: false, want: false},
		{name: "bool rejects text", schema: validator.Bool(), input: "true", wantCode: validator.CodeInvalidType},
		{name: "any", schema: validator.Any(), input: []int{1}, want: []int{1}},
		{name: "any absent", schema: validator.Any(), input: nil, wantCode: validator.CodeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := validator.Object(validator.Shape{"v": tt.schema}).Parse(map[string]any{"v": tt.input})
			if tt.wantCode != "" {
				errs := failures(t, err)
				require.Len(t, errs, 1)
				assert.Equal(t, "v", errs[0].Field)
				assert.Equal(t, tt.wantCode, errs[0].Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out["v"])
		})
	}
}

func TestSchema_Messages(t *testing.T) {
	t.Parallel()

	s := validator.String(
		validator.WithRequired(validator.Message{Text: "Name is required", Key: "validation.required", Values: map[string]any{"field": "Name"}}),
		validator.WithInvalidType(validator.Message{Text: "Name must be a string"}),
	)

	_, err := s.Parse(nil)
	errs := failures(t, err)
	assert.Equal(t, validator.ValidationError{
		Code:              validator.CodeRequired,
		Message:           "Name is required",
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{"field": "Name"},
	}, errs[0])

	_, err = s.Parse(true)
	errs = failures(t, err)
	assert.Equal(t, "Name must be a string", errs[0].Message)
	assert.Empty(t, errs[0].TranslationKey)

	_, err = validator.Bool().Parse(nil)
	assert.Equal(t, "field is required", failures(t, err)[0].Message)
	_, err = validator.Bool().Parse(1)
	assert.Equal(t, "invalid type", failures(t, err)[0].Message)
	_, err = validator.Bool().Refine(func(b bool) bool { return b }, validator.Message{}).Parse(false)
	assert.Equal(t, "invalid value", failures(t, err)[0].Message)
}

func TestSchema_ChecksRunBeforeTransforms(t *testing.T) {
	t.Parallel()

	short := validator.String().
		Transform(strings.TrimSpace).
		Refine(func(v string) bool { return len(v) <= 3 }, validator.Message{Text: "too long"})

	_, err := short.Parse("  ab  ")
	assert.Equal(t, "too long", failures(t, err)[0].Message)

	out, err := short.Parse("ab ")
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
}

func TestSchema_ChecksStopAtFirstFailure(t *testing.T) {
	t.Parallel()

	var calls int
	s := validator.String().
		Refine(func(string) bool { calls++; return false }, validator.Message{Text: "first"}).
		Refine(func(string) bool { calls++; return false }, validator.Message{Text: "second"})

	_, err := s.Parse("x")
	errs := failures(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "first", errs[0].Message)
	assert.Equal(t, 1, calls)
}

func TestSchema_CheckCode(t *testing.T) {
	t.Parallel()

	finite := validator.Number().Check(validator.CodeInvalidType, func(f float64) bool { return !math.IsInf(f, 0) }, validator.Message{Text: "must be finite"})
	_, err := finite.Parse(math.Inf(-1))
	errs := failures(t, err)
	assert.Equal(t, validator.CodeInvalidType, errs[0].Code)
	assert.ErrorIs(t, err, validator.ErrInvalidType)
}

func TestSchema_Immutable(t *testing.T) {
	t.Parallel()

	base := validator.String()
	strict := base.Refine(func(v string) bool { return v != "" }, validator.Message{Text: "empty"})
	upper := base.Transform(strings.ToUpper)
	opt := validator.Optional(base)

	out, err := base.Parse("")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	_, err = strict.Parse("")
	require.Error(t, err)

	out, err = upper.Parse("a")
	require.NoError(t, err)
	assert.Equal(t, "A", out)

	out, err = strict.Parse("a")
	require.NoError(t, err)
	assert.Equal(t, "a", out, "sibling transform must not leak")

	_, err = base.Parse(nil)
	require.Error(t, err, "Optional must not change the receiver")
	assert.True(t, opt.IsOptional())
	assert.False(t, base.IsOptional())
}

func TestSchema_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Int().Validate(3))
	assert.ErrorIs(t, validator.Int().Validate(nil), validator.ErrFieldRequired)
}

func TestSchema_Kind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.KindString, validator.String().Kind())
	assert.Equal(t, validator.KindNumber, validator.Int().Kind())
	assert.Equal(t, validator.KindBoolean, validator.Bool().Kind())
	assert.Equal(t, validator.KindObject, validator.Object(nil).Kind())
	assert.Equal(t, validator.KindArray, validator.Array(validator.Int()).Kind())
	assert.Equal(t, validator.KindAny, validator.Any().Kind())
	assert.Equal(t, validator.KindString, validator.Map(validator.String(), func(s string) int { return len(s) }).Kind())
}

func TestAsNumber(t *testing.T) {
	t.Parallel()

	for _, in := range []any{1, uint8(1), int64(1), float32(1), json.Number("1"), json.Number("1.0")} {
		f, ok := validator.AsNumber(in)
		assert.True(t, ok, "%T", in)
		assert.Equal(t, 1.0, f, "%T", in)
	}

	_, ok := validator.AsNumber("1")
	assert.False(t, ok)
	_, ok = validator.AsNumber(math.NaN())
	assert.False(t, ok)
}

func TestEnum(t *testing.T) {
	t.Parallel()

	role := validator.Enum([]string{"admin", "user"}, validator.WithValidation(validator.Message{Text: "bad role"}))

	out, err := role.Parse("admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", out)

	_, err = role.Parse("root")
	assert.Equal(t, "bad role", failures(t, err)[0].Message)

	assert.Panics(t, func() { validator.Enum(nil) })
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := validator.Object(validator.Shape{"name": validator.String(validator.WithRequired(validator.Message{Text: "Name is required"}))})

	_, err := s.Parse(map[string]any{"name": "ok"}, validator.WithLogger(log))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = s.Parse(map[string]any{}, validator.WithLogger(log))
	require.Error(t, err)

	line := buf.String()
	assert.Contains(t, line, `msg="validation failed"`)
	assert.Contains(t, line, "kind=object")
	assert.Contains(t, line, `error="validation failed: name: Name is required"`)
	assert.Contains(t, line, "failures.name.code=required")
	assert.Contains(t, line, `failures.name.message="Name is required"`)
}

func TestWithLogger_Nil(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		_, _ = validator.String().Parse(nil, validator.WithLogger(nil))
	})
}
