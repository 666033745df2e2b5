package entities

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDetail_Error(t *testing.T) {
	tests := []struct {
		name   string
		detail *ErrorDetail
		want   string
	}{
		{name: "nil", detail: nil, want: ""},
		{name: "internal omits type", detail: NewErrorDetail(ErrorTypeInternal, "boom"), want: "boom"},
		{name: "typed", detail: NewErrorDetail(ErrorTypeSchema, "no schema"), want: "schema: no schema"},
		{name: "typed with code", detail: NewErrorDetail(ErrorTypeDecode, "bad document").WithCode("yaml"), want: "decode [yaml]: bad document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.detail.Error())
		})
	}
}

func TestErrorDetail_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	d := NewErrorDetail(ErrorTypeValidation, "bad").
		WithCode("invalid_argument").
		WithDetails(map[string]any{"index": 2, "argument": "specs"})
	logger.Info("rejected", "error", d)

	assert.Equal(t,
		"level=INFO msg=rejected error.type=validation error.code=invalid_argument error.message=bad error.argument=specs error.index=2\n",
		buf.String())
}
