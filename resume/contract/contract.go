// Package contract defines the export request accepted by the service and
// its validation rules.
package contract

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"docx-export-api/resume/model"
)

const (
	ReturnFormatBase64 = "base64"
	DocxExtension      = ".docx"
	DocxMimeType       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Section is a heading plus newline-separated markdown content.
type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Content string `json:"content" yaml:"content"`
}

// ExportRequest is the body of POST /export/docx.
type ExportRequest struct {
	DocType      string    `json:"doc_type" yaml:"doc_type" validate:"oneof=resume cover_letter"`
	FileName     string    `json:"file_name,omitempty" yaml:"file_name,omitempty"`
	Title        string    `json:"title" yaml:"title" validate:"notblank"`
	Subtitle     string    `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Sections     []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
	Content      string    `json:"content,omitempty" yaml:"content,omitempty"`
	ReturnFormat string    `json:"return_format,omitempty" yaml:"return_format,omitempty" validate:"oneof=base64"`
}

// ApplyDefaults fills omitted enum fields with their defaults.
func (r *ExportRequest) ApplyDefaults() {
	r.DocType = strings.TrimSpace(r.DocType)
	if r.DocType == "" {
		r.DocType = string(model.DocTypeResume)
	}
	r.ReturnFormat = strings.TrimSpace(r.ReturnFormat)
	if r.ReturnFormat == "" {
		r.ReturnFormat = ReturnFormatBase64
	}
}

// FieldError names one invalid request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every invalid field of a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		reasons = append(reasons, f.Reason)
	}
	return "invalid request: " + strings.Join(reasons, "; ")
}

// Validate checks the request after ApplyDefaults. Invalid requests return a
// *ValidationError.
func (r *ExportRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:  fieldPath(fe),
			Reason: describe(fe),
		})
	}
	return out
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return field + " is invalid"
	}
}
