package validation

import (
	"errors"
	"strings"
	"testing"

	"quizmaster/internal/domain"
	"quizmaster/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"course_name" validate:"required"`
	Kind  string `json:"kind" validate:"omitempty,oneof=Foundation Diploma Degree"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Code  string `json:"code" validate:"omitempty,min=4,max=6"`
	Plain string `validate:"omitempty,email"`
}

func TestValidator_Valid(t *testing.T) {
	v := NewValidator()
	err := v.Struct(&sampleRequest{Name: "Maths", Kind: "Diploma", Date: "2026-01-31", Code: "abcd"})
	assert.NoError(t, err)
}

func TestValidator_FieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		req   sampleRequest
		field string
		code  domain.ErrorCode
	}{
		{"missing required uses json name", sampleRequest{}, "course_name", domain.CodeMissingField},
		{"oneof", sampleRequest{Name: "x", Kind: "PhD"}, "kind", domain.CodeValidation},
		{"datetime", sampleRequest{Name: "x", Date: "31/01/2026"}, "date", domain.CodeInvalidFormat},
		{"min", sampleRequest{Name: "x", Code: "ab"}, "code", domain.CodeValidation},
		{"max", sampleRequest{Name: "x", Code: "abcdefgh"}, "code", domain.CodeValidation},
		{"untagged field falls back to struct name", sampleRequest{Name: "x", Plain: "nope"}, "Plain", domain.CodeValidation},
	}
	v := NewValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(&tc.req)
			var verrs domain.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.field, verrs[0].Field)
			assert.Equal(t, tc.code, verrs[0].Code)
		})
	}
}

func TestValidator_NonStruct(t *testing.T) {
	err := NewValidator().Struct("not a struct")
	assert.True(t, domain.HasCode(err, domain.CodeInternal))
}

func TestValidator_ColumnLengthLimits(t *testing.T) {
	long := strings.Repeat("x", 300)
	validQuestion := func() dto.QuestionRequest {
		return dto.QuestionRequest{
			QuestionStatement: "2+2?", QuizID: 1, ChapterID: 1,
			Option1: "3", Option2: "4", CorrectAnswer: "4",
		}
	}
	validRegister := func() dto.RegisterRequest {
		return dto.RegisterRequest{
			Username: "student@example.com", Password: "pass1234", FullName: "Student One",
			Qualification: "Diploma", DOB: "2004-07-15",
		}
	}

	tests := []struct {
		name  string
		req   func() interface{}
		field string
	}{
		{"option1", func() interface{} { r := validQuestion(); r.Option1 = long; return &r }, "option1"},
		{"option4", func() interface{} { r := validQuestion(); r.Option4 = long; return &r }, "option4"},
		{"correct answer", func() interface{} { r := validQuestion(); r.CorrectAnswer = long; return &r }, "correct_answer"},
		{"edit option2", func() interface{} {
			return &dto.EditQuestionRequest{QuestionStatement: "q", Option1: "a", Option2: long, CorrectAnswer: "a"}
		}, "option2"},
		{"full name", func() interface{} { r := validRegister(); r.FullName = long; return &r }, "full_name"},
		{"password", func() interface{} { r := validRegister(); r.Password = strings.Repeat("p", 73); return &r }, "password"},
	}
	v := NewValidator()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req())
			var verrs domain.ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.field, verrs[0].Field)
		})
	}

	q := validQuestion()
	assert.NoError(t, v.Struct(&q))
	r := validRegister()
	assert.NoError(t, v.Struct(&r))
}
