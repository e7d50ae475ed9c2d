package validator_test

import (
	"strings"
	"testing"
	"time"

	"shareit/shared/validator"
)

type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Age      int    `validate:"gte=0,lte=120" json:"age"`
	Category string `validate:"oneof=user admin guest" json:"category"`
}

type PeriodTestStruct struct {
	Start time.Time `validate:"required" json:"start"`
	End   time.Time `validate:"required,gtfield=Start" json:"end"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      150,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "invalid",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateStruct_PeriodOrdering(t *testing.T) {
	start := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		data        *PeriodTestStruct
		expectError bool
	}{
		{
			name:        "end after start",
			data:        &PeriodTestStruct{Start: start, End: start.Add(24 * time.Hour)},
			expectError: false,
		},
		{
			name:        "end equal to start",
			data:        &PeriodTestStruct{Start: start, End: start},
			expectError: true,
		},
		{
			name:        "end before start",
			data:        &PeriodTestStruct{Start: start, End: start.Add(-time.Hour)},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "valid uuid",
			field:       "550e8400-e29b-41d4-a716-446655440000",
			tag:         "uuid",
			expectError: false,
		},
		{
			name:        "invalid uuid",
			field:       "not-a-uuid",
			tag:         "uuid",
			expectError: true,
		},
		{
			name:        "empty rule on a zero value",
			field:       "",
			tag:         "empty",
			expectError: false,
		},
		{
			name:        "empty rule on a set value",
			field:       "something",
			tag:         "empty",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate_FromReader(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		body := strings.NewReader(`{"name":"John","email":"john@example.com","age":30,"category":"user"}`)

		var data ValidTestStruct
		if err := validator.Validate(body, &data); err != nil {
			t.Errorf("expected no error, got: %v", err)
		}

		if data.Name != "John" {
			t.Errorf("expected decoded name John, got %s", data.Name)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		body := strings.NewReader(`{"name":`)

		var data ValidTestStruct
		if err := validator.Validate(body, &data); err == nil {
			t.Error("expected decode error, got nil")
		}
	})

	t.Run("body failing validation", func(t *testing.T) {
		body := strings.NewReader(`{"email":"not-an-email"}`)

		var data ValidTestStruct
		if err := validator.Validate(body, &data); err == nil {
			t.Error("expected validation error, got nil")
		}
	})
}
