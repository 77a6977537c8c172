package derive_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-derive-secrets/derive"
)

func TestDefaultPolicy(t *testing.T) {
	p := derive.DefaultPolicy()
	if p.Length != derive.DefaultLength {
		t.Errorf("Length = %d, want %d", p.Length, derive.DefaultLength)
	}
	if p.Class() != derive.ClassAll {
		t.Errorf("Class() = %s, want all", p.Class())
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestPolicy_Class(t *testing.T) {
	tests := []struct {
		name   string
		policy derive.Policy
		want   derive.Class
	}{
		{"none", derive.Policy{}, 0},
		{"uppercase", derive.Policy{IncludeUppercase: true}, derive.ClassUppercase},
		{"lowercase", derive.Policy{IncludeLowercase: true}, derive.ClassLowercase},
		{"numbers", derive.Policy{IncludeNumbers: true}, derive.ClassDigits},
		{"symbols", derive.Policy{IncludeSymbols: true}, derive.ClassSymbols},
		{"letters", derive.Policy{IncludeUppercase: true, IncludeLowercase: true}, derive.ClassUppercase | derive.ClassLowercase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Class(); got != tt.want {
				t.Errorf("Class() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name   string
		policy derive.Policy
		want   error
	}{
		{"valid", derive.Policy{Length: 1, IncludeNumbers: true}, nil},
		{"no classes", derive.Policy{Length: 8}, derive.ErrInvalidPolicy},
		{"no classes and zero length", derive.Policy{}, derive.ErrInvalidPolicy},
		{"zero length", derive.Policy{IncludeSymbols: true}, derive.ErrInvalidLength},
		{"negative length", derive.Policy{Length: -3, IncludeSymbols: true}, derive.ErrInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
