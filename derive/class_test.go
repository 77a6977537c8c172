package derive_test

import (
	"testing"

	"github.com/hasbyte1/go-derive-secrets/derive"
)

func TestClass_Contains(t *testing.T) {
	tests := []struct {
		class   derive.Class
		members string
	}{
		{derive.ClassLowercase, "abcdefghijklmnopqrstuvwxyz"},
		{derive.ClassUppercase, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{derive.ClassDigits, "0123456789"},
		{derive.ClassSymbols, "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"},
	}
	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			in := map[byte]bool{}
			for i := 0; i < len(tt.members); i++ {
				in[tt.members[i]] = true
			}
			for v := 0; v < 256; v++ {
				if got := tt.class.Contains(byte(v)); got != in[byte(v)] {
					t.Errorf("Contains(%q) = %v, want %v", byte(v), got, in[byte(v)])
				}
			}
		})
	}
}

func TestClass_AllCoversPrintableASCII(t *testing.T) {
	for v := 0; v < 256; v++ {
		want := v > 32 && v < 127
		if got := derive.ClassAll.Contains(byte(v)); got != want {
			t.Errorf("ClassAll.Contains(%#x) = %v, want %v", v, got, want)
		}
	}
}

func TestClass_Empty(t *testing.T) {
	var none derive.Class
	if !none.Empty() {
		t.Error("zero Class should be empty")
	}
	for v := 0; v < 256; v++ {
		if none.Contains(byte(v)) {
			t.Errorf("empty class contains %#x", v)
		}
	}
	if derive.ClassSymbols.Empty() {
		t.Error("ClassSymbols should not be empty")
	}
}

func TestClass_Filter(t *testing.T) {
	c := derive.ClassDigits | derive.ClassUppercase
	got := c.Filter([]byte("x:"), "a1B2 c3~D")
	if string(got) != "x:1B23D" {
		t.Errorf("Filter = %q, want %q", got, "x:1B23D")
	}
}

func TestClass_String(t *testing.T) {
	tests := []struct {
		class derive.Class
		want  string
	}{
		{0, "none"},
		{derive.ClassDigits, "digits"},
		{derive.ClassLowercase | derive.ClassSymbols, "lowercase|symbols"},
		{derive.ClassAll, "lowercase|uppercase|digits|symbols"},
	}
	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
