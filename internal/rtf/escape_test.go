package rtf

import "testing"

func TestEscapeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain ascii", in: "Hello World", want: "Hello World"},
		{name: "backslash", in: `a\b`, want: `a\\b`},
		{name: "braces", in: "{group}", want: `\{group\}`},
		{name: "newline becomes line", in: "a\nb", want: `a\line b`},
		{name: "carriage return dropped", in: "a\r\nb", want: `a\line b`},
		{name: "latin-1 accent", in: "café", want: `caf\u233?`},
		{name: "euro sign", in: "€", want: `\u8364?`},
		{name: "signed 16-bit wraparound", in: "�", want: `\u-3?`},
		{name: "astral plane surrogate pair", in: "\U0001F600", want: `\u-10179?\u-8704?`},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EscapeText(tt.in); got != tt.want {
				t.Errorf("EscapeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
