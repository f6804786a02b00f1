package text

import "testing"

func TestStripANSI(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"empty", "", ""},
		{"sgr color", "\x1b[31mred\x1b[0m", "red"},
		{"truecolor pair", "\x1b[48;2;255;0;0m\x1b[38;2;0;0;255m▄\x1b[0m", "▄"},
		{"palette color", "\x1b[38;5;196mX", "X"},
		{"cursor movement", "\x1b[2Jclear\x1b[H", "clear"},
		{"two-byte escape", "\x1b7saved\x1b8", "saved"},
		{"interleaved", "a\x1b[1mb\x1b[0mc", "abc"},
		{"escape at end", "tail\x1b[0m", "tail"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StripANSI(c.in); got != c.want {
				t.Fatalf("StripANSI(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestVisibleWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"\x1b[31mred\x1b[0m", 3},
		{"▄▄▄", 3},
		{"日本", 4}, // wide runes count double
		{"\x1b[48;2;0;0;0m\x1b[38;2;255;255;255m▄\x1b[0m", 1},
	}
	for _, c := range cases {
		if got := VisibleWidth(c.in); got != c.want {
			t.Errorf("VisibleWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
