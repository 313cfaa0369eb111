package normalize

import "testing"

func TestDuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"3:45", 225, true},
		{"1:02:03", 3723, true},
		{"0:00", 0, true},
		{"45", 45, true},
		{"10:00:00", 36000, true},
		{" 3:45 ", 225, true},
		{"", 0, false},
		{"  ", 0, false},
		{"3:4x", 0, false},
		{"abc", 0, false},
		{"3:-5", 0, false},
		{"1::3", 0, false},
	}
	for _, tc := range tests {
		got, ok := Duration(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Duration(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestViewCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1,234,567 views", 1234567, true},
		{"1234", 1234, true},
		{"watched 42 times", 42, true},
		{"12,345", 12345, true},
		{"", 0, false},
		{"no digits here", 0, false},
	}
	for _, tc := range tests {
		got, ok := ViewCount(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ViewCount(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestImageQuality(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{1920, "1280x720"},
		{1280, "1280x720"},
		{1279, "640x480"},
		{640, "640x480"},
		{480, "480x360"},
		{320, "320x180"},
		{319, "120x90"},
		{100, "120x90"},
		{0, "120x90"},
	}
	for _, tc := range tests {
		if got := ImageQuality(tc.width); got != tc.want {
			t.Errorf("ImageQuality(%d) = %q, want %q", tc.width, got, tc.want)
		}
	}
}

func TestClockDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT1H2M3S", "1:02:03"},
		{"PT5M9S", "5:09"},
		{"PT45S", "0:45"},
		{"PT2H", "2:00:00"},
		{"PT10M", "10:00"},
		{"PT", "0:00"},
		{"garbage", "0:00"},
		{"", "0:00"},
		{"P1DT2H", "0:00"},
	}
	for _, tc := range tests {
		if got := ClockDuration(tc.in); got != tc.want {
			t.Errorf("ClockDuration(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// The normalizers are pure; repeated invocation on the same input must be
// byte-identical.
func TestIdempotence(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got, ok := Duration("1:02:03"); got != 3723 || !ok {
			t.Fatalf("Duration not stable on call %d: (%d, %v)", i, got, ok)
		}
		if got, ok := ViewCount("1,234 views"); got != 1234 || !ok {
			t.Fatalf("ViewCount not stable on call %d: (%d, %v)", i, got, ok)
		}
		if got := ClockDuration("PT5M9S"); got != "5:09" {
			t.Fatalf("ClockDuration not stable on call %d: %q", i, got)
		}
	}
}
