package format

import "testing"

func TestHumanize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5767168, "5.5 MB"},
		{1073741824, "1.0 GB"},
		{1099511627776, "1.0 TB"},
		{-7, "0 B"},
	}
	for _, tc := range cases {
		if got := Humanize(tc.size); got != tc.want {
			t.Errorf("Humanize(%d) = %q, want %q", tc.size, got, tc.want)
		}
	}
}

func TestProportionalWidth(t *testing.T) {
	cases := []struct {
		size, total int64
		maxWidth    int
		want        int
	}{
		{50, 100, 20, 10},
		{100, 100, 20, 20},
		{0, 100, 20, 0},
		{10, 0, 20, 0},
		{10, -5, 20, 0},
		{-1, 100, 20, 0},
		{10, 100, 0, 0},
		{1, 1000000, 20, 0},
		{200, 100, 20, 20},
	}
	for _, tc := range cases {
		if got := ProportionalWidth(tc.size, tc.total, tc.maxWidth); got != tc.want {
			t.Errorf("ProportionalWidth(%d, %d, %d) = %d, want %d",
				tc.size, tc.total, tc.maxWidth, got, tc.want)
		}
	}
}

func TestBar(t *testing.T) {
	if got := Bar(50, 100, 4); got != "██░░" {
		t.Errorf("Bar(50, 100, 4) = %q, want %q", got, "██░░")
	}
	if got := Bar(0, 100, 4); got != "░░░░" {
		t.Errorf("Bar(0, 100, 4) = %q, want %q", got, "░░░░")
	}
	if got := Bar(100, 100, 4); got != "████" {
		t.Errorf("Bar(100, 100, 4) = %q, want %q", got, "████")
	}
}
