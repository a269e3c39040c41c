package htmldoc

import "testing"

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected Direction
	}{
		{
			name:     "plain latin",
			source:   "<html><body><p>hello world</p></body></html>",
			expected: LeftToRight,
		},
		{
			name:     "hebrew text",
			source:   "<html><body><p>שלום עולם</p></body></html>",
			expected: RightToLeft,
		},
		{
			name:     "arabic text",
			source:   "<html><body><p>مرحبا بالعالم</p></body></html>",
			expected: RightToLeft,
		},
		{
			name:     "single hebrew character in otherwise latin document",
			source:   "<html><body><p>mostly english with one א character</p></body></html>",
			expected: RightToLeft,
		},
		{
			name:     "hebrew outside body still counts",
			source:   "<html><head><title>כותרת</title></head><body><p>english</p></body></html>",
			expected: RightToLeft,
		},
		{
			name:     "cyrillic is left to right",
			source:   "<html><body><p>привет мир</p></body></html>",
			expected: LeftToRight,
		},
		{
			name:     "empty source",
			source:   "",
			expected: LeftToRight,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectDirection(tc.source); got != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}
