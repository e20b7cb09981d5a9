package strjoin

import "testing"

func TestJoin(t *testing.T) {
	tests := map[string]struct {
		strs   []string
		sep    string
		maxLen int
		want   string
	}{
		"empty": {
			strs: nil,
			sep:  ",",
			want: "",
		},
		"single": {
			strs:   []string{"a.o"},
			sep:    " ",
			maxLen: 64,
			want:   "a.o",
		},
		"several": {
			strs:   []string{"a.o", "b.o", "c.o"},
			sep:    " ",
			maxLen: 64,
			want:   "a.o b.o c.o",
		},
		"truncated": {
			strs:   []string{"aaaa", "bbbb", "cccc"},
			sep:    "-",
			maxLen: 10,
			want:   "aaaa-bbbb-",
		},
		"truncated mid string": {
			strs:   []string{"aaaa", "bbbb"},
			sep:    "-",
			maxLen: 6,
			want:   "aaaa-b",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Join(tt.strs, tt.sep, tt.maxLen)
			if got != tt.want {
				t.Errorf("Join(%v, %q, %d) = %q, want %q", tt.strs, tt.sep, tt.maxLen, got, tt.want)
			}
		})
	}
}
