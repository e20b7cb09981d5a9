package pathmap

import (
	"reflect"
	"testing"
)

func TestMapExtension(t *testing.T) {
	tests := map[string]struct {
		inputs []string
		want   []string
	}{
		"single replace": {
			inputs: []string{"src/a.c"},
			want:   []string{"src/a.o"},
		},
		"fixpoint": {
			// Applying the same replacement twice should be a no-op the
			// second time (spec section 8's round-trip law).
			inputs: []string{"src/a.o"},
			want:   []string{"src/a.o"},
		},
		"no extension": {
			inputs: []string{"Makefile"},
			want:   []string{"Makefile.o"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Map(tt.inputs, 511, Extension("o"))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map(%v, Extension(o)) = %v, want %v", tt.inputs, got, tt.want)
			}
		})
	}
}

func TestMapParent(t *testing.T) {
	tests := map[string]struct {
		inputs []string
		want   []string
	}{
		"single replace": {
			inputs: []string{"src/a.c"},
			want:   []string{"build/a.c"},
		},
		"no separator": {
			// No '/' present: the rewrite is a documented no-op warning,
			// not an error.
			inputs: []string{"a.c"},
			want:   []string{"a.c"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Map(tt.inputs, 511, Parent("build"))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map(%v, Parent(build)) = %v, want %v", tt.inputs, got, tt.want)
			}
		})
	}
}

func TestMapChained(t *testing.T) {
	got := Map([]string{"src/a.c"}, 511, Extension("o"), Parent("build"))
	want := []string{"build/a.o"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("chained Map = %v, want %v", got, want)
	}
}

func TestMapTruncates(t *testing.T) {
	got := Map([]string{"src/abcdefgh.c"}, 6, Extension("o"))
	if len(got[0]) > 6 {
		t.Errorf("Map result %q exceeds maxLen 6", got[0])
	}
}
