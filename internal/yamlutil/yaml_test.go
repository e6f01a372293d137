package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type target struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		dst     any
		wantErr error
		check   func(t *testing.T, got *target)
	}{
		{
			name: "valid document",
			data: "name: merge\ncount: 3\n",
			dst:  &target{},
			check: func(t *testing.T, got *target) {
				if got.Name != "merge" || got.Count != 3 {
					t.Errorf("got %+v", got)
				}
			},
		},
		{
			name:    "empty data",
			data:    "",
			dst:     &target{},
			wantErr: ErrNilData,
		},
		{
			name:    "nil destination",
			data:    "name: x\n",
			dst:     nil,
			wantErr: ErrNilDestination,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := UnmarshalStrict([]byte(tt.data), tt.dst)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dst.(*target))
			}
		})
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	t.Parallel()

	var dst target
	err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &dst)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestUnmarshalStrict_TooLarge(t *testing.T) {
	t.Parallel()

	big := []byte("name: " + strings.Repeat("x", MaxInputSize) + "\n")
	var dst target
	if err := UnmarshalStrict(big, &dst); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}
