package errkind

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with op",
			err:  InvalidArgument("commission.Compute", "sales amount cannot be negative: %v", -1),
			want: "[invalid_argument] commission.Compute: sales amount cannot be negative: -1",
		},
		{
			name: "without op",
			err:  &Error{Kind: KindIndexOutOfRange, Msg: "too far"},
			want: "[index_out_of_range] too far",
		},
		{
			name: "out of range",
			err:  OutOfRange("tuple.At", 3, 3),
			want: "[index_out_of_range] tuple.At: position 3 out of range for size 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	wrapped := fmt.Errorf("stage failed: %w", InvalidArgument("raise", "negative"))

	if !errors.Is(wrapped, ErrInvalidArgument) {
		t.Fatal("expected wrapped error to match ErrInvalidArgument")
	}
	if errors.Is(wrapped, ErrIndexOutOfRange) {
		t.Fatal("invalid argument must not match ErrIndexOutOfRange")
	}
	if !errors.Is(OutOfRange("x", 1, 0), ErrIndexOutOfRange) {
		t.Fatal("expected OutOfRange to match ErrIndexOutOfRange")
	}
	if got := KindOf(wrapped); got != KindInvalidArgument {
		t.Errorf("KindOf = %q, want %q", got, KindInvalidArgument)
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
}
