package dateutil

// Notes:
// - Parse: we test every supported input layout once plus rejection.
// - CompileFormat: token conversion, presets, bracket escapes and limits.
// - Display: parse+format round and the raw-string passthrough on failure.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestParse - Metadata date layouts
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr error
	}{
		{name: "ISO date", value: "2024-06-01", want: want},
		{name: "ISO date with spaces", value: "  2024-06-01 ", want: want},
		{name: "RFC3339", value: "2024-06-01T00:00:00Z", want: want},
		{name: "datetime without zone", value: "2024-06-01T00:00:00", want: want},
		{name: "datetime with space", value: "2024-06-01 00:00:00", want: want},
		{name: "slashes", value: "2024/06/01", want: want},
		{name: "long US", value: "June 1, 2024", want: want},
		{name: "short US", value: "Jun 1, 2024", want: want},
		{name: "day first", value: "1 June 2024", want: want},
		{name: "garbage", value: "next tuesday", wantErr: ErrInvalidDate},
		{name: "empty", value: "", wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.value, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestCompileFormat - Display format tokens
// ---------------------------------------------------------------------------

func TestCompileFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "YYYY", format: "YYYY", want: "2006"},
		{name: "YY", format: "YY", want: "06"},
		{name: "MMMM", format: "MMMM", want: "January"},
		{name: "MMM", format: "MMM", want: "Jan"},
		{name: "MM", format: "MM", want: "01"},
		{name: "M", format: "M", want: "1"},
		{name: "DD", format: "DD", want: "02"},
		{name: "D", format: "D", want: "2"},
		{name: "ISO", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "long preset", format: "long", want: "January 2, 2006"},
		{name: "preset is case-insensitive", format: "ISO", want: "2006-01-02"},
		{name: "european preset", format: "european", want: "02/01/2006"},
		{name: "brackets keep literals", format: "[Date]: YYYY", want: "Date: 2006"},
		{name: "empty brackets", format: "YYYY[]MM", want: "200601"},
		{name: "unbracketed D is a token", format: "Date", want: "2ate"},
		{name: "unclosed bracket", format: "[Date YYYY", wantErr: ErrInvalidDateFormat},
		{name: "empty", format: "", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: string(make([]byte, MaxDateFormatLength+1)), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CompileFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("CompileFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CompileFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("CompileFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDisplay - Parse then format
// ---------------------------------------------------------------------------

func TestDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		format  string
		want    string
		wantErr error
	}{
		{name: "default long format", value: "2024-01-01", format: DefaultDisplayFormat, want: "January 1, 2024"},
		{name: "iso format", value: "June 1, 2024", format: "iso", want: "2024-06-01"},
		{name: "unparsable passes through", value: "someday", format: DefaultDisplayFormat, want: "someday", wantErr: ErrInvalidDate},
		{name: "bad format passes through", value: "2024-01-01", format: "[oops", want: "2024-01-01", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Display(tt.value, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Display(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Display(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
