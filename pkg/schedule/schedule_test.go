package schedule

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/streamcrew/schedgen/pkg/errors"
)

func TestTimeLabel(t *testing.T) {
	tests := []struct {
		name string
		time Time
		want string
	}{
		{
			name: "minute zero-padded",
			time: Time{Hour: 13, Minute: 0},
			want: "13:00",
		},
		{
			name: "hour not padded",
			time: Time{Hour: 9, Minute: 5},
			want: "9:05",
		},
		{
			name: "midnight",
			time: Time{},
			want: "0:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.time.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryLabel(t *testing.T) {
	e := Entry{Service: "twitch.tv", Username: "0froggy", Time: Time{Hour: 21}}
	want := "TWITCH.TV/\n0FROGGY"
	if got := e.Label(); got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestParseStreamSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    StreamSpec
		wantErr bool
	}{
		{
			name: "full spec",
			spec: "vinnydays;13:00",
			want: StreamSpec{Streamer: "vinnydays", Time: Time{Hour: 13, Minute: 0}},
		},
		{
			name: "single digit hour",
			spec: "ponzuzuju;9:30",
			want: StreamSpec{Streamer: "ponzuzuju", Time: Time{Hour: 9, Minute: 30}},
		},
		{
			name:    "missing separator",
			spec:    "vinnydays 13:00",
			wantErr: true,
		},
		{
			name:    "empty streamer",
			spec:    ";13:00",
			wantErr: true,
		},
		{
			name:    "missing minutes",
			spec:    "vinnydays;13",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			spec:    "vinnydays;25:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			spec:    "vinnydays;13:75",
			wantErr: true,
		},
		{
			name:    "non-numeric time",
			spec:    "vinnydays;noon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStreamSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStreamSpec(%q) = %v, want error", tt.spec, got)
				}
				if !errors.Is(err, errors.ErrCodeInvalidStream) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStream)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStreamSpec(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("ParseStreamSpec(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestScheduleSortByTime(t *testing.T) {
	s := Schedule{
		{Username: "c", Time: Time{Hour: 21}},
		{Username: "a", Time: Time{Hour: 13}},
		{Username: "b", Time: Time{Hour: 13}},
		{Username: "d", Time: Time{Hour: 13, Minute: 30}},
	}
	s.SortByTime()

	want := Schedule{
		{Username: "a", Time: Time{Hour: 13}},
		{Username: "b", Time: Time{Hour: 13}},
		{Username: "d", Time: Time{Hour: 13, Minute: 30}},
		{Username: "c", Time: Time{Hour: 21}},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("SortByTime() mismatch (-want +got):\n%s", diff)
	}
}
