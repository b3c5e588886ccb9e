// file: internals/features/school/schedules/service/schedule_conflict_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    ScheduleWindow
		b    ScheduleWindow
		want bool
	}{
		{
			name: "irisan hari dan jam",
			a:    ScheduleWindow{Days: []int{3}, Start: "18:30", End: "19:30"},
			b:    ScheduleWindow{Days: []int{3}, Start: "19:00", End: "20:00"},
			want: true,
		},
		{
			name: "jam sama, hari beda",
			a:    ScheduleWindow{Days: []int{1}, Start: "18:30", End: "19:30"},
			b:    ScheduleWindow{Days: []int{2}, Start: "18:30", End: "19:30"},
			want: false,
		},
		{
			name: "hari sama, jam tidak beririsan",
			a:    ScheduleWindow{Days: []int{3}, Start: "08:00", End: "09:00"},
			b:    ScheduleWindow{Days: []int{3}, Start: "10:00", End: "11:00"},
			want: false,
		},
		{
			name: "back-to-back: akhir A = awal B bukan bentrok",
			a:    ScheduleWindow{Days: []int{3}, Start: "08:00", End: "09:00"},
			b:    ScheduleWindow{Days: []int{3}, Start: "09:00", End: "10:00"},
			want: false,
		},
		{
			name: "multi-hari, satu hari beririsan",
			a:    ScheduleWindow{Days: []int{1, 3, 5}, Start: "18:00", End: "20:00"},
			b:    ScheduleWindow{Days: []int{0, 3}, Start: "19:00", End: "21:00"},
			want: true,
		},
		{
			name: "interval identik",
			a:    ScheduleWindow{Days: []int{2}, Start: "10:00", End: "12:00"},
			b:    ScheduleWindow{Days: []int{2}, Start: "10:00", End: "12:00"},
			want: true,
		},
		{
			name: "interval satu di dalam yang lain",
			a:    ScheduleWindow{Days: []int{2}, Start: "10:00", End: "14:00"},
			b:    ScheduleWindow{Days: []int{2}, Start: "11:00", End: "12:00"},
			want: true,
		},
		{
			name: "data tidak lengkap: tanpa hari",
			a:    ScheduleWindow{Days: nil, Start: "10:00", End: "12:00"},
			b:    ScheduleWindow{Days: []int{2}, Start: "10:00", End: "12:00"},
			want: false,
		},
		{
			name: "data tidak lengkap: jam kosong",
			a:    ScheduleWindow{Days: []int{2}, Start: "", End: ""},
			b:    ScheduleWindow{Days: []int{2}, Start: "10:00", End: "12:00"},
			want: false,
		},
		{
			name: "format jam rusak",
			a:    ScheduleWindow{Days: []int{2}, Start: "25:99", End: "26:00"},
			b:    ScheduleWindow{Days: []int{2}, Start: "10:00", End: "12:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// simetris
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestOverlapDetail(t *testing.T) {
	a := ScheduleWindow{Days: []int{3}, Start: "18:30", End: "19:30"}
	b := ScheduleWindow{Days: []int{3}, Start: "19:00", End: "20:00"}

	detail := OverlapDetail(a, b)
	assert.Equal(t, "Rabu 19:00–19:30", detail)
}

func TestOverlapDetailMultiDay(t *testing.T) {
	a := ScheduleWindow{Days: []int{5, 1}, Start: "18:00", End: "20:00"}
	b := ScheduleWindow{Days: []int{1, 5}, Start: "19:00", End: "21:00"}

	detail := OverlapDetail(a, b)
	assert.Equal(t, "Senin,Jumat 19:00–20:00", detail)
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"19:30", 1170, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"1930", 0, false},
		{"", 0, false},
		{" 08:15 ", 495, true},
	}
	for _, tt := range tests {
		got, ok := parseMinutes(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}
