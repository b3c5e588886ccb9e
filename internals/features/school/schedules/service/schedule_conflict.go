// file: internals/features/school/schedules/service/schedule_conflict.go
package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	classModel "bimbelku_backend/internals/features/school/classes/model"
)

/* ======================================================
   Deteksi bentrok jadwal mingguan (pure, tanpa DB)
====================================================== */

// ScheduleWindow: jadwal mingguan ringkas untuk perbandingan.
// Days: 0=Minggu..6=Sabtu; Start/End: "HH:MM" (interval setengah-terbuka).
type ScheduleWindow struct {
	Days  []int
	Start string
	End   string
}

var dayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// WindowFromClass membangun ScheduleWindow dari model kelas.
func WindowFromClass(c *classModel.ClassModel) ScheduleWindow {
	return ScheduleWindow{
		Days:  []int(c.ClassDayOfWeeks),
		Start: c.ClassTimeStart,
		End:   c.ClassTimeEnd,
	}
}

// parseMinutes: "HH:MM" → menit sejak tengah malam. ok=false kalau format rusak.
func parseMinutes(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func (w ScheduleWindow) complete() bool {
	if len(w.Days) == 0 {
		return false
	}
	if _, ok := parseMinutes(w.Start); !ok {
		return false
	}
	if _, ok := parseMinutes(w.End); !ok {
		return false
	}
	return true
}

func commonDays(a, b ScheduleWindow) []int {
	set := map[int]bool{}
	for _, d := range a.Days {
		set[d] = true
	}
	var out []int
	seen := map[int]bool{}
	for _, d := range b.Days {
		if set[d] && !seen[d] {
			out = append(out, d)
			seen[d] = true
		}
	}
	sort.Ints(out)
	return out
}

// Overlaps: true hanya jika irisan hari TIDAK kosong DAN interval jam
// beririsan ([startA,endA) vs [startB,endB): startA<endB ∧ startB<endA).
// Jadwal yang datanya tidak lengkap dianggap tidak bentrok — kebijakan
// degradasi aman untuk data lama, bukan gerbang validasi.
func Overlaps(a, b ScheduleWindow) bool {
	if !a.complete() || !b.complete() {
		return false
	}
	if len(commonDays(a, b)) == 0 {
		return false
	}
	startA, _ := parseMinutes(a.Start)
	endA, _ := parseMinutes(a.End)
	startB, _ := parseMinutes(b.Start)
	endB, _ := parseMinutes(b.End)
	return startA < endB && startB < endA
}

// OverlapDetail menyusun deskripsi irisan (hari + jendela jam) untuk pesan
// error ScheduleConflict. Asumsi: Overlaps(a,b) sudah true.
func OverlapDetail(a, b ScheduleWindow) string {
	days := commonDays(a, b)
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < 7 {
			names = append(names, dayNames[d])
		}
	}

	startA, _ := parseMinutes(a.Start)
	endA, _ := parseMinutes(a.End)
	startB, _ := parseMinutes(b.Start)
	endB, _ := parseMinutes(b.End)

	from := startA
	if startB > from {
		from = startB
	}
	to := endA
	if endB < to {
		to = endB
	}

	return fmt.Sprintf("%s %02d:%02d–%02d:%02d",
		strings.Join(names, ","), from/60, from%60, to/60, to%60)
}
