package models

import "testing"

func TestAttendanceStatusValid(t *testing.T) {
	tests := []struct {
		name   string
		status AttendanceStatus
		want   bool
	}{
		{name: "hadir", status: StatusHadir, want: true},
		{name: "sakit", status: StatusSakit, want: true},
		{name: "izin", status: StatusIzin, want: true},
		{name: "alpa", status: StatusAlpa, want: true},
		{name: "empty", status: "", want: false},
		{name: "lowercase", status: "h", want: false},
		{name: "unknown letter", status: "X", want: false},
		{name: "full word", status: "Hadir", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotStatusesCount(t *testing.T) {
	statuses := SlotStatuses{
		1: StatusHadir,
		2: StatusHadir,
		3: StatusSakit,
		4: StatusIzin,
		5: StatusAlpa,
		6: StatusHadir,
	}

	if got := statuses.TotalSlots(); got != 6 {
		t.Errorf("TotalSlots() = %d, want 6", got)
	}
	if got := statuses.Count(StatusHadir); got != 3 {
		t.Errorf("Count(Hadir) = %d, want 3", got)
	}
	if got := statuses.Count(StatusSakit); got != 1 {
		t.Errorf("Count(Sakit) = %d, want 1", got)
	}
	if got := statuses.Count(StatusIzin); got != 1 {
		t.Errorf("Count(Izin) = %d, want 1", got)
	}
	if got := statuses.Count(StatusAlpa); got != 1 {
		t.Errorf("Count(Alpa) = %d, want 1", got)
	}
}

func TestAttendanceRecordTotals(t *testing.T) {
	record := &AttendanceRecord{
		SlotStatuses: SlotStatuses{
			1: StatusHadir,
			2: StatusAlpa,
			3: StatusAlpa,
			4: StatusHadir,
		},
	}

	if got := record.TotalHadir(); got != 2 {
		t.Errorf("TotalHadir() = %d, want 2", got)
	}
	if got := record.TotalAlpa(); got != 2 {
		t.Errorf("TotalAlpa() = %d, want 2", got)
	}
	if got := record.TotalSakit(); got != 0 {
		t.Errorf("TotalSakit() = %d, want 0", got)
	}
	if got := record.TotalIzin(); got != 0 {
		t.Errorf("TotalIzin() = %d, want 0", got)
	}
}
