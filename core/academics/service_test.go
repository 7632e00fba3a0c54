package academics

import "testing"

func TestComputeGPA(t *testing.T) {
	tests := []struct {
		name    string
		entries []GpaEntry
		want    string
	}{
		{name: "no entries", want: "0.00"},
		{name: "zero units", entries: []GpaEntry{{Grade: "A", Units: 0}}, want: "0.00"},
		{
			name:    "all A is 5.00",
			entries: []GpaEntry{{Grade: "A", Units: 3}, {Grade: "A", Units: 2}},
			want:    "5.00",
		},
		{
			name:    "all F is 0.00",
			entries: []GpaEntry{{Grade: "F", Units: 3}, {Grade: "F", Units: 4}},
			want:    "0.00",
		},
		{
			name: "weighted mix",
			entries: []GpaEntry{
				{Grade: "A", Units: 3}, // 15
				{Grade: "B", Units: 2}, // 8
				{Grade: "D", Units: 1}, // 2
			},
			want: "4.17", // 25/6
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeGPA(tt.entries); got != tt.want {
				t.Errorf("ComputeGPA() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestComputeGPA_orderIndependent(t *testing.T) {
	entries := []GpaEntry{
		{Grade: "A", Units: 3},
		{Grade: "C", Units: 2},
		{Grade: "E", Units: 4},
	}
	reversed := []GpaEntry{entries[2], entries[1], entries[0]}
	if a, b := ComputeGPA(entries), ComputeGPA(reversed); a != b {
		t.Errorf("ComputeGPA() depends on entry order: %v != %v", a, b)
	}
}

func TestComputeCourseAverage(t *testing.T) {
	tests := []struct {
		name   string
		grades []CustomGrade
		want   string
	}{
		{name: "no grades", want: "N/A"},
		{name: "zero total", grades: []CustomGrade{{Score: 0, Total: 0}}, want: "N/A"},
		{
			name:   "two assessments",
			grades: []CustomGrade{{Score: 8, Total: 10}, {Score: 15, Total: 20}},
			want:   "76.67", // 23/30
		},
		{
			name:   "full marks",
			grades: []CustomGrade{{Score: 10, Total: 10}},
			want:   "100.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeCourseAverage(tt.grades); got != tt.want {
				t.Errorf("ComputeCourseAverage() = %v; want %v", got, tt.want)
			}
		})
	}
}

func Test_nextCourseID(t *testing.T) {
	if got := nextCourseID(Catalog{}); got != 1 {
		t.Errorf("nextCourseID() on empty catalog = %v; want 1", got)
	}
	cat := Catalog{
		"100": {"First": {{ID: 3}, {ID: 7}}},
		"200": {"Second": {{ID: 5}}},
	}
	if got := nextCourseID(cat); got != 8 {
		t.Errorf("nextCourseID() = %v; want 8", got)
	}
}
