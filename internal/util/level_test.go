package util

import "testing"

func TestComputeLevelBands(t *testing.T) {
	tests := []struct {
		xp        int
		wantLevel int
		wantName  string
	}{
		{0, 1, LevelNameInterested},
		{99, 1, LevelNameInterested},
		{100, 2, LevelNameNovice},
		{150, 2, LevelNameNovice},
		{199, 2, LevelNameNovice},
		{200, 3, LevelNameBeginner},
		{299, 3, LevelNameBeginner},
		{300, 4, LevelNameIntermediate},
		{399, 4, LevelNameIntermediate},
		{400, 5, LevelNameAdvanced},
		{499, 5, LevelNameAdvanced},
		{500, 6, LevelNameExpert},
		{10000, 6, LevelNameExpert},
	}

	for _, tt := range tests {
		level, name := ComputeLevel(tt.xp)
		if level != tt.wantLevel || name != tt.wantName {
			t.Errorf("ComputeLevel(%d) = (%d, %q), want (%d, %q)",
				tt.xp, level, name, tt.wantLevel, tt.wantName)
		}
	}
}

func TestComputeLevelIdempotent(t *testing.T) {
	for xp := 0; xp <= 600; xp += 7 {
		l1, n1 := ComputeLevel(xp)
		l2, n2 := ComputeLevel(xp)
		if l1 != l2 || n1 != n2 {
			t.Fatalf("ComputeLevel(%d) not stable: (%d,%q) vs (%d,%q)", xp, l1, n1, l2, n2)
		}
	}
}
