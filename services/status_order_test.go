package services

import (
	"testing"

	"backend/models"
)

func TestStatusOrderIsTotalAndStable(t *testing.T) {
	all := AllStatuses()
	if len(all) != 18 {
		t.Fatalf("expected 18 statuses, got %d", len(all))
	}
	if all[0] != models.StatusNouveau || all[len(all)-1] != models.StatusAbandonne {
		t.Errorf("unexpected order endpoints: %s .. %s", all[0], all[len(all)-1])
	}
	seen := map[int]string{}
	for _, s := range all {
		idx, ok := StatusIndex(s)
		if !ok {
			t.Fatalf("status %q missing from index", s)
		}
		if prev, dup := seen[idx]; dup {
			t.Fatalf("statuses %q and %q share index %d", prev, s, idx)
		}
		seen[idx] = s
	}
}

func TestNormalizeChantierStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{models.StatusChantierEnCours, models.StatusChantierEnCours, true},
		{"PLANIFIE", models.StatusAPlanifier, true},
		{"EN_PREPARATION", models.StatusAPlanifier, true},
		{"SUSPENDU", models.StatusEnCours, true},
		{"TERMINE", models.StatusLivre, true},
		{"LIVRE", models.StatusLivre, true},
		{"EN_COURS", models.StatusEnCours, true},
		{"RIEN_DU_TOUT", "RIEN_DU_TOUT", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeChantierStatus(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeChantierStatus(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
