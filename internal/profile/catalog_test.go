package profile

import "testing"

func TestUserSubjects_NEETExcludesMaths(t *testing.T) {
	got := UserSubjects([]string{"NEET 2026"})

	want := []string{"Physics", "Physical Chemistry", "Organic Chemistry", "Inorganic Chemistry", "Biology"}
	if len(got) != len(want) {
		t.Fatalf("UserSubjects = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UserSubjects[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUserSubjects_JEEExcludesBiology(t *testing.T) {
	for _, subject := range UserSubjects([]string{"JEE Main 2026"}) {
		if subject == "Biology" {
			t.Error("JEE selection should not include Biology")
		}
	}
}

func TestUserSubjects_UnionAcrossExams(t *testing.T) {
	got := UserSubjects([]string{"NEET 2026", "JEE Advanced 2026"})
	if len(got) != len(SubjectCatalog) {
		t.Errorf("NEET+JEE union = %v, want full catalog", got)
	}
}

func TestUserSubjects_EmptySelectionShowsAll(t *testing.T) {
	got := UserSubjects(nil)
	if len(got) != len(SubjectCatalog) {
		t.Errorf("UserSubjects(nil) = %v, want full catalog", got)
	}
}

func TestMixCategory(t *testing.T) {
	tests := []struct {
		subject string
		want    string
	}{
		{"Physics", "Physics"},
		{"Physical Chemistry", "Chemistry"},
		{"Organic Chemistry", "Chemistry"},
		{"Inorganic Chemistry", "Chemistry"},
		{"Maths", "Maths"},
		{"Biology", "Biology"},
	}
	for _, tt := range tests {
		if got := MixCategory(tt.subject); got != tt.want {
			t.Errorf("MixCategory(%q) = %q, want %q", tt.subject, got, tt.want)
		}
	}
}

func TestExamCatalog_SubjectsAreCatalogSubjects(t *testing.T) {
	valid := make(map[string]bool)
	for _, s := range SubjectCatalog {
		valid[s] = true
	}
	for _, exam := range ExamCatalog {
		for _, s := range exam.Subjects {
			if !valid[s] {
				t.Errorf("exam %q references unknown subject %q", exam.Name, s)
			}
		}
	}
}
