package profile

// DefaultProfile returns the fixed default document shape written on
// first sign-in. All six catalog subjects are present from the start.
func DefaultProfile() Profile {
	subjects := make(map[string]Subject, len(SubjectCatalog))
	for _, name := range SubjectCatalog {
		subjects[name] = Subject{Chapters: []Chapter{}}
	}
	return Profile{
		DailyGoal: 6,
		Tasks:     []Task{},
		Subjects:  subjects,
		MockTests: []MockTest{},
		KPPList:   []KPPRecord{},
		History:   map[string]float64{},
		Settings: Settings{
			Theme: ThemeNames[0],
			Mode:  ModeDark,
		},
		SelectedExams: []string{},
	}
}

// Clone returns a deep copy of p. Mutation helpers operate on clones so
// the previous value is never aliased.
func (p Profile) Clone() Profile {
	out := p

	out.Tasks = append([]Task(nil), p.Tasks...)
	out.MockTests = append([]MockTest(nil), p.MockTests...)
	out.KPPList = append([]KPPRecord(nil), p.KPPList...)
	out.SelectedExams = append([]string(nil), p.SelectedExams...)

	out.History = make(map[string]float64, len(p.History))
	for k, v := range p.History {
		out.History[k] = v
	}

	out.Subjects = make(map[string]Subject, len(p.Subjects))
	for name, sub := range p.Subjects {
		cloned := sub
		cloned.Chapters = make([]Chapter, len(sub.Chapters))
		for i, ch := range sub.Chapters {
			cloned.Chapters[i] = ch.clone()
		}
		out.Subjects[name] = cloned
	}

	return out
}

func (c Chapter) clone() Chapter {
	out := c
	out.Lectures = append([]bool(nil), c.Lectures...)
	out.MiscLectures = make([]MiscGroup, len(c.MiscLectures))
	for i, g := range c.MiscLectures {
		cloned := g
		cloned.Checked = append([]bool(nil), g.Checked...)
		out.MiscLectures[i] = cloned
	}
	return out
}
