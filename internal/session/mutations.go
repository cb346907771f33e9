package session

import (
	"github.com/jonathan/resume-builder/internal/types"
)

// mutate applies one mutation to the live document, stamps UpdatedAt, clears
// the redo stack and schedules autosave. Every externally visible mutation
// funnels through here.
func (s *Session) mutate(fn func(doc *types.ResumeDocument)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resume == nil || s.closed {
		return
	}
	fn(s.resume)
	s.resume.Touch()
	s.redoStack = nil
	s.scheduleAutosaveLocked()
}

// ApplyDocument applies an arbitrary partial update to the whole document.
// Fine-grained callers should prefer the typed mutations below.
func (s *Session) ApplyDocument(update func(*types.ResumeDocument)) {
	s.mutate(update)
}

// SetName renames the document.
func (s *Session) SetName(name string) {
	s.mutate(func(doc *types.ResumeDocument) { doc.Name = name })
}

// UpdateSummary replaces the professional summary.
func (s *Session) UpdateSummary(summary string) {
	s.mutate(func(doc *types.ResumeDocument) { doc.Summary = summary })
}

// UpdatePersonalInfo replaces the contact block.
func (s *Session) UpdatePersonalInfo(info types.PersonalInfo) {
	s.mutate(func(doc *types.ResumeDocument) { doc.PersonalInfo = info })
}

// ReorderSections replaces the presentational section order.
func (s *Session) ReorderSections(order []string) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.SectionOrder = append([]string(nil), order...)
	})
}

// AddWorkExperience appends a work experience entry.
func (s *Session) AddWorkExperience(w types.WorkExperience) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.WorkExperience = append(doc.WorkExperience, w)
	})
}

// UpdateWorkExperience mutates the entry with the given id and reports
// whether it was found.
func (s *Session) UpdateWorkExperience(id string, update func(*types.WorkExperience)) bool {
	found := false
	s.mutate(func(doc *types.ResumeDocument) {
		for i := range doc.WorkExperience {
			if doc.WorkExperience[i].ID == id {
				update(&doc.WorkExperience[i])
				found = true
				return
			}
		}
	})
	return found
}

// DeleteWorkExperience removes the entry with the given id.
func (s *Session) DeleteWorkExperience(id string) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.WorkExperience = deleteByID(doc.WorkExperience, id, func(w types.WorkExperience) string { return w.ID })
	})
}

// AddEducation appends an education entry.
func (s *Session) AddEducation(e types.Education) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.Education = append(doc.Education, e)
	})
}

// UpdateEducation mutates the entry with the given id and reports whether it
// was found.
func (s *Session) UpdateEducation(id string, update func(*types.Education)) bool {
	found := false
	s.mutate(func(doc *types.ResumeDocument) {
		for i := range doc.Education {
			if doc.Education[i].ID == id {
				update(&doc.Education[i])
				found = true
				return
			}
		}
	})
	return found
}

// DeleteEducation removes the entry with the given id.
func (s *Session) DeleteEducation(id string) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.Education = deleteByID(doc.Education, id, func(e types.Education) string { return e.ID })
	})
}

// AddProject appends a project entry.
func (s *Session) AddProject(p types.Project) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.Projects = append(doc.Projects, p)
	})
}

// UpdateProject mutates the entry with the given id and reports whether it
// was found.
func (s *Session) UpdateProject(id string, update func(*types.Project)) bool {
	found := false
	s.mutate(func(doc *types.ResumeDocument) {
		for i := range doc.Projects {
			if doc.Projects[i].ID == id {
				update(&doc.Projects[i])
				found = true
				return
			}
		}
	})
	return found
}

// DeleteProject removes the entry with the given id.
func (s *Session) DeleteProject(id string) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.Projects = deleteByID(doc.Projects, id, func(p types.Project) string { return p.ID })
	})
}

// AddCertification appends a certification entry.
func (s *Session) AddCertification(c types.Certification) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.Certifications = append(doc.Certifications, c)
	})
}

// UpdateCertification mutates the entry with the given id and reports whether
// it was found.
func (s *Session) UpdateCertification(id string, update func(*types.Certification)) bool {
	found := false
	s.mutate(func(doc *types.ResumeDocument) {
		for i := range doc.Certifications {
			if doc.Certifications[i].ID == id {
				update(&doc.Certifications[i])
				found = true
				return
			}
		}
	})
	return found
}

// DeleteCertification removes the entry with the given id.
func (s *Session) DeleteCertification(id string) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.Certifications = deleteByID(doc.Certifications, id, func(c types.Certification) string { return c.ID })
	})
}

// AddSkillCategory appends a skill category.
func (s *Session) AddSkillCategory(sc types.SkillCategory) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.Skills = append(doc.Skills, sc)
	})
}

// UpdateSkillCategory mutates the category with the given id and reports
// whether it was found.
func (s *Session) UpdateSkillCategory(id string, update func(*types.SkillCategory)) bool {
	found := false
	s.mutate(func(doc *types.ResumeDocument) {
		for i := range doc.Skills {
			if doc.Skills[i].ID == id {
				update(&doc.Skills[i])
				found = true
				return
			}
		}
	})
	return found
}

// DeleteSkillCategory removes the category with the given id.
func (s *Session) DeleteSkillCategory(id string) {
	s.mutate(func(doc *types.ResumeDocument) {
		doc.Skills = deleteByID(doc.Skills, id, func(sc types.SkillCategory) string { return sc.ID })
	})
}

// deleteByID filters out the element whose id matches.
func deleteByID[T any](entries []T, id string, idOf func(T) string) []T {
	out := entries[:0]
	for _, e := range entries {
		if idOf(e) != id {
			out = append(out, e)
		}
	}
	return out
}
