package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/store/memory"
	"github.com/jonathan/resume-builder/internal/types"
)

func newTestSession(t *testing.T, st *memory.Store, opts ...Option) *Session {
	t.Helper()
	s := New(st, nil, opts...)
	s.Init(context.Background())
	t.Cleanup(s.Close)
	return s
}

func TestInit_EmptyStoreSynthesizesDocument(t *testing.T) {
	st := memory.New()
	s := newTestSession(t, st)

	assert.False(t, s.IsLoading())

	doc := s.Resume()
	require.NotNil(t, doc)
	assert.Equal(t, "My Resume", doc.Name)

	// The synthesized document was persisted and made current.
	currentID, err := st.GetCurrentID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc.ID, currentID)

	all, err := st.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInit_LoadsCurrentDocument(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	first := types.NewDocument()
	first.Name = "first"
	require.NoError(t, st.Save(ctx, first))

	second := types.NewDocument()
	second.Name = "second"
	require.NoError(t, st.Save(ctx, second))
	require.NoError(t, st.SetCurrentID(ctx, first.ID))

	s := newTestSession(t, st)

	assert.Equal(t, first.ID, s.Resume().ID)
	assert.Len(t, s.AllResumes(), 2)
}

func TestInit_DanglingPointerFallsBackToMostRecent(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	older := types.NewDocument()
	older.Name = "older"
	require.NoError(t, st.Save(ctx, older))

	newer := types.NewDocument()
	newer.Name = "newer"
	newer.UpdatedAt = time.Now().Add(time.Hour)
	require.NoError(t, st.Save(ctx, newer))
	require.NoError(t, st.SetCurrentID(ctx, "deleted-id"))

	s := newTestSession(t, st)

	assert.Equal(t, newer.ID, s.Resume().ID)

	// The pointer was repaired to the loaded document.
	currentID, err := st.GetCurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, currentID)
}

func TestInit_LoadsStoredSettings(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	want := types.ResumeSettings{
		Template:    types.TemplateCreative,
		CareerLevel: types.LevelExecutive,
		CareerRole:  types.RoleManager,
		ATSMode:     false,
	}
	require.NoError(t, st.SaveSettings(ctx, want))

	s := newTestSession(t, st)

	assert.Equal(t, want, s.Settings())
}

func TestResume_ReturnsSnapshot(t *testing.T) {
	s := newTestSession(t, memory.New())

	snapshot := s.Resume()
	snapshot.Name = "mutated"

	assert.Equal(t, "My Resume", s.Resume().Name)
}

func TestLoadResume_SwitchesDocument(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	other := types.NewDocument()
	other.Name = "other"
	require.NoError(t, st.Save(ctx, other))

	base := types.NewDocument()
	base.Name = "base"
	require.NoError(t, st.Save(ctx, base))
	require.NoError(t, st.SetCurrentID(ctx, base.ID))

	s := newTestSession(t, st)
	require.NotEqual(t, other.ID, s.Resume().ID)

	require.NoError(t, s.LoadResume(ctx, other.ID))

	assert.Equal(t, other.ID, s.Resume().ID)
	currentID, err := st.GetCurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, other.ID, currentID)
}

func TestLoadResume_MissingIDIsNoOp(t *testing.T) {
	s := newTestSession(t, memory.New())
	before := s.Resume().ID

	require.NoError(t, s.LoadResume(context.Background(), "missing"))

	assert.Equal(t, before, s.Resume().ID)
}

func TestCreateNew_SwitchesAndPersists(t *testing.T) {
	st := memory.New()
	s := newTestSession(t, st)
	firstID := s.Resume().ID

	doc, err := s.CreateNew(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, firstID, doc.ID)
	assert.Equal(t, doc.ID, s.Resume().ID)
	assert.Len(t, s.AllResumes(), 2)

	currentID, err := st.GetCurrentID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc.ID, currentID)
}

func TestUpdateSettings_Persists(t *testing.T) {
	st := memory.New()
	s := newTestSession(t, st)

	err := s.UpdateSettings(context.Background(), func(rs *types.ResumeSettings) {
		rs.Template = types.TemplateModern
	})
	require.NoError(t, err)

	assert.Equal(t, types.TemplateModern, s.Settings().Template)

	stored, err := st.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, types.TemplateModern, stored.Template)
	// Untouched fields keep their defaults.
	assert.Equal(t, types.RoleDeveloper, stored.CareerRole)
}

func TestMutations_ApplyToDocument(t *testing.T) {
	s := newTestSession(t, memory.New())

	s.SetName("Platform Resume")
	s.UpdateSummary("Engineer with platform focus.")
	s.UpdatePersonalInfo(types.PersonalInfo{FullName: "Jordan Rivers"})
	s.ReorderSections([]string{"skills", "summary"})

	w := types.NewWorkExperience()
	w.Company = "Acme"
	s.AddWorkExperience(w)
	found := s.UpdateWorkExperience(w.ID, func(we *types.WorkExperience) {
		we.Position = "Engineer"
	})
	assert.True(t, found)
	assert.False(t, s.UpdateWorkExperience("missing", func(*types.WorkExperience) {}))

	doc := s.Resume()
	assert.Equal(t, "Platform Resume", doc.Name)
	assert.Equal(t, "Engineer with platform focus.", doc.Summary)
	assert.Equal(t, "Jordan Rivers", doc.PersonalInfo.FullName)
	assert.Equal(t, []string{"skills", "summary"}, doc.SectionOrder)
	require.Len(t, doc.WorkExperience, 1)
	assert.Equal(t, "Engineer", doc.WorkExperience[0].Position)

	s.DeleteWorkExperience(w.ID)
	assert.Empty(t, s.Resume().WorkExperience)
}

func TestMutations_EntryCollections(t *testing.T) {
	s := newTestSession(t, memory.New())

	e := types.NewEducation()
	s.AddEducation(e)
	assert.True(t, s.UpdateEducation(e.ID, func(ed *types.Education) { ed.Degree = "BSc" }))
	assert.Equal(t, "BSc", s.Resume().Education[0].Degree)
	s.DeleteEducation(e.ID)
	assert.Empty(t, s.Resume().Education)

	p := types.NewProject()
	s.AddProject(p)
	assert.True(t, s.UpdateProject(p.ID, func(pr *types.Project) { pr.Name = "Tooling" }))
	assert.Equal(t, "Tooling", s.Resume().Projects[0].Name)
	s.DeleteProject(p.ID)
	assert.Empty(t, s.Resume().Projects)

	c := types.NewCertification()
	s.AddCertification(c)
	assert.True(t, s.UpdateCertification(c.ID, func(ce *types.Certification) { ce.Name = "Cloud" }))
	assert.Equal(t, "Cloud", s.Resume().Certifications[0].Name)
	s.DeleteCertification(c.ID)
	assert.Empty(t, s.Resume().Certifications)

	sc := types.NewSkillCategory()
	s.AddSkillCategory(sc)
	assert.True(t, s.UpdateSkillCategory(sc.ID, func(k *types.SkillCategory) { k.Category = "Languages" }))
	assert.Equal(t, "Languages", s.Resume().Skills[0].Category)
	s.DeleteSkillCategory(sc.ID)
	assert.Empty(t, s.Resume().Skills)
}

func TestMutation_StampsUpdatedAt(t *testing.T) {
	s := newTestSession(t, memory.New())
	before := s.Resume().UpdatedAt

	time.Sleep(5 * time.Millisecond)
	s.SetName("renamed")

	assert.True(t, s.Resume().UpdatedAt.After(before))
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	s := newTestSession(t, memory.New())
	require.False(t, s.CanUndo())

	s.PushUndo()
	s.SetName("renamed")
	require.True(t, s.CanUndo())

	s.Undo()
	assert.Equal(t, "My Resume", s.Resume().Name)
	assert.False(t, s.CanUndo())
	require.True(t, s.CanRedo())

	s.Redo()
	assert.Equal(t, "renamed", s.Resume().Name)
	assert.True(t, s.CanUndo())
	assert.False(t, s.CanRedo())
}

func TestUndo_EmptyStackIsNoOp(t *testing.T) {
	s := newTestSession(t, memory.New())

	s.Undo()
	s.Redo()

	assert.Equal(t, "My Resume", s.Resume().Name)
}

func TestUndo_DepthCapped(t *testing.T) {
	s := newTestSession(t, memory.New())

	for i := 0; i < 25; i++ {
		s.PushUndo()
		s.SetName(fmt.Sprintf("name-%d", i))
	}

	undos := 0
	for s.CanUndo() {
		s.Undo()
		undos++
	}

	assert.Equal(t, maxUndoDepth, undos)
	// The five oldest snapshots were evicted.
	assert.Equal(t, "name-4", s.Resume().Name)
}

func TestMutation_ClearsRedoStack(t *testing.T) {
	s := newTestSession(t, memory.New())

	s.PushUndo()
	s.SetName("a")
	s.Undo()
	require.True(t, s.CanRedo())

	s.SetName("b")

	assert.False(t, s.CanRedo())
}

func TestLoadResume_ClearsRedoStack(t *testing.T) {
	st := memory.New()
	ctx := context.Background()

	other := types.NewDocument()
	require.NoError(t, st.Save(ctx, other))

	s := newTestSession(t, st)
	s.PushUndo()
	s.SetName("a")
	s.Undo()
	require.True(t, s.CanRedo())

	require.NoError(t, s.LoadResume(ctx, other.ID))

	assert.False(t, s.CanRedo())
}

func TestSaveCurrentResume_WritesImmediately(t *testing.T) {
	st := memory.New()
	s := newTestSession(t, st)
	saves := st.SaveCount()

	s.SetName("renamed")
	require.NoError(t, s.SaveCurrentResume(context.Background()))

	assert.Equal(t, saves+1, st.SaveCount())
	assert.False(t, s.IsSaving())
	assert.False(t, s.LastSaved().IsZero())

	stored, err := st.Get(context.Background(), s.Resume().ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", stored.Name)
}

func TestSaveCurrentResume_PropagatesStoreError(t *testing.T) {
	st := memory.New()
	s := newTestSession(t, st)

	st.FailSaves(true)
	err := s.SaveCurrentResume(context.Background())

	assert.Error(t, err)
	assert.False(t, s.IsSaving())
}
