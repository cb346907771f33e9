package types

// TemplateType selects the visual template used by the preview renderer.
type TemplateType string

// Available templates.
const (
	TemplateMinimal  TemplateType = "minimal"
	TemplateModern   TemplateType = "modern"
	TemplateCreative TemplateType = "creative"
)

// CareerLevel describes the user's seniority band.
type CareerLevel string

// Career levels.
const (
	LevelStudent      CareerLevel = "student"
	LevelFresher      CareerLevel = "fresher"
	LevelProfessional CareerLevel = "professional"
	LevelSenior       CareerLevel = "senior"
	LevelExecutive    CareerLevel = "executive"
)

// CareerRole drives role-specific keyword selection in scoring and
// enhancement.
type CareerRole string

// Career roles.
const (
	RoleDeveloper  CareerRole = "developer"
	RoleDesigner   CareerRole = "designer"
	RoleManager    CareerRole = "manager"
	RoleMarketing  CareerRole = "marketing"
	RoleSales      CareerRole = "sales"
	RoleAnalyst    CareerRole = "analyst"
	RoleEngineer   CareerRole = "engineer"
	RoleConsultant CareerRole = "consultant"
	RoleOther      CareerRole = "other"
)

// ResumeSettings is the per-user settings singleton. It has an independent
// lifecycle from documents.
type ResumeSettings struct {
	Template    TemplateType `json:"template"`
	CareerLevel CareerLevel  `json:"careerLevel"`
	CareerRole  CareerRole   `json:"careerRole"`
	ATSMode     bool         `json:"atsMode"`
}

// DefaultSettings returns the settings used when none have been stored yet.
func DefaultSettings() ResumeSettings {
	return ResumeSettings{
		Template:    TemplateMinimal,
		CareerLevel: LevelProfessional,
		CareerRole:  RoleDeveloper,
		ATSMode:     true,
	}
}

// ATSScore is the derived result of scoring a document. It is recomputed on
// every read and never persisted.
type ATSScore struct {
	Overall       int      `json:"overall"`
	ActionVerbs   int      `json:"actionVerbs"`
	Keywords      int      `json:"keywords"`
	Length        int      `json:"length"`
	Completeness  int      `json:"completeness"`
	BulletQuality int      `json:"bulletQuality"`
	Suggestions   []string `json:"suggestions"`
}
