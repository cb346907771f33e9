package render

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateData is the shape handed to the HTML template.
type TemplateData struct {
	Doc      *types.ResumeDocument
	Template types.TemplateType
	Sections []string
}

// RenderHTML renders a standalone HTML page for the document using the
// template style from settings. Sections appear in the document's
// SectionOrder; unknown section names are skipped.
func RenderHTML(doc *types.ResumeDocument, settings types.ResumeSettings) (string, error) {
	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"join": func(items []string) string { return strings.Join(items, ", ") },
	}).Parse(resumeTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse resume template", Cause: err}
	}

	sections := doc.SectionOrder
	if len(sections) == 0 {
		sections = types.DefaultSectionOrder
	}

	var sb strings.Builder
	data := TemplateData{
		Doc:      doc,
		Template: settings.Template,
		Sections: sections,
	}
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{Message: "failed to execute resume template", Cause: err}
	}

	return sb.String(), nil
}

const resumeTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Doc.Name}}</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; margin: 2.5rem auto; max-width: 48rem; color: #1a1a1a; }
body.modern { font-family: Helvetica, Arial, sans-serif; }
body.creative { font-family: Helvetica, Arial, sans-serif; color: #222; }
body.creative h2 { color: #14532d; }
h1 { margin-bottom: 0; font-size: 1.7rem; }
h2 { border-bottom: 1px solid #999; font-size: 1.05rem; text-transform: uppercase; letter-spacing: 0.05em; margin-top: 1.4rem; }
.contact { color: #444; font-size: 0.9rem; }
.entry { margin-bottom: 0.8rem; }
.entry-head { display: flex; justify-content: space-between; font-weight: bold; }
.entry-sub { font-style: italic; font-size: 0.92rem; }
ul { margin: 0.3rem 0 0 1.2rem; padding: 0; }
li { margin-bottom: 0.15rem; font-size: 0.93rem; }
p { font-size: 0.93rem; }
</style>
</head>
<body class="{{.Template}}">
<h1>{{.Doc.PersonalInfo.FullName}}</h1>
{{with .Doc.PersonalInfo.Title}}<div class="contact">{{.}}</div>{{end}}
<div class="contact">
{{- with .Doc.PersonalInfo.Email}}{{.}}{{end}}
{{- with .Doc.PersonalInfo.Phone}} &middot; {{.}}{{end}}
{{- with .Doc.PersonalInfo.Location}} &middot; {{.}}{{end}}
{{- with .Doc.PersonalInfo.LinkedIn}} &middot; {{.}}{{end}}
{{- with .Doc.PersonalInfo.Website}} &middot; {{.}}{{end}}
</div>

{{range .Sections}}
{{if eq . "summary"}}{{with $.Doc.Summary}}
<h2>Summary</h2>
<p>{{.}}</p>
{{end}}{{end}}

{{if eq . "workExperience"}}{{with $.Doc.WorkExperience}}
<h2>Work Experience</h2>
{{range .}}
<div class="entry">
<div class="entry-head"><span>{{.Position}}</span><span>{{.StartDate}} &ndash; {{if .Current}}Present{{else}}{{.EndDate}}{{end}}</span></div>
<div class="entry-sub">{{.Company}}{{with .Location}}, {{.}}{{end}}</div>
{{with .Description}}<p>{{.}}</p>{{end}}
{{with .Bullets}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}{{end}}

{{if eq . "education"}}{{with $.Doc.Education}}
<h2>Education</h2>
{{range .}}
<div class="entry">
<div class="entry-head"><span>{{.Degree}}{{with .Field}}, {{.}}{{end}}</span><span>{{.StartDate}} &ndash; {{.EndDate}}</span></div>
<div class="entry-sub">{{.Institution}}{{with .GPA}} &middot; GPA {{.}}{{end}}</div>
{{with .Highlights}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}{{end}}

{{if eq . "skills"}}{{with $.Doc.Skills}}
<h2>Skills</h2>
<ul>
{{range .}}<li><strong>{{.Category}}:</strong> {{join .Skills}}</li>{{end}}
</ul>
{{end}}{{end}}

{{if eq . "projects"}}{{with $.Doc.Projects}}
<h2>Projects</h2>
{{range .}}
<div class="entry">
<div class="entry-head"><span>{{.Name}}</span></div>
{{with .Technologies}}<div class="entry-sub">{{join .}}</div>{{end}}
{{with .Description}}<p>{{.}}</p>{{end}}
{{with .Bullets}}<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>{{end}}
</div>
{{end}}
{{end}}{{end}}

{{if eq . "certifications"}}{{with $.Doc.Certifications}}
<h2>Certifications</h2>
<ul>
{{range .}}<li>{{.Name}}{{with .Issuer}} &mdash; {{.}}{{end}}{{with .Date}} ({{.}}){{end}}</li>{{end}}
</ul>
{{end}}{{end}}
{{end}}
</body>
</html>
`
