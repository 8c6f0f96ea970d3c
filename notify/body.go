package notify

import (
	"bytes"
	"html/template"
	"time"
	"unicode"

	"github.com/modelvision/leadgen/model"
)

var bodyTemplate = template.Must(template.New("notification").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">
  <h1 style="color: #d1416b; border-bottom: 1px solid #eee; padding-bottom: 10px;">New Model Application</h1>

  <div style="margin: 20px 0;">
    <h2 style="color: #333;">Applicant Details</h2>
    <p><strong>Name:</strong> {{.Signup.Name}}</p>
    <p><strong>Email:</strong> {{.Signup.Email}}</p>
    <p><strong>Age:</strong> {{.Signup.Age}}</p>
    <p><strong>Gender:</strong> {{.Gender}}</p>
    <p><strong>Mobile:</strong> {{.Signup.Mobile}}</p>
    {{if .Signup.ParentMobile}}<p><strong>Parent's Mobile:</strong> {{.Signup.ParentMobile}}</p>{{end}}
    <p><strong>Postcode:</strong> {{.Signup.Postcode}}</p>
    <p><strong>Category:</strong> {{.Category}}</p>
    <p><strong>Submission Date:</strong> {{.Date}}</p>
  </div>

  {{if .PhotoURL}}
  <div style="margin: 20px 0;">
    <h2 style="color: #333;">Photo</h2>
    <img src="{{.PhotoURL}}" alt="Applicant Photo" style="max-width: 100%; max-height: 300px; border-radius: 5px;">
    <p><a href="{{.PhotoURL}}" target="_blank">View full size</a></p>
  </div>
  {{end}}

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #777;">
    <p>This is an automated notification from the modeling agency website.</p>
  </div>
</div>`))

type bodyData struct {
	Signup   model.Signup
	Gender   string
	Category string
	PhotoURL string
	Date     string
}

// Body renders the HTML notification for a stored signup.
func Body(signup model.Signup) (string, error) {
	data := bodyData{
		Signup:   signup,
		Gender:   capitalize(signup.Gender),
		Category: "Not specified",
		Date:     time.Now().Format("02/01/2006, 15:04:05"),
	}
	if signup.Category != nil {
		data.Category = *signup.Category
	}
	if signup.PhotoURL != nil {
		data.PhotoURL = *signup.PhotoURL
	}

	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
