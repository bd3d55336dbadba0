package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const welcomeSubject = "Welcome to Federal Bonds"

var welcomeHTML = template.Must(template.New("welcome").Parse(`<html>
<body style="font-family: sans-serif; color: #222;">
  <h2>Welcome, {{.Name}}!</h2>
  <p>Your Federal Bonds account is ready. Browse the bond catalog and make
  your first investment whenever you like. The minimum amount per investment
  is &euro;100.</p>
  <p>Happy investing,<br>The Federal Bonds team</p>
</body>
</html>`))

// RenderWelcome builds subject, text and HTML bodies for the welcome email.
func RenderWelcome(name string) (subject, text, html string, err error) {
	text = fmt.Sprintf("Welcome, %s!\n\nYour Federal Bonds account is ready. "+
		"Browse the bond catalog and make your first investment whenever you like. "+
		"The minimum amount per investment is EUR 100.\n\nThe Federal Bonds team", name)

	var buf bytes.Buffer
	if err = welcomeHTML.Execute(&buf, map[string]string{"Name": name}); err != nil {
		return "", "", "", err
	}
	return welcomeSubject, text, buf.String(), nil
}

// NewWelcomeJob builds the queue payload for a freshly registered user.
func NewWelcomeJob(email, name string) EmailJob {
	return EmailJob{
		To:       email,
		Template: TemplateWelcome,
		Data:     map[string]any{"Name": name},
	}
}
