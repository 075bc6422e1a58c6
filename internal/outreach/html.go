package outreach

import (
	"bytes"
	"fmt"
	"html/template"
)

var htmlTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial; color: #333; }
        .container { max-width: 600px; margin: 20px auto; padding: 20px; }
        h2 { color: #2c3e50; }
    </style>
</head>
<body>
    <div class="container">
        <h2>{{.Subject}}</h2>
        <p style="white-space: pre-line;">{{.Body}}</p>
        <p>Best regards,<br/>HR Team</p>
    </div>
</body>
</html>`))

// RenderHTML renders the HTML version of the email. Subject and body are
// escaped.
func RenderHTML(e Email) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, e); err != nil {
		return "", fmt.Errorf("render email html: %w", err)
	}
	return buf.String(), nil
}
