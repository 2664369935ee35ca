package contact

import (
	"bytes"
	"embed"
	"net/url"
	"strings"
	"text/template"

	"github.com/you-humble/consultancy-desk/intake/internal/model"
)

var (
	//go:embed templates/whatsapp.tmpl
	whatsappFS       embed.FS
	whatsappTemplate = template.Must(template.ParseFS(whatsappFS, "templates/whatsapp.tmpl"))
)

type chatMessage struct {
	Name    string
	Email   string
	Company string
	Service string
	Message string
}

// BuildChatText renders the pre-filled chat message for a contact request.
func BuildChatText(req model.ContactRequest) (string, error) {
	var buf bytes.Buffer
	if err := whatsappTemplate.Execute(&buf, chatMessage{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.CompanyOrNA(),
		Service: req.Service,
		Message: req.Message,
	}); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// BuildChatURL returns https://<host>/send?phone=<phone>&text=<text> with the text
// percent-encoded the way browsers encode a URI component (spaces as %20).
func BuildChatURL(host, phone, text string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     "/send",
		RawQuery: "phone=" + encodeComponent(phone) + "&text=" + encodeComponent(text),
	}
	return u.String()
}

// componentUnescaper undoes the QueryEscape escapes that a URI component leaves alone.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
