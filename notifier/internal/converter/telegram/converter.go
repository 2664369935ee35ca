package converter

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
	"time"

	"github.com/you-humble/consultancy-desk/notifier/internal/model"
)

// markdownEscaper escapes the Markdown (v1) control characters Telegram recognises.
var markdownEscaper = strings.NewReplacer(
	"_", `\_`,
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
)

var (
	//go:embed templates/payment_resolved.tmpl
	paymentResolvedFS       embed.FS
	paymentResolvedTemplate = template.Must(
		template.New("payment_resolved.tmpl").
			Funcs(template.FuncMap{"md": markdownEscaper.Replace}).
			ParseFS(paymentResolvedFS, "templates/payment_resolved.tmpl"),
	)
)

func BuildPaymentResolved(event model.PaymentResolved) (string, error) {
	n := model.PaymentResolvedNotification{
		FormID:         event.FormID.String(),
		Service:        event.Service,
		Amount:         event.Amount.StringFixed(2),
		Succeeded:      event.Succeeded(),
		Email:          event.Email,
		CardholderName: event.CardholderName,
		CardLast4:      event.CardLast4,
		ResolvedAt:     event.ResolvedAt.UTC().Format(time.DateTime),
	}

	var buf bytes.Buffer
	if err := paymentResolvedTemplate.Execute(&buf, n); err != nil {
		return "", err
	}

	return buf.String(), nil
}
