package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/CariHQ/nnp-web/internal/pkg/strutil"
)

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount in minor units with its currency symbol
func FormatMoney(minor int64, code string) string {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return fmt.Sprintf("%.2f %s", float64(minor)/100, strings.ToUpper(code))
	}
	return printer.Sprint(currency.Symbol(unit.Amount(float64(minor) / 100)))
}

// FormatCount groups digits for display
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

func formatDate(t any) string {
	switch v := t.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format("January 2, 2006")
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format("January 2, 2006")
	}
	return ""
}

// sectionData decodes a page section's JSON content for the templates
func sectionData(raw json.RawMessage) map[string]any {
	out := map[string]any{}
	if len(raw) == 0 {
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// prettyJSON indents section content for the editor textarea
func prettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// datetimeLocal formats t for an <input type="datetime-local">
func datetimeLocal(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02T15:04")
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":    FormatMoney,
		"count":    FormatCount,
		"date":     formatDate,
		"deref":    strutil.Deref,
		"section":  sectionData,
		"markdown": RenderMarkdown,
		"contains": contains,
		"json":     prettyJSON,
		"datetime": datetimeLocal,
		"year":     func() int { return time.Now().Year() },
	}
}
