package transport

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/muhammadheryan/pendaftaran/utils/logger"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var bulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func templateFuncs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"tanggal": func(raw string) string { return formatTanggal(raw, loc) },
		"inc":     func(i int) int { return i + 1 },
	}
}

// formatTanggal renders a server timestamp as an Indonesian long date
// ("17 Oktober 2026") in loc. Timestamps without an offset are read as local
// to loc, bare dates as UTC midnight. Unparseable values are shown as they are.
func formatTanggal(raw string, loc *time.Location) string {
	t, ok := parseTanggal(raw, loc)
	if !ok {
		return raw
	}
	t = t.In(loc)
	return fmt.Sprintf("%d %s %d", t.Day(), bulan[t.Month()-1], t.Year())
}

func parseTanggal(raw string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, true
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

type pages map[string]*template.Template

func loadPages(loc *time.Location) pages {
	names := []string{
		"landing.html",
		"pendaftaran_form.html",
		"pendaftaran_list.html",
		"success.html",
		"load_error.html",
		"confirm.html",
		"nilai.html",
	}
	p := make(pages, len(names))
	for _, name := range names {
		p[name] = template.Must(template.New(name).Funcs(templateFuncs(loc)).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return p
}

func (p pages) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	tmpl, ok := p[name]
	if !ok {
		logger.Ctx(r.Context()).Error("[render] unknown page", zap.String("page", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Ctx(r.Context()).Error("[render] err ExecuteTemplate", zap.String("page", name), zap.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
