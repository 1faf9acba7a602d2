package astrolog

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/war-crycz/ai-kurz/components/healthcheck"
	"github.com/war-crycz/ai-kurz/config"
)

// ReportKey prints where the API key came from, it returns false when the key is missing
func ReportKey(w io.Writer, cfg *config.Config) bool {
	switch {
	case cfg.APIKey == "":
		fmt.Fprintln(w, "❌ CHYBA: OPENAI_API_KEY chybí!")
		return false
	case !cfg.KeyLooksValid():
		fmt.Fprintln(w, "⚠️  VAROVÁNÍ: API klíč nevypadá správně (měl by začínat 'sk-')")
	default:
		fmt.Fprintf(w, "✅ API klíč nalezen: %s\n", cfg.MaskedKey())
	}
	fmt.Fprintf(w, "   Zdroj: %s\n", cfg.KeySource)
	return true
}

// ReportSearchHealth checks the web search instance is alive and prints the result.
// A dead instance is only a warning, the logic agent still works without it.
func ReportSearchHealth(ctx context.Context, w io.Writer, checker *healthcheck.Checker, url string) healthcheck.Status {
	fmt.Fprintf(w, "🔌 Webový vyhledávač (SearxNG): %s\n", url)
	status := checker.Check(ctx, url)
	switch {
	case !status.Up:
		fmt.Fprintf(w, "   ⚠️  Možný problém s vyhledávačem: %v\n", status.Err)
	case status.StatusCode >= http.StatusBadRequest:
		fmt.Fprintf(w, "   ✅ Běží (odpověděl: %d)\n", status.StatusCode)
	default:
		fmt.Fprintf(w, "   ✅ Běží (status: %d)\n", status.StatusCode)
	}
	return status
}
