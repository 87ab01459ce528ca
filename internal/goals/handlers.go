package goals

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"goal-server/internal/analytics"
)

// IndexHandler serves GET / with the current goal in the page title.
func IndexHandler(store *Store, logger *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goal := store.Get()

		// render into a buffer so a template failure can still become a 500
		var buf bytes.Buffer
		if err := RenderPage(&buf, goal); err != nil {
			logger.Error().Err(err).Msg("render index page")
			http.Error(w, "render error", http.StatusInternalServerError)
			return
		}

		analytics.Log(logger, analytics.FromRequest(r), "goal_viewed", map[string]any{
			"text_len": len(strings.TrimSpace(goal)),
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

// UpdateGoalHandler serves POST /goal. The form field "goal" replaces the
// current goal as-is; a missing field or unparsable body stores "".
func UpdateGoalHandler(store *Store, logger *zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goal := r.PostFormValue("goal")
		prev := store.Set(goal)

		logger.Info().Str("goal", goal).Msg("goal updated")

		analytics.Log(logger, analytics.FromRequest(r), "goal_updated", map[string]any{
			"text_len": len(strings.TrimSpace(goal)),
			"changed":  prev != goal,
		})

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
