package analytics

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

type CtxKey string

const (
	ctxRequestIDKey CtxKey = "analytics_request_id"
)

// Envelope is what we attach to every event.
type Envelope struct {
	RequestID      string
	SessionID      string
	Platform       string
	AppVersion     string
	DeviceLocale   string
	SourceEventKey string
}

// FromRequest extracts event envelope fields from request headers.
func FromRequest(r *http.Request) Envelope {
	platform := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Platform")))
	if platform != "ios" && platform != "android" && platform != "web" {
		platform = "unknown"
	}

	locale := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if locale == "" {
		locale = strings.TrimSpace(r.Header.Get("X-Device-Locale"))
	}

	requestID, _ := RequestIDFromContext(r.Context())

	return Envelope{
		RequestID:      requestID,
		SessionID:      strings.TrimSpace(r.Header.Get("X-Session-Id")),
		Platform:       platform,
		AppVersion:     strings.TrimSpace(r.Header.Get("X-App-Version")),
		DeviceLocale:   locale,
		SourceEventKey: SourceEventKeyFromRequest(r),
	}
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxRequestIDKey).(string)
	return id, ok && id != ""
}

// Client-provided idempotency key (optional).
func SourceEventKeyFromRequest(r *http.Request) string {
	k := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if k != "" {
		return k
	}
	return strings.TrimSpace(r.Header.Get("X-Source-Event-Key"))
}

// Log writes one analytics event to logger.
// Never logs raw goal text; callers pass sanitized props.
func Log(logger *zerolog.Logger, env Envelope, eventName string, props map[string]any) {
	if eventName == "" || logger == nil {
		return
	}

	ev := logger.Info().
		Str("event", eventName).
		Str("platform", env.Platform)

	ev = strIfSet(ev, "request_id", env.RequestID)
	ev = strIfSet(ev, "session_id", env.SessionID)
	ev = strIfSet(ev, "app_version", env.AppVersion)
	ev = strIfSet(ev, "device_locale", env.DeviceLocale)
	ev = strIfSet(ev, "source_event_key", env.SourceEventKey)

	if len(props) > 0 {
		ev = ev.Fields(map[string]any{"props": props})
	}
	ev.Msg("analytics event")
}

func strIfSet(ev *zerolog.Event, key, value string) *zerolog.Event {
	if value == "" {
		return ev
	}
	return ev.Str(key, value)
}
