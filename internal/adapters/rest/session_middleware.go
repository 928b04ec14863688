package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/Tushar123097/Home-rent-app/internal/contextkeys"
	"github.com/Tushar123097/Home-rent-app/internal/core/port"
	"github.com/Tushar123097/Home-rent-app/internal/core/port/usecases_port"
	"github.com/Tushar123097/Home-rent-app/internal/core/session"
)

// SessionTokenHeader - заголовок ответа с действующим токеном сессии.
const SessionTokenHeader = "X-Session-Token"

type sessionKeyType struct{}

var sessionKey = sessionKeyType{}

type sessionEntry struct {
	session *session.Session
	token   string
}

// SessionMiddleware находит сессию по Bearer-токену или заводит новую
// и кладет ее в контекст запроса.
func SessionMiddleware(resolveUC usecases_port.ResolveSessionUseCasePort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))

			sess, activeToken, err := resolveUC.Execute(r.Context(), token)
			if err != nil {
				contextkeys.LoggerFromContext(r.Context()).Error("Failed to resolve session", err, nil)
				WriteJSONError(w, http.StatusInternalServerError, "Failed to resolve session")
				return
			}

			w.Header().Set(SessionTokenHeader, activeToken)

			logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"session_id": sess.ID()})
			ctx := contextkeys.ContextWithLogger(r.Context(), logger)
			ctx = context.WithValue(ctx, sessionKey, sessionEntry{session: sess, token: activeToken})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// sessionFromContext возвращает сессию и ее токен, положенные SessionMiddleware.
func sessionFromContext(ctx context.Context) (*session.Session, string, bool) {
	entry, ok := ctx.Value(sessionKey).(sessionEntry)
	if !ok || entry.session == nil {
		return nil, "", false
	}
	return entry.session, entry.token, true
}
