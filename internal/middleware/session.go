package middleware

import (
	"context"
	"database/sql"

	"github.com/deppfellow/bff-service/internal/database"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionKey is the Echo context key holding the request's database session.
const SessionKey = "db_session"

// SessionOpener hands out dedicated connections. *database.Database satisfies it.
type SessionOpener interface {
	Session(ctx context.Context) (*sql.Conn, error)
}

// ErrNoSession means a route using the database was registered outside
// the Session middleware.
var ErrNoSession = errors.New("no database session bound to request")

// SessionMiddleware gives every request at most one database connection.
// The connection is checked out on first use, so requests rejected by
// routing or validation never touch the pool, and it is returned once the
// handler is done, whether it succeeded, failed or panicked.
type SessionMiddleware struct {
	opener SessionOpener
}

func NewSessionMiddleware(opener SessionOpener) *SessionMiddleware {
	return &SessionMiddleware{opener: opener}
}

// requestSession holds the request's connection once it has been opened.
type requestSession struct {
	opener SessionOpener
	conn   *sql.Conn
}

func (s *requestSession) open(ctx context.Context) (*sql.Conn, error) {
	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.opener.Session(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire database session")
	}
	s.conn = conn
	return conn, nil
}

// Session returns the Echo middleware. It only binds a lazy holder; a
// connection that cannot be acquired later fails the request with a 500.
func (sm *SessionMiddleware) Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := &requestSession{opener: sm.opener}
			c.Set(SessionKey, session)

			defer func() {
				c.Set(SessionKey, nil)
				if session.conn == nil {
					return
				}
				if err := session.conn.Close(); err != nil {
					GetLogger(c).Error().Err(err).Msg("failed to release database session")
				}
			}()

			return next(c)
		}
	}
}

// GetSession returns the request's database session, checking a
// connection out of the pool on the first call.
func GetSession(c echo.Context) (database.DBTX, error) {
	session, ok := c.Get(SessionKey).(*requestSession)
	if !ok || session == nil {
		return nil, errors.WithStack(ErrNoSession)
	}
	return session.open(c.Request().Context())
}
