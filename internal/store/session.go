package store

import (
	"context"
	"errors"

	"github.com/forkful-app/forkful/internal/domain"
)

// User-facing failure messages for the session slice.
const (
	msgBadCredentials = "Invalid email or password"
	msgEmailTaken     = "Email already registered"
	msgRegisterFailed = "Registration failed"
	msgRestoreFailed  = "Could not restore session"
)

// checkAuth restores a persisted session. A missing token or profile
// is not an error: it means nobody is signed in. A profile that exists
// but does not parse is treated as corruption, clearing everything.
func (s *Store) checkAuth() {
	token, tokenErr := s.creds.LoadToken()
	user, userErr := s.creds.LoadUser()

	if errors.Is(tokenErr, domain.ErrNotFound) || errors.Is(userErr, domain.ErrNotFound) {
		s.clearCreds()
		s.apply(func(st *State) {
			st.Session = SessionState{}
		})
		s.log.Debug("no persisted session")
		return
	}

	if tokenErr != nil || userErr != nil {
		s.log.Warn("persisted session unreadable (token: %v, user: %v)", tokenErr, userErr)
		s.clearCreds()
		s.apply(func(st *State) {
			st.Session = SessionState{Status: domain.StatusFailed, Error: msgRestoreFailed}
		})
		return
	}

	user.Token = token
	s.apply(func(st *State) {
		st.Session = SessionState{
			User:            user,
			IsAuthenticated: true,
			Status:          domain.StatusSucceeded,
		}
	})
	s.log.Info("restored session for user %s", user.UserID)
}

// login authenticates and persists the resulting session. Every
// failure, network included, surfaces as the same bad-credentials
// message; the slice stays unauthenticated.
func (s *Store) login(ctx context.Context, cmd Login) {
	s.apply(func(st *State) {
		st.Session.Status = domain.StatusLoading
		st.Session.Error = ""
	})

	sess, err := s.auth.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		s.log.Warn("login failed for %s: %v", cmd.Email, err)
		s.apply(func(st *State) {
			st.Session.Status = domain.StatusFailed
			st.Session.Error = msgBadCredentials
		})
		return
	}

	s.persistSession(sess)
	s.apply(func(st *State) {
		st.Session = SessionState{
			User:            sess,
			IsAuthenticated: true,
			Status:          domain.StatusSucceeded,
		}
	})
}

// register creates an account and signs it in. An already-registered
// email gets its own message; anything else is a generic failure.
func (s *Store) register(ctx context.Context, cmd Register) {
	s.apply(func(st *State) {
		st.Session.Status = domain.StatusLoading
		st.Session.Error = ""
	})

	sess, err := s.auth.Register(ctx, cmd.Name, cmd.Email, cmd.Password)
	if err != nil {
		msg := msgRegisterFailed
		if errors.Is(err, domain.ErrEmailTaken) {
			msg = msgEmailTaken
		}
		s.log.Warn("registration failed for %s: %v", cmd.Email, err)
		s.apply(func(st *State) {
			st.Session.Status = domain.StatusFailed
			st.Session.Error = msg
		})
		return
	}

	s.persistSession(sess)
	s.apply(func(st *State) {
		st.Session = SessionState{
			User:            sess,
			IsAuthenticated: true,
			Status:          domain.StatusSucceeded,
		}
	})
}

// logout clears persisted credentials and resets the slice. It always
// succeeds: there is no server call, and a local clear failure is
// logged but does not keep the user signed in.
func (s *Store) logout() {
	s.clearCreds()
	s.apply(func(st *State) {
		st.Session = SessionState{}
	})
	s.log.Info("logged out")
}

func (s *Store) persistSession(sess *domain.Session) {
	if err := s.creds.SaveToken(sess.Token); err != nil {
		s.log.Warn("persisting token: %v", err)
	}
	if err := s.creds.SaveUser(sess); err != nil {
		s.log.Warn("persisting user: %v", err)
	}
}

func (s *Store) clearCreds() {
	if err := s.creds.Clear(); err != nil {
		s.log.Warn("clearing credentials: %v", err)
	}
}
