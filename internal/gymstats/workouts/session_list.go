package workouts

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=session_list_mocks_test.go -package=workouts
type sessionStore interface {
	List(ctx context.Context, userID string) ([]Session, error)
	Get(ctx context.Context, userID, sessionID string) (*Session, error)
	Add(ctx context.Context, s Session) (*Session, error)
	Update(ctx context.Context, userID, sessionID string, in SessionInput) (*Session, error)
	DeleteCascade(ctx context.Context, userID, sessionID string) (int64, error)
}

// sessionCommand is a mutation of a user's session list. It is applied to the
// memoized list first, then committed to the store, then settled or reverted.
type sessionCommand interface {
	apply(sessions []Session) []Session
	commit(ctx context.Context, store sessionStore) error
	settle(sessions []Session) []Session
	revert(sessions []Session) []Session
}

// SessionList memoizes the session list of each user, newest first.
type SessionList struct {
	store sessionStore

	mu    sync.Mutex
	lists map[string][]Session
}

func NewSessionList(store sessionStore) *SessionList {
	return &SessionList{
		store: store,
		lists: make(map[string][]Session),
	}
}

// Sessions returns the memoized list, fetching it if it is missing, empty or forced.
func (l *SessionList) Sessions(ctx context.Context, userID string, force bool) ([]Session, error) {
	l.mu.Lock()
	cached, ok := l.lists[userID]
	l.mu.Unlock()
	if ok && len(cached) > 0 && !force {
		return slices.Clone(cached), nil
	}

	sessions, err := l.store.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.lists[userID] = sessions
	l.mu.Unlock()

	return slices.Clone(sessions), nil
}

// Session looks in the memoized list first, then in the store.
func (l *SessionList) Session(ctx context.Context, userID, sessionID string) (*Session, error) {
	l.mu.Lock()
	idx := indexOfSession(l.lists[userID], sessionID)
	if idx >= 0 {
		s := l.lists[userID][idx]
		l.mu.Unlock()
		return &s, nil
	}
	l.mu.Unlock()

	return l.store.Get(ctx, userID, sessionID)
}

func (l *SessionList) Add(ctx context.Context, s Session) (*Session, error) {
	cmd := &addSessionCommand{
		pendingID: "pending-" + uuid.NewString(),
		session:   s,
	}
	if err := l.execute(ctx, s.UserID, cmd); err != nil {
		return nil, err
	}
	return cmd.stored, nil
}

func (l *SessionList) Update(ctx context.Context, userID, sessionID string, in SessionInput) (*Session, error) {
	cmd := &updateSessionCommand{
		userID:    userID,
		sessionID: sessionID,
		input:     in,
	}
	if err := l.execute(ctx, userID, cmd); err != nil {
		return nil, err
	}
	return cmd.stored, nil
}

// Delete removes the session and all of its logs, returning the number of deleted logs.
func (l *SessionList) Delete(ctx context.Context, userID, sessionID string) (int64, error) {
	cmd := &deleteSessionCommand{
		userID:    userID,
		sessionID: sessionID,
	}
	if err := l.execute(ctx, userID, cmd); err != nil {
		return 0, err
	}
	return cmd.deletedLogs, nil
}

// Forget drops the memoized list of the user.
func (l *SessionList) Forget(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.lists, userID)
}

func (l *SessionList) execute(ctx context.Context, userID string, cmd sessionCommand) error {
	l.mutate(userID, cmd.apply)

	if err := cmd.commit(ctx, l.store); err != nil {
		l.mutate(userID, cmd.revert)
		return err
	}

	l.mutate(userID, cmd.settle)
	return nil
}

// mutate changes the memoized list only if it is loaded.
func (l *SessionList) mutate(userID string, fn func([]Session) []Session) {
	l.mu.Lock()
	defer l.mu.Unlock()
	sessions, ok := l.lists[userID]
	if !ok {
		return
	}
	l.lists[userID] = fn(sessions)
}

func indexOfSession(sessions []Session, sessionID string) int {
	return slices.IndexFunc(sessions, func(s Session) bool {
		return s.ID == sessionID
	})
}

type addSessionCommand struct {
	pendingID string
	session   Session
	stored    *Session
}

func (c *addSessionCommand) apply(sessions []Session) []Session {
	pending := c.session
	pending.ID = c.pendingID
	pending.Title = SessionTitle(pending.BodyPartNames, pending.Date)
	return slices.Insert(sessions, 0, pending)
}

func (c *addSessionCommand) commit(ctx context.Context, store sessionStore) error {
	stored, err := store.Add(ctx, c.session)
	if err != nil {
		return err
	}
	c.stored = stored
	return nil
}

func (c *addSessionCommand) settle(sessions []Session) []Session {
	if idx := indexOfSession(sessions, c.pendingID); idx >= 0 {
		sessions[idx] = *c.stored
	}
	return sessions
}

func (c *addSessionCommand) revert(sessions []Session) []Session {
	if idx := indexOfSession(sessions, c.pendingID); idx >= 0 {
		return slices.Delete(sessions, idx, idx+1)
	}
	return sessions
}

type updateSessionCommand struct {
	userID    string
	sessionID string
	input     SessionInput
	previous  *Session
	stored    *Session
}

func (c *updateSessionCommand) apply(sessions []Session) []Session {
	idx := indexOfSession(sessions, c.sessionID)
	if idx < 0 {
		return sessions
	}
	previous := sessions[idx]
	c.previous = &previous

	updated := previous
	updated.BodyPartIDs = c.input.BodyPartIDs()
	updated.BodyPartNames = c.input.BodyPartNames()
	updated.Notes = c.input.Notes
	updated.Title = SessionTitle(updated.BodyPartNames, updated.Date)
	sessions[idx] = updated
	return sessions
}

func (c *updateSessionCommand) commit(ctx context.Context, store sessionStore) error {
	stored, err := store.Update(ctx, c.userID, c.sessionID, c.input)
	if err != nil {
		return err
	}
	c.stored = stored
	return nil
}

func (c *updateSessionCommand) settle(sessions []Session) []Session {
	if idx := indexOfSession(sessions, c.sessionID); idx >= 0 {
		sessions[idx] = *c.stored
	}
	return sessions
}

func (c *updateSessionCommand) revert(sessions []Session) []Session {
	if c.previous == nil {
		return sessions
	}
	if idx := indexOfSession(sessions, c.sessionID); idx >= 0 {
		sessions[idx] = *c.previous
	}
	return sessions
}

type deleteSessionCommand struct {
	userID      string
	sessionID   string
	removed     *Session
	removedAt   int
	deletedLogs int64
}

func (c *deleteSessionCommand) apply(sessions []Session) []Session {
	idx := indexOfSession(sessions, c.sessionID)
	if idx < 0 {
		return sessions
	}
	removed := sessions[idx]
	c.removed = &removed
	c.removedAt = idx
	return slices.Delete(sessions, idx, idx+1)
}

func (c *deleteSessionCommand) commit(ctx context.Context, store sessionStore) error {
	deleted, err := store.DeleteCascade(ctx, c.userID, c.sessionID)
	if err != nil {
		return err
	}
	c.deletedLogs = deleted
	return nil
}

func (c *deleteSessionCommand) settle(sessions []Session) []Session {
	return sessions
}

func (c *deleteSessionCommand) revert(sessions []Session) []Session {
	if c.removed == nil {
		return sessions
	}
	return slices.Insert(sessions, min(c.removedAt, len(sessions)), *c.removed)
}
