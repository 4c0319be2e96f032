package workouts

import (
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
	ErrLogNotFound     = errors.New("workout log not found")
	ErrInvalidSet      = errors.New("invalid set: reps and weight must not be negative")
)

// Set is a single performed set, reps × weight.
type Set struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

func (s Set) Validate() error {
	if s.Reps < 0 || s.Weight < 0 {
		return ErrInvalidSet
	}
	return nil
}

func ValidateSets(sets []Set) error {
	for _, s := range sets {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Log is one exercise performed within a session.
// Date is nil for legacy logs, until their session gets updated.
type Log struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	SessionID    string     `json:"sessionId"`
	ExerciseID   string     `json:"exerciseId"`
	ExerciseName string     `json:"exerciseName"`
	Sets         []Set      `json:"sets"`
	Date         *time.Time `json:"date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

type Session struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Date          time.Time `json:"date"`
	BodyPartIDs   []string  `json:"bodyPartIds"`
	BodyPartNames []string  `json:"bodyPartNames"`
	Notes         string    `json:"notes,omitempty"`
}

type BodyPartRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionInput is what a client sends when creating or editing a session.
type SessionInput struct {
	BodyParts []BodyPartRef `json:"bodyParts"`
	Notes     string        `json:"notes"`
}

func (in SessionInput) BodyPartIDs() []string {
	ids := make([]string, 0, len(in.BodyParts))
	for _, bp := range in.BodyParts {
		ids = append(ids, bp.ID)
	}
	return ids
}

func (in SessionInput) BodyPartNames() []string {
	names := make([]string, 0, len(in.BodyParts))
	for _, bp := range in.BodyParts {
		names = append(names, bp.Name)
	}
	return names
}

type LogInput struct {
	SessionID  string `json:"sessionId"`
	ExerciseID string `json:"exerciseId"`
	Sets       []Set  `json:"sets"`
	Notes      string `json:"notes"`
}
