package interview

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/planwright/internal/errors"
)

// SaveSession writes a session to disk so an interrupted interview can
// be resumed later.
func SaveSession(s *Session, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "encoding interview session", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed,
			fmt.Sprintf("writing %s", path), err)
	}
	return nil
}

// LoadSession reads a saved session back from disk.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound,
				fmt.Sprintf("interview session not found: %s", path)).
				WithSuggestion("Start a new interview with 'planwright interview'")
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("reading %s", path), err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed,
			fmt.Sprintf("parsing %s", path), err).
			WithSuggestion("Delete the session file and start the interview over")
	}
	return &s, nil
}

// ResumeEngine rebuilds an engine from a saved session, continuing
// from the question it was interrupted at.
func ResumeEngine(s *Session) (*Engine, error) {
	if _, ok := GetPresets()[s.Preset]; !ok {
		return nil, errors.NewInterviewPresetUnknownError(s.Preset)
	}
	if len(s.Questions) == 0 || s.Current < 0 || s.Current > len(s.Questions) {
		return nil, errors.New(errors.ErrCodeInterviewAlreadyStarted,
			"saved interview session is inconsistent").
			WithSuggestion("Delete the session file and start the interview over")
	}
	if s.Answers == nil {
		s.Answers = make(map[string]Answer)
	}
	return &Engine{session: s}, nil
}
