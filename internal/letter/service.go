package letter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/ferdiebergado/sulat/internal/notify"
	"github.com/ferdiebergado/sulat/internal/roster"
)

var (
	ErrNameRequired  = errors.New("letter: name is required")
	ErrAlreadyOpened = errors.New("letter: already opened")
	ErrNotOpened     = errors.New("letter: not in opened list")
)

// Roster is the read-only view of people and letters the service needs.
type Roster interface {
	People() []roster.Person
	Find(name string) (roster.Person, error)
	Verify(name, password string) (roster.Person, error)
	Render(p roster.Person) (roster.Letter, error)
}

// PersonView is a roster entry as shown on the calendar.
type PersonView struct {
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	Opened bool   `json:"opened"`
}

type service struct {
	repo      Repository
	roster    Roster
	publisher notify.Publisher
}

var _ Service = (*service)(nil)

func NewService(repo Repository, r Roster, publisher notify.Publisher) Service {
	return &service{
		repo:      repo,
		roster:    r,
		publisher: publisher,
	}
}

func (s *service) Opened(ctx context.Context) ([]string, error) {
	names, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list opened letters: %w", err)
	}
	return names, nil
}

// MarkOpened records name as opened and announces it once. Opening a letter
// again changes nothing and reports alreadyOpened.
func (s *service) MarkOpened(ctx context.Context, name string) (opened []string, alreadyOpened bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrNameRequired
	}

	if _, err := s.roster.Find(name); err != nil {
		return nil, false, err
	}

	added, err := s.open(ctx, name)
	if err != nil {
		return nil, false, err
	}

	opened, err = s.Opened(ctx)
	if err != nil {
		return nil, false, err
	}

	return opened, !added, nil
}

func (s *service) open(ctx context.Context, name string) (bool, error) {
	added, err := s.repo.Add(ctx, name)
	if err != nil {
		return false, fmt.Errorf("mark %q as opened: %w", name, err)
	}

	if added {
		slog.Info("Letter opened.", "name", name)
		s.publisher.Publish(notify.NewEvent(notify.EventLetterOpened, name, ""))
	}

	return added, nil
}

// Unlock checks the password of name and, if the letter has not been opened
// yet, opens it and returns it.
func (s *service) Unlock(ctx context.Context, name, password string) (roster.Letter, []string, error) {
	p, err := s.roster.Verify(name, password)
	if err != nil {
		return roster.Letter{}, nil, err
	}

	letter, err := s.roster.Render(p)
	if err != nil {
		return roster.Letter{}, nil, err
	}

	added, err := s.open(ctx, p.Name)
	if err != nil {
		return roster.Letter{}, nil, err
	}

	if !added {
		return roster.Letter{}, nil, fmt.Errorf("unlock %q: %w", name, ErrAlreadyOpened)
	}

	opened, err := s.Opened(ctx)
	if err != nil {
		return roster.Letter{}, nil, err
	}

	return letter, opened, nil
}

func (s *service) People(ctx context.Context) ([]PersonView, error) {
	opened, err := s.Opened(ctx)
	if err != nil {
		return nil, err
	}

	people := s.roster.People()
	views := make([]PersonView, 0, len(people))
	for _, p := range people {
		views = append(views, PersonView{
			Name:   p.Name,
			Emoji:  p.Emoji,
			Opened: slices.Contains(opened, p.Name),
		})
	}
	return views, nil
}

// Restore makes an opened letter available again.
func (s *service) Restore(ctx context.Context, name string) ([]string, error) {
	removed, err := s.repo.Remove(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("restore %q: %w", name, err)
	}

	if !removed {
		return nil, fmt.Errorf("restore %q: %w", name, ErrNotOpened)
	}

	slog.Info("Letter restored.", "name", name)
	s.publisher.Publish(notify.NewEvent(notify.EventLetterRestored, name, fmt.Sprintf(MsgFmtRestored, name)))

	return s.Opened(ctx)
}

func (s *service) Reset(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("reset opened letters: %w", err)
	}

	slog.Info("All letters restored.")
	s.publisher.Publish(notify.NewEvent(notify.EventLettersReset, "", MsgAllRestored))

	return nil
}
