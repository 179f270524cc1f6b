// Package roster holds the people who can receive a letter and the letters
// themselves. A roster is loaded once at startup and never changes.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ferdiebergado/sulat/internal/platform/hash"
	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound      = errors.New("roster: person not found")
	ErrWrongPassword = errors.New("roster: wrong password")
	ErrInvalidRoster = errors.New("roster: invalid roster")
)

// Person is one roster entry. Password is only read from the roster file
// and is replaced by PasswordHash when the roster is built.
type Person struct {
	Name         string `yaml:"name"`
	Emoji        string `yaml:"emoji"`
	Password     string `yaml:"password,omitempty"`
	PasswordHash string `yaml:"password_hash,omitempty"`
	Letter       string `yaml:"letter"`
}

func (p Person) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.Name),
		slog.String("emoji", p.Emoji),
	)
}

type rosterFile struct {
	People []Person `yaml:"people"`
}

type Roster struct {
	people   []Person
	index    map[string]int
	hasher   hash.Hasher
	markdown goldmark.Markdown
}

// NormalizePassword case-folds a password so that unlocking ignores case.
// Hashes in the roster must be made from the normalized form.
func NormalizePassword(password string) string {
	return cases.Fold().String(password)
}

// Load reads a YAML roster file.
func Load(path string, hasher hash.Hasher) (*Roster, error) {
	path = filepath.Clean(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file %s: %w", path, err)
	}

	r, err := Parse(data, hasher)
	if err != nil {
		return nil, fmt.Errorf("parse roster file %s: %w", path, err)
	}

	slog.Info("Roster loaded.", "file", path, "people", len(r.people))
	return r, nil
}

func Parse(data []byte, hasher hash.Hasher) (*Roster, error) {
	var f rosterFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidRoster, err)
	}

	return New(f.People, hasher)
}

// New builds a roster. Entries that carry a plain password are hashed here.
func New(people []Person, hasher hash.Hasher) (*Roster, error) {
	if len(people) == 0 {
		return nil, fmt.Errorf("%w: no people", ErrInvalidRoster)
	}

	r := &Roster{
		people:   make([]Person, 0, len(people)),
		index:    make(map[string]int, len(people)),
		hasher:   hasher,
		markdown: goldmark.New(),
	}

	for i, p := range people {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidRoster, i)
		}

		if _, dup := r.index[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidRoster, p.Name)
		}

		if p.PasswordHash == "" {
			if p.Password == "" {
				return nil, fmt.Errorf("%w: %q has no password", ErrInvalidRoster, p.Name)
			}

			slog.Warn("Roster entry has a plain text password, hashing it at startup.", "person", p)
			hashed, err := hasher.Hash(NormalizePassword(p.Password))
			if err != nil {
				return nil, fmt.Errorf("hash password of %q: %w", p.Name, err)
			}
			p.PasswordHash = hashed
		}
		p.Password = ""

		if p.Emoji == "" {
			p.Emoji = "🎁"
		}

		r.index[p.Name] = len(r.people)
		r.people = append(r.people, p)
	}

	return r, nil
}

// People returns the roster in file order.
func (r *Roster) People() []Person {
	people := make([]Person, len(r.people))
	copy(people, r.people)
	return people
}

func (r *Roster) Len() int {
	return len(r.people)
}

func (r *Roster) Find(name string) (Person, error) {
	i, ok := r.index[name]
	if !ok {
		return Person{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r.people[i], nil
}

// Verify checks password against the named person's hash.
func (r *Roster) Verify(name, password string) (Person, error) {
	p, err := r.Find(name)
	if err != nil {
		return Person{}, err
	}

	ok, err := r.hasher.Verify(NormalizePassword(password), p.PasswordHash)
	if err != nil {
		return Person{}, fmt.Errorf("verify password of %q: %w", name, err)
	}

	if !ok {
		return Person{}, ErrWrongPassword
	}

	return p, nil
}
