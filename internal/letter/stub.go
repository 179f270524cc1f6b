package letter

import (
	"context"
	"errors"

	"github.com/ferdiebergado/sulat/internal/roster"
)

type StubService struct {
	OpenedFunc     func(ctx context.Context) ([]string, error)
	MarkOpenedFunc func(ctx context.Context, name string) ([]string, bool, error)
	UnlockFunc     func(ctx context.Context, name, password string) (roster.Letter, []string, error)
	PeopleFunc     func(ctx context.Context) ([]PersonView, error)
	RestoreFunc    func(ctx context.Context, name string) ([]string, error)
	ResetFunc      func(ctx context.Context) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) Opened(ctx context.Context) ([]string, error) {
	if s.OpenedFunc == nil {
		return nil, errors.New("Opened() not implemented by stub")
	}
	return s.OpenedFunc(ctx)
}

func (s *StubService) MarkOpened(ctx context.Context, name string) ([]string, bool, error) {
	if s.MarkOpenedFunc == nil {
		return nil, false, errors.New("MarkOpened() not implemented by stub")
	}
	return s.MarkOpenedFunc(ctx, name)
}

func (s *StubService) Unlock(ctx context.Context, name, password string) (roster.Letter, []string, error) {
	if s.UnlockFunc == nil {
		return roster.Letter{}, nil, errors.New("Unlock() not implemented by stub")
	}
	return s.UnlockFunc(ctx, name, password)
}

func (s *StubService) People(ctx context.Context) ([]PersonView, error) {
	if s.PeopleFunc == nil {
		return nil, errors.New("People() not implemented by stub")
	}
	return s.PeopleFunc(ctx)
}

func (s *StubService) Restore(ctx context.Context, name string) ([]string, error) {
	if s.RestoreFunc == nil {
		return nil, errors.New("Restore() not implemented by stub")
	}
	return s.RestoreFunc(ctx, name)
}

func (s *StubService) Reset(ctx context.Context) error {
	if s.ResetFunc == nil {
		return errors.New("Reset() not implemented by stub")
	}
	return s.ResetFunc(ctx)
}

type StubRepo struct {
	ListFunc   func(ctx context.Context) ([]string, error)
	AddFunc    func(ctx context.Context, name string) (bool, error)
	RemoveFunc func(ctx context.Context, name string) (bool, error)
	ResetFunc  func(ctx context.Context) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context) ([]string, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Add(ctx context.Context, name string) (bool, error) {
	if r.AddFunc == nil {
		return false, errors.New("Add() not implemented by stub")
	}
	return r.AddFunc(ctx, name)
}

func (r *StubRepo) Remove(ctx context.Context, name string) (bool, error) {
	if r.RemoveFunc == nil {
		return false, errors.New("Remove() not implemented by stub")
	}
	return r.RemoveFunc(ctx, name)
}

func (r *StubRepo) Reset(ctx context.Context) error {
	if r.ResetFunc == nil {
		return errors.New("Reset() not implemented by stub")
	}
	return r.ResetFunc(ctx)
}
