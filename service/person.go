// Package service is the layer between the command surface and the domain
// core. It resolves names to entities, applies the get-or-create rules,
// and persists the touched aggregate after every mutation. The core never
// auto-creates anything; that policy lives here.
package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pitchside/pitchside/models"
	"github.com/pitchside/pitchside/store"
)

type PersonService struct {
	store store.Engine
}

func NewPersonService(engine store.Engine) *PersonService {
	return &PersonService{store: engine}
}

func (s *PersonService) Create(name string) (*models.Person, error) {
	person, err := s.store.CreatePerson(name)
	if err != nil {
		return nil, fmt.Errorf("create person %q: %w", name, err)
	}
	return person, nil
}

func (s *PersonService) Get(name string) (*models.Person, error) {
	person, err := s.store.GetPerson(name)
	if err != nil {
		return nil, fmt.Errorf("get person %q: %w", name, err)
	}
	return person, nil
}

// GetOrCreate resolves a person name, creating the person when it is not
// known yet.
func (s *PersonService) GetOrCreate(name string) (*models.Person, error) {
	person, err := s.store.GetPerson(name)
	if err == nil {
		return person, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get person %q: %w", name, err)
	}
	logrus.Debugf("person %q not found, creating", name)
	return s.Create(name)
}
