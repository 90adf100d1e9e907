package store

import (
	"fmt"
	"sync"
	"time"

	"rulesconsole/internal/models"
)

// Store is the in-memory backing store for the stub rules API. It exists
// so the console and the tests can run without any real backend.
type Store struct {
	mu      sync.Mutex
	users   []models.User
	devices []models.Device
	rules   []models.Rule
	files   map[string][]byte
}

func New() *Store {
	return &Store{files: map[string][]byte{}}
}

// SetUsers seeds the user collection
func (s *Store) SetUsers(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
}

// SetDevices seeds the device collection
func (s *Store) SetDevices(devices []models.Device) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.devices = devices
}

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

func (s *Store) Devices() []models.Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Device(nil), s.devices...)
}

func (s *Store) Rules() []models.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Rule(nil), s.rules...)
}

// RulesForUser returns only the rules owned by one user
func (s *Store) RulesForUser(userID string) []models.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Rule
	for _, r := range s.rules {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// UserExists reports whether a user id is known
func (s *Store) UserExists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// DeviceExists reports whether a device id is known
func (s *Store) DeviceExists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.devices {
		if d.ID == id {
			return true
		}
	}
	return false
}

// AddRule stores a new rule and assigns its id
func (s *Store) AddRule(rule models.Rule) models.Rule {
	s.mu.Lock()
	defer s.mu.Unlock()
	rule.ID = fmt.Sprintf("rule-%d", time.Now().UnixNano())
	s.rules = append(s.rules, rule)
	return rule
}

// DeleteRule removes a rule by id
func (s *Store) DeleteRule(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rules {
		if r.ID == id {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return true
		}
	}
	return false
}

// SaveFile stores uploaded content under a unique name
func (s *Store) SaveFile(name string, content []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := fmt.Sprintf("%d-%s", time.Now().UnixNano(), name)
	s.files[stored] = content
	return stored
}

// File returns stored upload content
func (s *Store) File(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.files[name]
	return content, ok
}
