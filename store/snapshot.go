package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tjhs/sportrental/model"
)

// snapshot is the persisted state layout.
type snapshot struct {
	Users       []userRecord      `json:"users"`
	Equipment   []model.Equipment `json:"equipment"`
	Rentals     []model.Rental    `json:"rentals"`
	CurrentUser string            `json:"current_user,omitempty"`
}

// userRecord carries the password hash that model.User hides from JSON.
type userRecord struct {
	model.User
	PasswordHash string `json:"password_hash,omitempty"`
}

// save serializes the full state and atomically replaces the snapshot file,
// so a crash mid-write never leaves a half-written snapshot behind.
// Callers must hold s.mu.
func (s *Store) save() error {
	if s.path == "" {
		return nil
	}

	snap := snapshot{
		Users:       make([]userRecord, 0, len(s.users)),
		Equipment:   s.equipment,
		Rentals:     s.rentals,
		CurrentUser: s.currentUserID,
	}
	for _, u := range s.users {
		snap.Users = append(snap.Users, userRecord{User: u, PasswordHash: u.PasswordHash})
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// restore replaces the in-memory state with the decoded snapshot.
func (s *Store) restore(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	s.users = make([]model.User, 0, len(snap.Users))
	for _, rec := range snap.Users {
		u := rec.User
		u.PasswordHash = rec.PasswordHash
		s.users = append(s.users, u)
	}
	s.equipment = snap.Equipment
	s.rentals = snap.Rentals
	s.currentUserID = snap.CurrentUser
	return nil
}
