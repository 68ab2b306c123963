package memory

import "github.com/fieldcollect/field_collections_app/internal/core/domain"

// snapshot is the serializable representation of the full store state: one
// top-level section per entity kind, each a mapping from id to the full
// record. Timestamps serialize as RFC 3339 and round-trip to the same instant.
type snapshot struct {
	Organizations map[string]domain.Organization `json:"organizations"`
	Caseworkers   map[string]domain.Caseworker   `json:"caseworkers"`
	Users         map[string]domain.User         `json:"users"`
	WorkTypes     map[string]domain.WorkType     `json:"workTypes"`
	Sessions      map[string]domain.Session      `json:"sessions"`
	Transactions  map[string]domain.Transaction  `json:"transactions"`
}

// newSnapshot copies the store maps. Caller holds at least a read lock.
func newSnapshot(s *Store) snapshot {
	snap := snapshot{
		Organizations: make(map[string]domain.Organization, len(s.organizations)),
		Caseworkers:   make(map[string]domain.Caseworker, len(s.caseworkers)),
		Users:         make(map[string]domain.User, len(s.users)),
		WorkTypes:     make(map[string]domain.WorkType, len(s.workTypes)),
		Sessions:      make(map[string]domain.Session, len(s.sessions)),
		Transactions:  make(map[string]domain.Transaction, len(s.transactions)),
	}
	for id, v := range s.organizations {
		snap.Organizations[id] = v
	}
	for id, v := range s.caseworkers {
		snap.Caseworkers[id] = v
	}
	for id, v := range s.users {
		snap.Users[id] = v
	}
	for id, v := range s.workTypes {
		snap.WorkTypes[id] = v
	}
	for id, v := range s.sessions {
		snap.Sessions[id] = v
	}
	for id, v := range s.transactions {
		snap.Transactions[id] = v
	}
	return snap
}

// restore replaces the store maps with the snapshot contents. Caller holds
// the write lock. Sections absent from the file stay empty.
func (snap snapshot) restore(s *Store) {
	if snap.Organizations != nil {
		s.organizations = snap.Organizations
	}
	if snap.Caseworkers != nil {
		s.caseworkers = snap.Caseworkers
	}
	if snap.Users != nil {
		s.users = snap.Users
	}
	if snap.WorkTypes != nil {
		s.workTypes = snap.WorkTypes
	}
	if snap.Sessions != nil {
		s.sessions = snap.Sessions
	}
	if snap.Transactions != nil {
		s.transactions = snap.Transactions
	}
}
