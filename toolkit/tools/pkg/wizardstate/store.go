// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"sync"
)

// Action is a reducer: it applies one change to the state it is given.
type Action func(s *State)

// Store holds the wizard state. Actions are applied one at a time.
type Store struct {
	lock  sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{
		state: InitialState(),
	}
}

// Dispatch applies the actions in order while holding the store lock.
func (st *Store) Dispatch(actions ...Action) {
	st.lock.Lock()
	defer st.lock.Unlock()

	for _, action := range actions {
		action(&st.state)
	}
}

// State returns a copy of the current state.
func (st *Store) State() State {
	st.lock.Lock()
	defer st.lock.Unlock()

	return st.state.Clone()
}
