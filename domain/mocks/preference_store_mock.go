package mocks

import (
	"github.com/mirador-labs/swapd/domain"
)

var _ domain.PreferenceStore = &PreferenceStoreMock{}

// PreferenceStoreMock is a mock implementation of the PreferenceStore
// interface. With no Func fields set it behaves as an empty in-memory store.
type PreferenceStoreMock struct {
	GetFunc func() (domain.SwapPreference, error)
	SetFunc func(preference domain.SwapPreference) error

	stored domain.SwapPreference
}

func (m *PreferenceStoreMock) Get() (domain.SwapPreference, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	return m.stored, nil
}

func (m *PreferenceStoreMock) Set(preference domain.SwapPreference) error {
	if m.SetFunc != nil {
		return m.SetFunc(preference)
	}
	m.stored = preference
	return nil
}
