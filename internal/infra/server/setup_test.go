package server

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lloydmeta/docsproxy/internal/domain/document"
)

type mockDatabase struct {
	exists       bool
	existsErr    error
	createErr    error
	existsCalled uint
	createCalled uint
}

func (m *mockDatabase) Name() string {
	return "mock"
}

func (m *mockDatabase) Exists(ctx context.Context) (bool, error) {
	m.existsCalled++
	return m.exists, m.existsErr
}

func (m *mockDatabase) Create(ctx context.Context) error {
	m.createCalled++
	if m.createErr == nil {
		m.exists = true
	}
	return m.createErr
}

var ctx = context.Background()

func TestSetup_Check(t *testing.T) {
	assert.NoError(t, NewSetup(&mockDatabase{exists: true}).Check(ctx))
	assert.IsType(t, document.DatabaseNotInstalled{}, NewSetup(&mockDatabase{}).Check(ctx))
	assert.EqualError(t, NewSetup(&mockDatabase{existsErr: fmt.Errorf("down")}).Check(ctx), "down")
}

func TestSetup_RunIfNeeded(t *testing.T) {
	tests := []struct {
		name             string
		database         *mockDatabase
		wantErr          bool
		wantCreateCalled uint
	}{
		{
			"already exists",
			&mockDatabase{exists: true},
			false,
			0,
		},
		{
			"missing",
			&mockDatabase{},
			false,
			1,
		},
		{
			"missing and creation fails",
			&mockDatabase{createErr: fmt.Errorf("nope")},
			true,
			1,
		},
		{
			"store unreachable",
			&mockDatabase{existsErr: fmt.Errorf("down")},
			true,
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSetup(tt.database).RunIfNeeded(ctx)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.EqualValues(t, tt.wantCreateCalled, tt.database.createCalled)
		})
	}
}
