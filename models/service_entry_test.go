package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceEntryBeforeCreateRoundsTotalHours(t *testing.T) {
	entry := &ServiceEntry{HoursWorked: 3.5, NumberOfResidents: 5}

	require.NoError(t, entry.BeforeCreate(nil))

	// 3.5 x 5 = 17.5 rounds to 18 when the entry is persisted
	assert.Equal(t, 18.0, entry.TotalHours)
}

func TestServiceEntryBeforeCreateWholeProductUnchanged(t *testing.T) {
	entry := &ServiceEntry{HoursWorked: 2, NumberOfResidents: 4}

	require.NoError(t, entry.BeforeCreate(nil))

	assert.Equal(t, 8.0, entry.TotalHours)
}

func TestServiceEntryBeforeCreateOverwritesSuppliedTotal(t *testing.T) {
	entry := &ServiceEntry{HoursWorked: 1.5, NumberOfResidents: 3, TotalHours: 99}

	require.NoError(t, entry.BeforeCreate(nil))

	assert.Equal(t, 5.0, entry.TotalHours)
}

func TestServiceEntryBeforeCreateAssignsIDOnce(t *testing.T) {
	entry := &ServiceEntry{HoursWorked: 1, NumberOfResidents: 1}

	require.NoError(t, entry.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, entry.ID)

	assigned := entry.ID
	require.NoError(t, entry.BeforeCreate(nil))
	assert.Equal(t, assigned, entry.ID)
}
