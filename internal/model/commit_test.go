package model_test

import (
	"errors"
	"testing"

	"github.com/maxbolgarin/commitlens/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitPredicates(t *testing.T) {
	tests := []struct {
		name      string
		parents   []string
		isInitial bool
		isMerge   bool
	}{
		{name: "initial commit", parents: nil, isInitial: true, isMerge: false},
		{name: "regular commit", parents: []string{"a"}, isInitial: false, isMerge: false},
		{name: "merge commit", parents: []string{"a", "b"}, isInitial: false, isMerge: true},
		{name: "octopus merge", parents: []string{"a", "b", "c"}, isInitial: false, isMerge: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commit := model.Commit{ID: "deadbeef", Parents: tt.parents}

			assert.Equal(t, tt.isInitial, commit.IsInitial())
			assert.Equal(t, tt.isMerge, commit.IsMerge())

			// The two predicates are mutually exclusive.
			assert.False(t, commit.IsInitial() && commit.IsMerge())
		})
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := model.NewTransportError("/commits", cause)

	require.Error(t, err)
	assert.True(t, model.IsTransportError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/commits")

	var te *model.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "/commits", te.Endpoint)

	assert.False(t, model.IsTransportError(cause))
	assert.False(t, model.IsTransportError(nil))
}
