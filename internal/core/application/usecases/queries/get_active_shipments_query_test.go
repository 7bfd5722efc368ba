package queries_test

import (
	"testing"

	"yolnext/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveShipmentsQuery_ValidConstruction(t *testing.T) {
	query := queries.NewGetActiveShipmentsQuery()
	assert.NoError(t, query.Validate())
}

func TestGetActiveShipmentsQuery_NotConstructed(t *testing.T) {
	var query queries.GetActiveShipmentsQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveShipmentsQueryIsNotConstructed)
}
