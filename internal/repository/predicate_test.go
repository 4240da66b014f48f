package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The count and page statements of a list operation must share the same
// predicate and bind values, otherwise total_count drifts from the page.

func TestSearchPredicate(t *testing.T) {
	predicate, args := searchPredicate("")
	assert.Empty(t, predicate)
	assert.Empty(t, args)

	predicate, args = searchPredicate("smith")
	assert.Equal(t, " WHERE first_name LIKE $1 OR last_name LIKE $1 OR email LIKE $1", predicate)
	assert.Equal(t, []any{"%smith%"}, args)
}

func TestCustomerOrdersPredicate(t *testing.T) {
	predicate, args := customerOrdersPredicate(7, "")
	assert.Equal(t, " WHERE user_id = $1", predicate)
	assert.Equal(t, []any{int64(7)}, args)

	predicate, args = customerOrdersPredicate(7, "shipped")
	assert.Equal(t, " WHERE user_id = $1 AND LOWER(status) = $2", predicate)
	assert.Equal(t, []any{int64(7), "shipped"}, args)
}
