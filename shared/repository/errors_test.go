package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"hotel/shared/repository"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestViolations(t *testing.T) {
	unique := fmt.Errorf("failed to insert data (user): %w", &pq.Error{Code: "23505"})
	foreign := fmt.Errorf("failed to delete data (room): %w", &pq.Error{Code: "23503"})

	assert.True(t, repository.IsUniqueViolation(unique))
	assert.False(t, repository.IsUniqueViolation(foreign))
	assert.True(t, repository.IsForeignKeyViolation(foreign))
	assert.False(t, repository.IsForeignKeyViolation(errors.New("plain")))
}
