package characters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldtimes/MapFantasai/internal/errors"
	"github.com/coldtimes/MapFantasai/internal/repositories/characters"
)

func TestNewRedisValidatesConfig(t *testing.T) {
	_, err := characters.NewRedis(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = characters.NewRedis(&characters.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := characters.OpenSQLite("  ")
	assert.True(t, errors.IsInvalidArgument(err))
}
