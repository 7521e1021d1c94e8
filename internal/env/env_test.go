package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("QOZ_TEST_STR", "  redis:6379 ")
	assert.Equal(t, "redis:6379", Get("QOZ_TEST_STR", "x"))
	assert.Equal(t, "x", Get("QOZ_TEST_UNSET", "x"))
}

func TestGetInt(t *testing.T) {
	t.Setenv("QOZ_TEST_INT", "8080")
	assert.Equal(t, 8080, GetInt("QOZ_TEST_INT", 1))
	t.Setenv("QOZ_TEST_INT", "eighty")
	assert.Equal(t, 1, GetInt("QOZ_TEST_INT", 1))
	assert.Equal(t, 4002, GetInt("QOZ_TEST_UNSET", 4002))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("QOZ_TEST_DUR", "45m")
	assert.Equal(t, 45*time.Minute, GetDuration("QOZ_TEST_DUR", time.Second))
	t.Setenv("QOZ_TEST_DUR", "90")
	assert.Equal(t, 90*time.Second, GetDuration("QOZ_TEST_DUR", time.Second))
	t.Setenv("QOZ_TEST_DUR", "soon")
	assert.Equal(t, time.Second, GetDuration("QOZ_TEST_DUR", time.Second))
}

func TestGetBool(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "on"} {
		t.Setenv("QOZ_TEST_BOOL", v)
		assert.True(t, GetBool("QOZ_TEST_BOOL", false), v)
	}
	for _, v := range []string{"0", "false", "No", "off"} {
		t.Setenv("QOZ_TEST_BOOL", v)
		assert.False(t, GetBool("QOZ_TEST_BOOL", true), v)
	}
	t.Setenv("QOZ_TEST_BOOL", "maybe")
	assert.True(t, GetBool("QOZ_TEST_BOOL", true))
}
