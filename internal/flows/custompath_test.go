package flows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishalabs/disha-backend/internal/model"
)

func TestCustomCareerPathSuccess(t *testing.T) {
	fb := &fakeBackend{jsonOut: `{"name":"Ethical Hacker","overview":"Security testing for companies.","keySkills":["networking"],"salaryRange":"5-20 LPA"}`}
	c := testClient(fb)

	path, err := c.CustomCareerPath(context.Background(), model.UserProfile{ClassLevel: "12"}, "ethical hacker", FallbackNone)
	require.NoError(t, err)
	assert.Equal(t, "Ethical Hacker", path.Name)
	assert.False(t, path.FromFallback)
}

func TestCustomCareerPathFallbackNonePropagates(t *testing.T) {
	fb := &fakeBackend{jsonErr: errors.New("provider down")}
	c := testClient(fb)

	_, err := c.CustomCareerPath(context.Background(), model.UserProfile{ClassLevel: "12"}, "pilot", FallbackNone)
	require.Error(t, err)
	assert.True(t, IsGenerationError(err))
}

func TestCustomCareerPathFallbackStaticServesCannedPayload(t *testing.T) {
	fb := &fakeBackend{jsonErr: errors.New("provider down")}
	c := testClient(fb)

	path, err := c.CustomCareerPath(context.Background(), model.UserProfile{ClassLevel: "12"}, "pilot", FallbackStatic)
	require.NoError(t, err)
	assert.True(t, path.FromFallback)
	assert.Equal(t, "pilot", path.Name)
	assert.NotEmpty(t, path.Overview)
}

func TestCustomCareerPathFallbackStaticOnSchemaViolation(t *testing.T) {
	fb := &fakeBackend{jsonOut: `{"overview":"no name field"}`}
	c := testClient(fb)

	path, err := c.CustomCareerPath(context.Background(), model.UserProfile{ClassLevel: "12"}, "astronaut", FallbackStatic)
	require.NoError(t, err)
	assert.True(t, path.FromFallback)
}
