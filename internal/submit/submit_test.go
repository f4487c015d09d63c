package submit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedServiceResolvesOnce(t *testing.T) {
	svc := NewSimulatedService(10 * time.Millisecond)

	start := time.Now()
	err := svc.SubmitContact(context.Background(), ContactRequest{
		ArtisanID: "a1",
		Name:      "Test User",
		Email:     "test@example.com",
		Message:   "Need a quote for a geyser installation.",
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSimulatedServiceHonorsCancellation(t *testing.T) {
	svc := NewSimulatedService(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := svc.SubmitContact(ctx, ContactRequest{ArtisanID: "a1", Email: "test@example.com"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulatedServiceZeroDelay(t *testing.T) {
	svc := NewSimulatedService(0)
	err := svc.SubmitContact(context.Background(), ContactRequest{ArtisanID: "a1"})
	assert.NoError(t, err)
}
