package submit

import (
	"context"
	"log"
	"time"
)

// ContactRequest is a message a customer sends to an artisan through the
// contact form.
type ContactRequest struct {
	ArtisanID string `json:"artisan_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
}

// Service is the upstream submission capability the handlers call through.
// Submissions are fire-and-forget: the caller gets an ack once the request
// is handed off, and no retry or backoff is attempted on failure.
type Service interface {
	SubmitContact(ctx context.Context, req ContactRequest) error
}

// SimulatedService stands in for the real contact API: it logs the call
// and waits a fixed artificial delay, mirroring the latency of the
// upstream it replaces.
type SimulatedService struct {
	Delay  time.Duration
	Logger *log.Logger
}

func NewSimulatedService(delay time.Duration) *SimulatedService {
	return &SimulatedService{Delay: delay, Logger: log.Default()}
}

func (s *SimulatedService) SubmitContact(ctx context.Context, req ContactRequest) error {
	s.Logger.Printf("[submit] POST /api/contacts artisan=%s from=%s", req.ArtisanID, req.Email)

	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.Logger.Printf("[submit] contact for artisan %s accepted", req.ArtisanID)
	return nil
}
