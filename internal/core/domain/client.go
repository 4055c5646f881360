package domain

import "time"

// Client owns zero or more orders.
type Client struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
