// Package queue publishes reservation lifecycle events to the message
// broker and runs the consumer that reacts to confirmations.
package queue

// ReservationCreatedEvent is published when a booking is accepted and a
// confirmation code handed out.
type ReservationCreatedEvent struct {
	Code           string  `json:"code"`
	RoomCode       string  `json:"room_code"`
	RoomType       string  `json:"room_type"`
	CustomerRUT    string  `json:"customer_rut"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	TotalPrice     float64 `json:"total_price"`
	DepositPercent int     `json:"deposit_percent"`
	CreatedAt      string  `json:"created_at"`
}

// ReservationConfirmedEvent is published after a simulated deposit payment
// confirms a reservation. It carries enough data for the consumer to notify
// the customer without touching the primary database.
type ReservationConfirmedEvent struct {
	Code          string  `json:"code"`
	RoomType      string  `json:"room_type"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
