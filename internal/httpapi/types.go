package httpapi

import "time"

type healthResponse struct {
	Status    string    `json:"status"`
	Questions int       `json:"questions"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}
