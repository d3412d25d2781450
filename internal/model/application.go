package model

import "time"

// Application represents a submitted job application.
type Application struct {
	ApplicationID         int64     `json:"application_id"`
	PersonID              int64     `json:"person_id"`
	AvailabilityID        int64     `json:"availability_id"`
	Status                string    `json:"status"`
	ApplicationDate       time.Time `json:"applicationdate"`
	OpenApplicationStatus bool      `json:"openapplicationstatus"`
}

// Application status values accepted by the schema.
const (
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusUnhandled = "unhandled"
)

// ApplicationsResponse is the success body for GET /applications.
type ApplicationsResponse struct {
	Message      string        `json:"message"`
	Applications []Application `json:"applications"`
}
