package models

import "time"

// Domain listing lifecycle statuses. The public listing defaults to
// DomainStatusAvailable unless the caller asks for another status.
const (
	DomainStatusAvailable = "available"
	DomainStatusSold      = "sold"
	DomainStatusReserved  = "reserved"
)

// DomainListing represents an aged/expired domain offered for sale.
type DomainListing struct {
	ID                string    `json:"id"`
	DomainName        string    `json:"domain_name"`
	DA                int       `json:"da"`
	PA                int       `json:"pa"`
	UR                int       `json:"ur"`
	DR                int       `json:"dr"`
	TF                int       `json:"tf"`
	CF                int       `json:"cf"`
	Price             int       `json:"price"`
	WebArchiveHistory string    `json:"web_archive_history,omitempty"`
	Age               int       `json:"age"`
	Registrar         string    `json:"registrar"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}
