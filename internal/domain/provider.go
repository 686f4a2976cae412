package domain

import (
	"encoding/json"
	"time"
)

// Organization is a tenant record held by the identity provider.
type Organization struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	DisplayName string         `json:"display_name"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type InvitationParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Invitation is the identity provider's invitation record, returned as sent.
type Invitation struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	InvitationURL  string          `json:"invitation_url"`
	TicketID       string          `json:"ticket_id,omitempty"`
	ClientID       string          `json:"client_id,omitempty"`
	ConnectionID   string          `json:"connection_id,omitempty"`
	Inviter        InvitationParty `json:"inviter"`
	Invitee        InvitationParty `json:"invitee"`
	CreatedAt      time.Time       `json:"created_at"`
	ExpiresAt      time.Time       `json:"expires_at"`
	// Raw is the provider's response body, including fields not mapped above
	// such as roles or app_metadata.
	Raw json.RawMessage `json:"-"`
}

type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

type CustomerParams struct {
	Name    string
	Email   string
	Address Address
}
