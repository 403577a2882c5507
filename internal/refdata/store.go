package refdata

import (
	"fmt"
	"strings"

	"github.com/cascade-freight/chatbot-service/internal/domain"
)

// Store holds the static shipment, policy and contact tables the chatbot
// answers from. Populated once at startup, read-only afterwards.
type Store struct {
	shipments []domain.Shipment
	policies  []domain.Policy
	contacts  []domain.Contact
}

// New builds a store from the given tables.
func New(shipments []domain.Shipment, policies []domain.Policy, contacts []domain.Contact) *Store {
	return &Store{shipments: shipments, policies: policies, contacts: contacts}
}

// NewSeeded builds a store from the prototype tables.
func NewSeeded() *Store {
	return New(seedShipments(), seedPolicies(), seedContacts())
}

// Shipments returns the shipment table in seed order.
func (s *Store) Shipments() []domain.Shipment {
	return s.shipments
}

// Shipment resolves a shipment by exact id.
func (s *Store) Shipment(id string) (*domain.Shipment, bool) {
	for i := range s.shipments {
		if s.shipments[i].ID == id {
			return &s.shipments[i], true
		}
	}
	return nil, false
}

// Policy resolves a policy by key.
func (s *Store) Policy(key string) (*domain.Policy, bool) {
	for i := range s.policies {
		if s.policies[i].Key == key {
			return &s.policies[i], true
		}
	}
	return nil, false
}

// Policies returns the policy table in seed order.
func (s *Store) Policies() []domain.Policy {
	return s.policies
}

// Contact resolves a contact by department key.
func (s *Store) Contact(department string) (*domain.Contact, bool) {
	for i := range s.contacts {
		if s.contacts[i].Department == department {
			return &s.contacts[i], true
		}
	}
	return nil, false
}

// Contacts returns the contact table in seed order.
func (s *Store) Contacts() []domain.Contact {
	return s.contacts
}

// Counts reports table sizes for the readiness probe.
func (s *Store) Counts() (shipments, policies, contacts int) {
	return len(s.shipments), len(s.policies), len(s.contacts)
}

// Serialize renders the entire store as text for the AI delegate prompt.
func (s *Store) Serialize() string {
	var b strings.Builder

	b.WriteString("SHIPMENTS:\n")
	for _, sh := range s.shipments {
		fmt.Fprintf(&b, "- %s | status: %s | eta: %s | driver: %s | route: %s\n",
			sh.ID, sh.Status, sh.ETA, sh.Driver, sh.Route)
		for _, ex := range sh.Exceptions {
			fmt.Fprintf(&b, "  exception: %s\n", ex)
		}
	}

	b.WriteString("\nPOLICIES:\n")
	for _, p := range s.policies {
		fmt.Fprintf(&b, "- %s: %s\n", p.Key, p.Text)
	}

	b.WriteString("\nCONTACTS:\n")
	for _, c := range s.contacts {
		fmt.Fprintf(&b, "- %s: %s\n", c.Department, c.Text)
	}

	return b.String()
}

func seedShipments() []domain.Shipment {
	return []domain.Shipment{
		{
			ID:     "CFS-1001",
			Status: "In Transit",
			ETA:    "2026-09-03 14:00",
			Driver: "Maria Santos",
			Route:  "Seattle, WA -> Portland, OR",
		},
		{
			ID:     "CFS-1002",
			Status: "Delayed",
			ETA:    "2026-09-05 09:00",
			Driver: "Tom Berg",
			Route:  "Spokane, WA -> Boise, ID",
			Exceptions: []string{
				"Weather delay: snow closure on I-90, rerouted via US-395.",
			},
		},
		{
			ID:     "CFS-1003",
			Status: "Delivered",
			ETA:    "2026-08-30 16:30",
			Driver: "Maria Santos",
			Route:  "Tacoma, WA -> Eugene, OR",
		},
	}
}

func seedPolicies() []domain.Policy {
	return []domain.Policy{
		{
			Key: "hazmat",
			Text: "Hazmat handling: only HazMat-certified drivers may carry placarded loads. " +
				"Shipping papers ride in the cab door pouch, placards checked at every stop, " +
				"and incidents are reported to dispatch within 15 minutes.",
		},
		{
			Key: "ppe",
			Text: "Safety gear: high-visibility vests, steel-toe boots and gloves are required " +
				"on every dock and yard. Hard hats are required wherever overhead cranes operate.",
		},
		{
			Key: "hours",
			Text: "Hours of service: maximum 11 hours driving within a 14-hour on-duty window, " +
				"followed by at least 10 consecutive hours off duty. Electronic logs are mandatory.",
		},
	}
}

func seedContacts() []domain.Contact {
	return []domain.Contact{
		{Department: "dispatch", Text: "Dispatch desk: ext. 2100, dispatch@cascadefreight.example (24/7)"},
		{Department: "hr", Text: "Human Resources: ext. 2300, hr@cascadefreight.example (Mon-Fri 8am-5pm)"},
		{Department: "it", Text: "IT helpdesk: ext. 2400, helpdesk@cascadefreight.example (Mon-Fri 7am-7pm)"},
	}
}
