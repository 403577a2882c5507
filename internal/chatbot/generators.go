package chatbot

import (
	"fmt"
	"strings"

	"github.com/cascade-freight/chatbot-service/internal/domain"
	"github.com/cascade-freight/chatbot-service/internal/refdata"
)

// Generators produces rule-based replies per topic. Every generator is a
// pure function of (message, role, reference data) with no side effects.
type Generators struct {
	ref *refdata.Store
}

// NewGenerators builds the generator set over the given reference data.
func NewGenerators(ref *refdata.Store) *Generators {
	return &Generators{ref: ref}
}

// Reply dispatches to the generator for the given topic.
func (g *Generators) Reply(topic domain.Topic, message string, role domain.Role) string {
	switch topic {
	case domain.TopicShipmentTracking:
		return g.shipmentTracking(message, role)
	case domain.TopicDispatchCoordination:
		return g.dispatchCoordination(role)
	case domain.TopicEmployeeSupport:
		return g.employeeSupport(message)
	case domain.TopicComplianceAudit:
		return g.complianceAudit(role)
	case domain.TopicContactDirectory:
		return g.contactDirectory(message)
	default:
		return g.general(role)
	}
}

func (g *Generators) shipmentTracking(message string, role domain.Role) string {
	msg := strings.ToLower(message)

	var found *domain.Shipment
	for _, sh := range g.ref.Shipments() {
		if strings.Contains(msg, strings.ToLower(sh.ID)) {
			found = &sh
			break
		}
	}
	if found == nil {
		// Never guess or invent an id.
		return "I couldn't find a known shipment id in your message. " +
			"Try something like \"Track shipment CFS-1001\"."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Shipment %s: status %s, ETA %s, route %s.",
		found.ID, found.Status, found.ETA, found.Route)
	for _, ex := range found.Exceptions {
		fmt.Fprintf(&b, " Exception: %s", ex)
	}

	switch role {
	case domain.RoleDispatcher:
		fmt.Fprintf(&b, " Assigned driver: %s. This lookup is recorded for dispatch audit.", found.Driver)
	case domain.RoleWarehouseManager, domain.RoleAdmin:
		fmt.Fprintf(&b, " Assigned driver: %s. To reassign, use the dispatch console.", found.Driver)
	case domain.RoleDriver:
		// Known gap: drivers get the restricted-view notice but the full
		// shipment data is still returned, with no filter on assignment.
		b.WriteString(" Driver view: you can only see your own shipments.")
	default:
		b.WriteString(" Read-only view: contact dispatch to request changes.")
	}

	return b.String()
}

func (g *Generators) dispatchCoordination(role domain.Role) string {
	switch role {
	case domain.RoleDispatcher, domain.RoleWarehouseManager, domain.RoleAdmin:
		return "Dispatch coordination: I can summarize active driver assignments and draft reassignments. " +
			"In production a reassignment would be written to the dispatch audit system; " +
			"this prototype only describes the change."
	default:
		return "Dispatch coordination is restricted to dispatchers, warehouse managers and admins."
	}
}

func (g *Generators) employeeSupport(message string) string {
	msg := strings.ToLower(message)

	// First match wins, in this order.
	var key string
	switch {
	case strings.Contains(msg, "hazmat"):
		key = "hazmat"
	case strings.Contains(msg, "ppe"), strings.Contains(msg, "safety gear"):
		key = "ppe"
	case strings.Contains(msg, "hours"), strings.Contains(msg, "hos"), strings.Contains(msg, "service"):
		key = "hours"
	}

	if key != "" {
		if policy, ok := g.ref.Policy(key); ok {
			return policy.Text
		}
	}

	names := make([]string, 0, len(g.ref.Policies()))
	for _, p := range g.ref.Policies() {
		names = append(names, p.Key)
	}
	return fmt.Sprintf("I can share these policies: %s. Ask about one of them, "+
		"for example \"What is our hazmat policy?\".", strings.Join(names, ", "))
}

func (g *Generators) complianceAudit(role domain.Role) string {
	switch role {
	case domain.RoleComplianceOfficer, domain.RoleAdmin:
		return "Compliance checklist guidance: verify driver HOS logs are current, " +
			"confirm hazmat shipping papers match placards, review the weekly exception " +
			"report, and file the signed audit checklist with compliance before Friday close."
	default:
		return "Compliance audit material is restricted to compliance officers and admins."
	}
}

func (g *Generators) contactDirectory(message string) string {
	msg := strings.ToLower(message)

	// First match wins, in this order.
	var key string
	switch {
	case strings.Contains(msg, "dispatch"):
		key = "dispatch"
	case strings.Contains(msg, "hr"):
		key = "hr"
	case strings.Contains(msg, "it"), strings.Contains(msg, "helpdesk"):
		key = "it"
	}

	if key != "" {
		if contact, ok := g.ref.Contact(key); ok {
			return contact.Text
		}
	}

	var b strings.Builder
	b.WriteString("Internal contacts:")
	for _, c := range g.ref.Contacts() {
		fmt.Fprintf(&b, " %s.", c.Text)
	}
	b.WriteString(" Ask for one department, for example \"Contact HR\".")
	return b.String()
}

func (g *Generators) general(role domain.Role) string {
	name := string(role)
	if name == "" {
		name = string(domain.RoleUnknown)
	}
	return fmt.Sprintf("I'm the Cascade Freight internal assistant. I can track shipments, "+
		"help coordinate dispatch, answer policy questions, support compliance audits and "+
		"look up internal contacts. Your role: %s.", name)
}
