package domain

import "time"

// Topic enumerates the closed set of chat classification tags.
type Topic string

const (
	TopicShipmentTracking     Topic = "shipment_tracking"
	TopicDispatchCoordination Topic = "dispatch_coordination"
	TopicEmployeeSupport      Topic = "employee_support"
	TopicComplianceAudit      Topic = "compliance_audit"
	TopicContactDirectory     Topic = "contact_directory"
	TopicGeneral              Topic = "general"
)

// ChatLogEntry records one completed chat exchange in the audit log.
type ChatLogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	Topic     Topic     `json:"topic"`
	UsedAI    bool      `json:"used_ai"`
}
