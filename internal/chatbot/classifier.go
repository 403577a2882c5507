package chatbot

import (
	"strings"

	"github.com/cascade-freight/chatbot-service/internal/domain"
)

// classifierRules are evaluated in order; the first topic with a keyword
// hit wins, so earlier entries take priority over later ones.
var classifierRules = []struct {
	topic    domain.Topic
	keywords []string
}{
	{domain.TopicShipmentTracking, []string{"shipment", "track", "eta", "delivery", "cfs-"}},
	{domain.TopicDispatchCoordination, []string{"driver", "assignment", "dispatch"}},
	{domain.TopicEmployeeSupport, []string{"policy", "vacation", "sick leave", "safety", "hazmat", "ppe"}},
	{domain.TopicComplianceAudit, []string{"audit", "log", "compliance", "checklist"}},
	{domain.TopicContactDirectory, []string{"contact", "hr", "it", "helpdesk", "phone", "email"}},
}

// Classify maps a free-text message to exactly one topic tag. Matching is
// plain lower-cased substring search, deliberately not NLP.
func Classify(message string) domain.Topic {
	msg := strings.ToLower(message)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.topic
			}
		}
	}
	return domain.TopicGeneral
}
