package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cascade-freight/chatbot-service/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    domain.Topic
	}{
		{
			name:    "shipment tracking by keyword",
			message: "Track shipment CFS-1001",
			want:    domain.TopicShipmentTracking,
		},
		{
			name:    "shipment tracking by id prefix only",
			message: "where is cfs-1002 right now",
			want:    domain.TopicShipmentTracking,
		},
		{
			name:    "dispatch coordination",
			message: "Can we change the driver assignment?",
			want:    domain.TopicDispatchCoordination,
		},
		{
			name:    "employee support policy",
			message: "What is our hazmat safety policy?",
			want:    domain.TopicEmployeeSupport,
		},
		{
			name:    "compliance audit",
			message: "I need the compliance checklist",
			want:    domain.TopicComplianceAudit,
		},
		{
			name:    "contact directory",
			message: "Contact HR",
			want:    domain.TopicContactDirectory,
		},
		{
			name:    "fallback",
			message: "hello",
			want:    domain.TopicGeneral,
		},
		{
			name:    "dispatch beats policy",
			message: "dispatch question about the vacation policy",
			want:    domain.TopicDispatchCoordination,
		},
		{
			name:    "shipment keywords beat dispatch",
			message: "track the dispatch of this load",
			want:    domain.TopicShipmentTracking,
		},
		{
			name:    "case insensitive",
			message: "SHIPMENT STATUS PLEASE",
			want:    domain.TopicShipmentTracking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
			// classification is deterministic
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}
