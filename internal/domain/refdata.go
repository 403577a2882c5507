package domain

// Shipment models one freight movement tracked by dispatch.
type Shipment struct {
	ID         string
	Status     string
	ETA        string
	Driver     string
	Route      string
	Exceptions []string
}

// Policy is a company policy document keyed by short name.
type Policy struct {
	Key  string
	Text string
}

// Contact is a directory entry for an internal department.
type Contact struct {
	Department string
	Text       string
}
