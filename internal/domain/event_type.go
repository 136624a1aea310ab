package domain

import "strings"

// Known event types seeded by default. The set of valid event types is a
// runtime configuration decision, not a closed enumeration: new occasions can
// be added through EVENT_TYPES without touching the services, which treat the
// event type as an opaque scope key.
const (
	EventWeddingCeremony = "wedding-ceremony"
	EventBridalShower    = "bridal-shower"
)

// DefaultEventTypes returns the event types used when none are configured.
func DefaultEventTypes() []string {
	return []string{EventWeddingCeremony, EventBridalShower}
}

// EventTypeSet is the set of event types the API accepts. Validation happens
// at the transport layer; services assume a validated event type.
type EventTypeSet struct {
	types map[string]struct{}
	order []string
}

// NewEventTypeSet builds an EventTypeSet from the given types, trimming
// whitespace and ignoring empty entries. An empty input falls back to
// DefaultEventTypes.
func NewEventTypeSet(types []string) *EventTypeSet {
	s := &EventTypeSet{types: make(map[string]struct{})}
	for _, t := range types {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := s.types[t]; ok {
			continue
		}
		s.types[t] = struct{}{}
		s.order = append(s.order, t)
	}
	if len(s.order) == 0 {
		return NewEventTypeSet(DefaultEventTypes())
	}
	return s
}

// Contains reports whether t is a valid event type.
func (s *EventTypeSet) Contains(t string) bool {
	_, ok := s.types[t]
	return ok
}

// List returns the configured event types in configuration order.
func (s *EventTypeSet) List() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
