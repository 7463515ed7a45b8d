// Package telemetry provides census, debug output, window stats, events,
// bookmarks, perf timing and the end-of-run report.
package telemetry

// EventType identifies telemetry events.
type EventType string

const (
	EventHit            EventType = "hit"      // Danger damaged a Survivor
	EventAttack         EventType = "attack"   // Danger attack connected
	EventMeal           EventType = "meal"     // Survivor reached the food
	EventSatiated       EventType = "satiated" // Survivor stopped eating at full energy
	EventDisengaged     EventType = "disengaged"
	EventStarved        EventType = "starved"
	EventRemoved        EventType = "removed" // fade complete
	EventFoodDepleted   EventType = "food_depleted"
	EventFoodRespawned  EventType = "food_respawned"
	EventClimateChange  EventType = "climate_change"
	EventWinnerDeclared EventType = "winner"
)

// Event represents a single telemetry event.
type Event struct {
	Type     EventType `csv:"type"`
	Tick     int32     `csv:"tick"`
	Time     float64   `csv:"sim_time"`
	EntityID uint32    `csv:"entity"`
	Name     string    `csv:"name"`

	// Optional, depending on the event type
	Amount float64 `csv:"amount"`
	Detail string  `csv:"detail"`
}

// NewSurvivorEvent creates an event about one Survivor.
func NewSurvivorEvent(typ EventType, tick int32, now float64, id uint32, name string) Event {
	return Event{Type: typ, Tick: tick, Time: now, EntityID: id, Name: name}
}

// NewHitEvent creates a damage event.
func NewHitEvent(tick int32, now float64, id uint32, name string, damage float64) Event {
	e := NewSurvivorEvent(EventHit, tick, now, id, name)
	e.Amount = damage
	return e
}

// NewWorldEvent creates an event that concerns no single Survivor.
func NewWorldEvent(typ EventType, tick int32, now float64, detail string) Event {
	return Event{Type: typ, Tick: tick, Time: now, Detail: detail}
}

// EventLog buffers events until they are flushed.
type EventLog struct {
	events []Event
	limit  int
}

// NewEventLog creates a log that reports Full after limit events.
func NewEventLog(limit int) *EventLog {
	if limit < 1 {
		limit = 256
	}
	return &EventLog{events: make([]Event, 0, limit), limit: limit}
}

// Add appends an event.
func (l *EventLog) Add(e Event) {
	l.events = append(l.events, e)
}

// Full reports whether the buffer should be flushed.
func (l *EventLog) Full() bool {
	return len(l.events) >= l.limit
}

// Len returns the number of buffered events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Drain returns the buffered events and empties the log.
func (l *EventLog) Drain() []Event {
	out := l.events
	l.events = make([]Event, 0, l.limit)
	return out
}
