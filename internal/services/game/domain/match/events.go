package match

// EventType classifies an observable match transition.
type EventType string

const (
	EventKickoff     EventType = "kickoff"
	EventGoal        EventType = "goal"
	EventBoostPickup EventType = "boost_pickup"
	EventHazard      EventType = "hazard"
	EventLowTime     EventType = "low_time"
	EventComplete    EventType = "complete"
)

// Event is one entry in the match event log. MessageKey names the announcer
// bank for the event and Variant the RNG-chosen line, so clients render
// commentary in their own locale.
type Event struct {
	Tick       int64
	Type       EventType
	MessageKey string
	Variant    int
	Payload    map[string]string
}
