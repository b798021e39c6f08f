package component

// Clock is the tick clock. Delta is the last tick length in seconds;
// Elapsed is seconds since startup and drives transitions.
type Clock struct {
	Delta   float32
	Elapsed float64
	Tick    uint64
}

// Advance moves the clock forward by dt seconds.
func (c *Clock) Advance(dt float64) {
	c.Delta = float32(dt)
	c.Elapsed += dt
	c.Tick++
}

var ClockComponent = NewComponent[Clock]()

// EventHistory holds the names of the events drained last tick, for
// systems that run before this tick's events exist.
type EventHistory struct {
	Names []string
}

// Has reports whether name fired last tick.
func (h *EventHistory) Has(name string) bool {
	if h == nil {
		return false
	}
	for _, n := range h.Names {
		if n == name {
			return true
		}
	}
	return false
}

var EventHistoryComponent = NewComponent[EventHistory]()
