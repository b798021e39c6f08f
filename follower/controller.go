package follower

// Controller maps directional key state to rotation rates for the single
// follower selected by ActiveID. ActiveID is set once at startup from the
// camera prefab and changed only through Select.
type Controller struct {
	ActiveID uint32
	Speed    float32

	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Horizontal returns +Speed for right, -Speed for left. Right wins.
func (c Controller) Horizontal() float32 {
	switch {
	case c.Right:
		return c.Speed
	case c.Left:
		return -c.Speed
	default:
		return 0
	}
}

// Vertical returns -Speed for up, +Speed for down. Up wins.
func (c Controller) Vertical() float32 {
	switch {
	case c.Up:
		return -c.Speed
	case c.Down:
		return c.Speed
	default:
		return 0
	}
}

// Select hands rotation input to another follower.
func (c *Controller) Select(id uint32) {
	c.ActiveID = id
}

// Input snapshots the controller for this tick's follower updates.
func (c Controller) Input() RotationInput {
	return RotationInput{
		ActiveID:   c.ActiveID,
		Horizontal: c.Horizontal(),
		Vertical:   c.Vertical(),
	}
}

// Next returns the id after current in ids, wrapping around. Unknown
// current selects the first id.
func Next(ids []uint32, current uint32) uint32 {
	if len(ids) == 0 {
		return current
	}
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}
