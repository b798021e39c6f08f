package component

import "github.com/milk9111/floater/locomotion"

// Input stores per-tick movement input for an entity.
type Input struct {
	Forward     bool
	Back        bool
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
}

// Intent converts the input to the controller's view of it.
func (in Input) Intent() locomotion.Intent {
	return locomotion.Intent{
		Forward:     in.Forward,
		Back:        in.Back,
		Left:        in.Left,
		Right:       in.Right,
		JumpPressed: in.JumpPressed,
	}
}

var InputComponent = NewComponent[Input]()
