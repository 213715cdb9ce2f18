package service

import (
	"fmt"
	"io"
)

// RacingShip is a Ship with a fixed top speed. All Ship operations are
// promoted from the embedded value.
type RacingShip struct {
	*Ship
	maxSpeed int
}

func NewRacingShip(name string, maxSpeed int, opts ...Option) *RacingShip {
	return &RacingShip{
		Ship:     New(name, opts...),
		maxSpeed: maxSpeed,
	}
}

func (r *RacingShip) MaxSpeed() int { return r.maxSpeed }

func (r *RacingShip) DisplaySpeed(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Vitesse maximale de '%s' : %d km/h\n", r.Name(), r.maxSpeed)
	return err
}
