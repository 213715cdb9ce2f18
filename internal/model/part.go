package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Part struct {
	// Instance identity. A replacement part always gets a fresh ID, an
	// in-place material change keeps it.
	ID uuid.UUID
	// Human-readable part name, unique within a ship.
	Name string
	// Mutable material, e.g. "Bois".
	Material string
	// Timestamp when the part was created.
	CreatedAt time.Time
	// Timestamp of the last material change.
	UpdatedAt time.Time
}

// PartSpec is a name/material pair used to bootstrap a ship.
type PartSpec struct {
	Name     string
	Material string
}

func NewPart(name, material string) *Part {
	now := time.Now()
	return &Part{
		ID:        uuid.New(),
		Name:      name,
		Material:  material,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *Part) ChangeMaterial(material string) {
	p.Material = material
	p.UpdatedAt = time.Now()
}

func (p Part) SameIdentityAs(other Part) bool {
	return p.ID == other.ID
}

func (p Part) String() string {
	return fmt.Sprintf("Pièce : %s | Matériau : %s", p.Name, p.Material)
}
