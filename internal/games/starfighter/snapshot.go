package starfighter

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Snapshot is a read-only copy of the scene after a tick.
type Snapshot struct {
	Tick        uint64
	Now         time.Duration
	Craft       Craft
	Projectiles []Projectile // Id order
	Obstacles   []Obstacle   // Creation order, dead ones included
	Score       int
	Kills       int
	Shots       int
	Alive       int
}

// Snapshot copies the current scene.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Now:         g.now,
		Craft:       g.state.Craft(),
		Projectiles: g.state.Projectiles(),
		Obstacles:   g.field.Obstacles(),
		Score:       g.state.Score(),
		Kills:       g.kills,
		Shots:       g.shots,
		Alive:       g.field.AliveCount(),
	}
}

// Hash returns an FNV-1a digest of the snapshot. Equal seeds driven by
// equal input produce equal hashes.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	writeF := func(f float64) {
		writeU(math.Float64bits(f))
	}
	writeV := func(v mgl64.Vec3) {
		writeF(v[0])
		writeF(v[1])
		writeF(v[2])
	}

	writeU(s.Tick)
	writeU(uint64(s.Now))
	writeV(s.Craft.Position)
	writeF(s.Craft.Orientation.Pitch)
	writeF(s.Craft.Orientation.Yaw)
	writeF(s.Craft.Orientation.Roll)
	writeU(uint64(s.Score))

	writeU(uint64(len(s.Projectiles)))
	for _, p := range s.Projectiles {
		writeU(uint64(p.ID))
		writeV(p.Position)
		writeV(p.Direction)
		writeU(uint64(p.SpawnTime))
	}

	writeU(uint64(len(s.Obstacles)))
	for _, o := range s.Obstacles {
		writeV(o.Position)
		writeF(o.Scale)
		if o.Alive {
			writeU(1)
		} else {
			writeU(0)
		}
	}

	return h.Sum64()
}
