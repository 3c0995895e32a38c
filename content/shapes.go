package content

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/asteroids/vmath"
)

// ShapesFile is the shape table name inside a Source
const ShapesFile = "shapes.yaml"

// ErrBadShape is returned for outlines the collision code cannot use
var ErrBadShape = errors.New("content: bad shape")

// Shapes holds the fixed outlines of the non-procedural entities
type Shapes struct {
	Player      vmath.Polygon
	Bullet      vmath.Polygon
	BulletScale vmath.V2
	Particle    vmath.Polygon
}

type shapesDoc struct {
	Player      [][]float64 `yaml:"player"`
	Bullet      [][]float64 `yaml:"bullet"`
	BulletScale []float64   `yaml:"bullet_scale"`
	Particle    [][]float64 `yaml:"particle"`
}

// LoadShapes decodes and validates the shape table from src
func LoadShapes(src Source) (Shapes, error) {
	data, err := src.ReadFile(ShapesFile)
	if err != nil {
		return Shapes{}, fmt.Errorf("read %s: %w", ShapesFile, err)
	}
	var doc shapesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Shapes{}, fmt.Errorf("parse %s: %w", ShapesFile, err)
	}

	var s Shapes
	if s.Player, err = polygon("player", doc.Player); err != nil {
		return Shapes{}, err
	}
	if s.Bullet, err = polygon("bullet", doc.Bullet); err != nil {
		return Shapes{}, err
	}
	if s.Particle, err = polygon("particle", doc.Particle); err != nil {
		return Shapes{}, err
	}
	s.BulletScale = vmath.V2{X: 1, Y: 1}
	if len(doc.BulletScale) == 2 {
		s.BulletScale = vmath.V2{X: doc.BulletScale[0], Y: doc.BulletScale[1]}
	}
	return s, nil
}

// DefaultShapes returns the embedded table; it panics if the build is broken
func DefaultShapes() Shapes {
	s, err := LoadShapes(Embedded())
	if err != nil {
		panic(err)
	}
	return s
}

func polygon(name string, pts [][]float64) (vmath.Polygon, error) {
	if len(pts) < 3 || len(pts) > vmath.MaxPolygonVertices {
		return vmath.Polygon{}, fmt.Errorf("%w: %s has %d vertices, want 3..%d", ErrBadShape, name, len(pts), vmath.MaxPolygonVertices)
	}
	var p vmath.Polygon
	for i, pt := range pts {
		if len(pt) != 2 {
			return vmath.Polygon{}, fmt.Errorf("%w: %s vertex %d has %d coordinates", ErrBadShape, name, i, len(pt))
		}
		p.V[i] = vmath.V2{X: pt[0], Y: pt[1]}
	}
	p.N = len(pts)
	if !p.IsConvex(1e-9) {
		return vmath.Polygon{}, fmt.Errorf("%w: %s is not convex", ErrBadShape, name)
	}
	return p, nil
}
