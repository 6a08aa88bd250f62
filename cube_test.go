package raytracer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jpclark/raytracer/internal/prim"
)

func TestCubeIntersectFaces(t *testing.T) {
	tests := []struct {
		name   string
		origin prim.Point
		dir    prim.Vector
		t1, t2 float64
	}{
		{name: "+x", origin: prim.NewPoint(5, 0.5, 0), dir: prim.NewVector(-1, 0, 0), t1: 4, t2: 6},
		{name: "-x", origin: prim.NewPoint(-5, 0.5, 0), dir: prim.NewVector(1, 0, 0), t1: 4, t2: 6},
		{name: "+y", origin: prim.NewPoint(0.5, 5, 0), dir: prim.NewVector(0, -1, 0), t1: 4, t2: 6},
		{name: "-y", origin: prim.NewPoint(0.5, -5, 0), dir: prim.NewVector(0, 1, 0), t1: 4, t2: 6},
		{name: "+z", origin: prim.NewPoint(0.5, 0, 5), dir: prim.NewVector(0, 0, -1), t1: 4, t2: 6},
		{name: "-z", origin: prim.NewPoint(0.5, 0, -5), dir: prim.NewVector(0, 0, 1), t1: 4, t2: 6},
		{name: "inside", origin: prim.NewPoint(0, 0.5, 0), dir: prim.NewVector(0, 0, 1), t1: -1, t2: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRay(tt.origin, tt.dir)
			xs := Cube{}.LocalIntersect(r)
			want := []float64{tt.t1, tt.t2}
			if diff := cmp.Diff(xs, want, approxOpts); diff != "" {
				t.Errorf("LocalIntersect() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestCubeMisses(t *testing.T) {
	tests := []struct {
		name   string
		origin prim.Point
		dir    prim.Vector
	}{
		{name: "diagonal miss 1", origin: prim.NewPoint(-2, 0, 0), dir: prim.NewVector(0.2673, 0.5345, 0.8018)},
		{name: "diagonal miss 2", origin: prim.NewPoint(0, -2, 0), dir: prim.NewVector(0.8018, 0.2673, 0.5345)},
		{name: "diagonal miss 3", origin: prim.NewPoint(0, 0, -2), dir: prim.NewVector(0.5345, 0.8018, 0.2673)},
		{name: "parallel to a face", origin: prim.NewPoint(2, 0, 2), dir: prim.NewVector(0, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRay(tt.origin, tt.dir)
			xs := Cube{}.LocalIntersect(r)
			if xs != nil {
				t.Errorf("LocalIntersect() = %v, want nil", xs)
			}
		})
	}
}

func TestCubeNormalAt(t *testing.T) {
	tests := []struct {
		p    prim.Point
		want prim.Vector
	}{
		{p: prim.NewPoint(1, 0.5, -0.8), want: prim.NewVector(1, 0, 0)},
		{p: prim.NewPoint(-1, -0.2, 0.9), want: prim.NewVector(-1, 0, 0)},
		{p: prim.NewPoint(-0.4, 1, -0.1), want: prim.NewVector(0, 1, 0)},
		{p: prim.NewPoint(0.3, -1, -0.7), want: prim.NewVector(0, -1, 0)},
		{p: prim.NewPoint(-0.6, 0.3, 1), want: prim.NewVector(0, 0, 1)},
		{p: prim.NewPoint(0.4, 0.4, -1), want: prim.NewVector(0, 0, -1)},
		{p: prim.NewPoint(1, 1, 1), want: prim.NewVector(1, 0, 0)},
		{p: prim.NewPoint(-1, -1, -1), want: prim.NewVector(-1, 0, 0)},
	}
	for _, tt := range tests {
		got := Cube{}.LocalNormalAt(tt.p)
		if diff := cmp.Diff(got, tt.want, approxOpts); diff != "" {
			t.Errorf("LocalNormalAt(%v) mismatch (-got +want):\n%s", tt.p, diff)
		}
	}
}
