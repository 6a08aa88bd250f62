package raytracer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jpclark/raytracer/internal/prim"
)

// TestSphereIntersectTwoPoints is scenario A from spec.md §8.
func TestSphereIntersectTwoPoints(t *testing.T) {
	r := NewRay(prim.NewPoint(0, 0, -5), prim.NewVector(0, 0, 1))
	xs := Sphere{}.LocalIntersect(r)
	want := []float64{4.0, 6.0}
	if diff := cmp.Diff(xs, want, approxOpts); diff != "" {
		t.Errorf("LocalIntersect() mismatch (-got +want):\n%s", diff)
	}
}

// TestSphereTangent is scenario B from spec.md §8.
func TestSphereTangent(t *testing.T) {
	r := NewRay(prim.NewPoint(0, 1, -5), prim.NewVector(0, 0, 1))
	xs := Sphere{}.LocalIntersect(r)
	want := []float64{5.0, 5.0}
	if diff := cmp.Diff(xs, want, approxOpts); diff != "" {
		t.Errorf("LocalIntersect() mismatch (-got +want):\n%s", diff)
	}
}

func TestSphereMisses(t *testing.T) {
	r := NewRay(prim.NewPoint(0, 2, -5), prim.NewVector(0, 0, 1))
	xs := Sphere{}.LocalIntersect(r)
	if xs != nil {
		t.Errorf("LocalIntersect() = %v, want nil", xs)
	}
}

func TestSphereOriginatesInside(t *testing.T) {
	r := NewRay(prim.NewPoint(0, 0, 0), prim.NewVector(0, 0, 1))
	xs := Sphere{}.LocalIntersect(r)
	want := []float64{-1.0, 1.0}
	if diff := cmp.Diff(xs, want, approxOpts); diff != "" {
		t.Errorf("LocalIntersect() mismatch (-got +want):\n%s", diff)
	}
}

func TestSphereBehindRay(t *testing.T) {
	r := NewRay(prim.NewPoint(0, 0, 5), prim.NewVector(0, 0, 1))
	xs := Sphere{}.LocalIntersect(r)
	want := []float64{-6.0, -4.0}
	if diff := cmp.Diff(xs, want, approxOpts); diff != "" {
		t.Errorf("LocalIntersect() mismatch (-got +want):\n%s", diff)
	}
}

func TestSphereNormalAt(t *testing.T) {
	tests := []struct {
		name string
		p    prim.Point
		want prim.Vector
	}{
		{name: "on x axis", p: prim.NewPoint(1, 0, 0), want: prim.NewVector(1, 0, 0)},
		{name: "on y axis", p: prim.NewPoint(0, 1, 0), want: prim.NewVector(0, 1, 0)},
		{name: "on z axis", p: prim.NewPoint(0, 0, 1), want: prim.NewVector(0, 0, 1)},
		{
			name: "nonaxial point",
			p:    prim.NewPoint(0.5773502691896258, 0.5773502691896258, 0.5773502691896258),
			want: prim.NewVector(0.5773502691896258, 0.5773502691896258, 0.5773502691896258),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sphere{}.LocalNormalAt(tt.p)
			if diff := cmp.Diff(got, tt.want, approxOpts); diff != "" {
				t.Errorf("LocalNormalAt() mismatch (-got +want):\n%s", diff)
			}
			if !prim.ApproxEqual(got.Magnitude(), 1.0) {
				t.Errorf("normal magnitude = %v, want 1.0", got.Magnitude())
			}
		})
	}
}
