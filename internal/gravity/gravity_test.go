package gravity_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tarunkumar1111/three-body-problem/internal/body"
	"github.com/tarunkumar1111/three-body-problem/internal/gravity"
)

const g = 9.8

var roomy = body.Bounds{Width: 5000, Height: 5000}

func newBody(x, y, mass, vx, vy float64, color string) *body.Body {
	b, err := body.New(x, y, mass, vx, vy, color, 0.5, roomy)
	Expect(err).NotTo(HaveOccurred())
	return b
}

var _ = Describe("PairwiseForce", func() {
	It("returns zero inside the softening cutoff", func() {
		a := newBody(1000, 1000, 10, 0, 0, "#111111")
		b := newBody(1000+gravity.Cutoff-1, 1000, 10, 0, 0, "#222222")

		fx, fy := gravity.PairwiseForce(a, b, g)
		Expect(fx).To(BeZero())
		Expect(fy).To(BeZero())
	})

	It("returns zero for coincident bodies", func() {
		a := newBody(1000, 1000, 10, 0, 0, "#111111")
		b := newBody(1000, 1000, 10, 0, 0, "#222222")

		fx, fy := gravity.PairwiseForce(a, b, g)
		Expect(fx).To(BeZero())
		Expect(fy).To(BeZero())
	})

	It("attracts at exactly the cutoff distance", func() {
		a := newBody(1000, 1000, 10, 0, 0, "#111111")
		b := newBody(1000+gravity.Cutoff, 1000, 10, 0, 0, "#222222")

		fx, _ := gravity.PairwiseForce(a, b, g)
		Expect(fx).To(BeNumerically(">", 0))
	})

	It("follows the inverse-square law along an axis", func() {
		a := newBody(1000, 1000, 10, 0, 0, "#111111")
		b := newBody(1100, 1000, 20, 0, 0, "#222222")

		fx, fy := gravity.PairwiseForce(a, b, g)
		Expect(fx).To(BeNumerically("~", g*10*20/(100*100), 1e-12))
		Expect(fy).To(BeNumerically("~", 0, 1e-12))
	})

	It("decomposes along the separation direction", func() {
		a := newBody(1000, 1000, 10, 0, 0, "#111111")
		b := newBody(1100, 1100, 10, 0, 0, "#222222")

		dist := math.Hypot(100, 100)
		mag := g * 10 * 10 / (dist * dist)
		want := mag * math.Sqrt2 / 2

		fx, fy := gravity.PairwiseForce(a, b, g)
		Expect(fx).To(BeNumerically("~", want, 1e-12))
		Expect(fy).To(BeNumerically("~", want, 1e-12))
	})

	It("is equal and opposite under argument swap", func() {
		positions := []struct{ ax, ay, bx, by float64 }{
			{1000, 1000, 1200, 1000},
			{1000, 1000, 900, 1350},
			{500, 2000, 1700, 600},
		}
		for _, p := range positions {
			a := newBody(p.ax, p.ay, 10, 0, 0, "#111111")
			b := newBody(p.bx, p.by, 25, 0, 0, "#222222")

			fxAB, fyAB := gravity.PairwiseForce(a, b, g)
			fxBA, fyBA := gravity.PairwiseForce(b, a, g)
			Expect(fxAB).To(BeNumerically("~", -fxBA, 1e-9))
			Expect(fyAB).To(BeNumerically("~", -fyBA, 1e-9))
		}
	})

	It("is pure: repeated calls agree and arguments are untouched", func() {
		a := newBody(1000, 1000, 10, 3, 4, "#111111")
		b := newBody(1300, 1200, 10, -1, 2, "#222222")

		fx1, fy1 := gravity.PairwiseForce(a, b, g)
		fx2, fy2 := gravity.PairwiseForce(a, b, g)
		Expect(fx1).To(Equal(fx2))
		Expect(fy1).To(Equal(fy2))
		Expect(a.X).To(Equal(1000.0))
		Expect(a.VX).To(Equal(3.0))
	})
})

var _ = Describe("NetForce", func() {
	It("sums contributions from every other body", func() {
		center := newBody(1000, 1000, 10, 0, 0, "#111111")
		left := newBody(900, 1000, 10, 0, 0, "#222222")
		right := newBody(1100, 1000, 10, 0, 0, "#333333")
		bodies := []*body.Body{center, left, right}

		fx, fy := gravity.NetForce(0, bodies, g)
		Expect(fx).To(BeNumerically("~", 0, 1e-12))
		Expect(fy).To(BeNumerically("~", 0, 1e-12))
	})

	It("excludes self by index, not by color", func() {
		// Two bodies sharing a color: the shared token must not erase
		// the distinct body's pull.
		a := newBody(1000, 1000, 10, 0, 0, "#abcdef")
		twin := newBody(1100, 1000, 10, 0, 0, "#abcdef")
		bodies := []*body.Body{a, twin}

		fx, _ := gravity.NetForce(0, bodies, g)
		Expect(fx).To(BeNumerically(">", 0))
	})
})

var _ = Describe("Step", func() {
	triangle := func() []*body.Body {
		// Equilateral triangle, side 200, far from every boundary.
		side := 200.0
		apex := math.Sqrt(side*side - (side/2)*(side/2))
		return []*body.Body{
			newBody(2000, 2000, 10, 0.1, 0.1, "#7494c4"),
			newBody(2100, 2000-apex, 10, -0.1, 0.1, "#6a4d61"),
			newBody(2200, 2000, 10, 0.1, -0.1, "#c3d407"),
		}
	}

	It("moves each body by hand-computed net force over one snapshot frame", func() {
		bodies := triangle()

		type expect struct{ x, y, vx, vy float64 }
		expected := make([]expect, len(bodies))

		cx := (bodies[0].X + bodies[1].X + bodies[2].X) / 3
		cy := (bodies[0].Y + bodies[1].Y + bodies[2].Y) / 3

		// Each vertex is pulled toward the centroid with magnitude
		// sqrt(3) * g*m*m/side^2 (two pulls at 30 degrees off-center).
		pairMag := g * 10 * 10 / (200.0 * 200.0)
		netMag := math.Sqrt(3) * pairMag

		for i, b := range bodies {
			dx := cx - b.X
			dy := cy - b.Y
			d := math.Hypot(dx, dy)
			fx := netMag * dx / d
			fy := netMag * dy / d
			vx := b.VX + fx/b.Mass
			vy := b.VY + fy/b.Mass
			expected[i] = expect{b.X + vx, b.Y + vy, vx, vy}
		}

		gravity.StepSnapshot(bodies, g)

		for i, b := range bodies {
			Expect(b.X).To(BeNumerically("~", expected[i].x, 1e-9))
			Expect(b.Y).To(BeNumerically("~", expected[i].y, 1e-9))
			Expect(b.VX).To(BeNumerically("~", expected[i].vx, 1e-9))
			Expect(b.VY).To(BeNumerically("~", expected[i].vy, 1e-9))
			Expect(b.Trace()).To(HaveLen(1))
		}
	})

	It("is deterministic across runs", func() {
		a := triangle()
		b := triangle()

		for i := 0; i < 300; i++ {
			gravity.Step(a, g)
			gravity.Step(b, g)
		}

		for i := range a {
			Expect(a[i].X).To(Equal(b[i].X))
			Expect(a[i].Y).To(Equal(b[i].Y))
			Expect(a[i].VX).To(Equal(b[i].VX))
			Expect(a[i].VY).To(Equal(b[i].VY))
		}
	})

	It("lets later bodies observe already-advanced positions", func() {
		sequential := triangle()
		snapshot := triangle()

		for i := 0; i < 10; i++ {
			gravity.Step(sequential, g)
			gravity.StepSnapshot(snapshot, g)
		}

		// The first body of the sequential pass reads pristine
		// positions on frame one, but downstream bodies do not; the
		// two passes must drift apart.
		diff := math.Abs(sequential[2].X - snapshot[2].X)
		Expect(diff).To(BeNumerically(">", 1e-9))
	})

	It("records one trace point per frame", func() {
		bodies := triangle()
		for i := 0; i < 5; i++ {
			gravity.Step(bodies, g)
		}
		for _, b := range bodies {
			Expect(b.Trace()).To(HaveLen(5))
		}
	})
})
