package sky

import (
	"testing"

	"github.com/genricoloni/starfield/internal/compositor"
	"github.com/genricoloni/starfield/internal/domain"
)

// countdown dies after a fixed number of updates and records every call
type countdown struct {
	id      int
	left    int
	updates int
	draws   int
}

func (c *countdown) Update(float64, float64, domain.Random, domain.ScreenGeometry) {
	c.updates++
	c.left--
}

func (c *countdown) Draw(*compositor.Frame) { c.draws++ }

func (c *countdown) Alive(domain.ScreenGeometry) bool { return c.left > 0 }

func TestUpdateAndDraw_RetainsSurvivorsInOrder(t *testing.T) {
	screen := domain.ScreenGeometry{Width: 4, Height: 4}
	frame := compositor.NewFrame(screen)

	all := []*countdown{
		{id: 0, left: 1},
		{id: 1, left: 3},
		{id: 2, left: 1},
		{id: 3, left: 2},
		{id: 4, left: 5},
	}
	objs := append([]*countdown(nil), all...)

	objs = UpdateAndDraw(objs, 0.1, 0.1, frame, nil, screen)

	wantIDs := []int{1, 3, 4}
	if len(objs) != len(wantIDs) {
		t.Fatalf("expected %d survivors, got %d", len(wantIDs), len(objs))
	}
	for i, id := range wantIDs {
		if objs[i].id != id {
			t.Errorf("survivor %d: expected id %d, got %d", i, id, objs[i].id)
		}
	}

	// Dead objects still get their final update and draw
	for _, c := range all {
		if c.updates != 1 || c.draws != 1 {
			t.Errorf("object %d: expected 1 update and 1 draw, got %d/%d", c.id, c.updates, c.draws)
		}
	}

	objs = UpdateAndDraw(objs, 0.1, 0.2, frame, nil, screen)
	if len(objs) != 2 || objs[0].id != 1 || objs[1].id != 4 {
		t.Errorf("unexpected survivors after second pass: %v", objs)
	}
}

func TestUpdateAndDraw_Empty(t *testing.T) {
	screen := domain.ScreenGeometry{Width: 1, Height: 1}
	var objs []*ShootingStar
	objs = UpdateAndDraw(objs, 0.016, 0, compositor.NewFrame(screen), nil, screen)
	if len(objs) != 0 {
		t.Errorf("expected empty collection, got %d", len(objs))
	}
}
