package system

import (
	"image/color"
	"log"
	"sort"

	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/obj"
)

// DrawSink receives projected rectangles in paint order.
type DrawSink interface {
	Clear(c color.Color)
	FillRect(r common.Rect, c color.Color)
}

// DrawOrder returns the scene's drawables sorted by depth, shallowest first.
// The sort is stable: equal depths keep statics in batch order, then the
// controlled entity.
func DrawOrder(s *Scene) []obj.Drawable {
	items := make([]obj.Drawable, 0, len(s.Statics)+1)
	for _, st := range s.Statics {
		items = append(items, st)
	}
	items = append(items, s.Entity)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Depth() < items[j].Depth()
	})
	return items
}

// Render clears the sink and paints every drawable as seen by the scene's
// camera. Drawables that cannot be projected are logged and skipped.
func Render(s *Scene, sink DrawSink) int {
	sink.Clear(s.Background)

	drawn := 0
	for _, d := range DrawOrder(s) {
		r, err := s.Camera.Project(d)
		if err != nil {
			log.Printf("render: skip drawable at %v: %v", d.Position(), err)
			continue
		}
		sink.FillRect(r, d.Color())
		drawn++
	}
	return drawn
}
