package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/parallax/system"
)

// debugUI is a corner panel showing camera, entity and shake state.
type debugUI struct {
	ui *ebitenui.UI

	scene  *widget.Text
	camera *widget.Text
	entity *widget.Text
	shake  *widget.Text
	keys   *widget.Text
}

func newDebugUI() *debugUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	label := func() *widget.Text {
		return widget.NewText(widget.TextOpts.Text("", &face, white))
	}

	d := &debugUI{
		scene:  label(),
		camera: label(),
		entity: label(),
		shake:  label(),
		keys:   label(),
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionEnd, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(d.scene)
	panel.AddChild(d.camera)
	panel.AddChild(d.entity)
	panel.AddChild(d.shake)
	panel.AddChild(d.keys)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	d.ui = &ebitenui.UI{Container: root}
	return d
}

// Refresh copies the driver's current state into the labels.
func (d *debugUI) Refresh(driver *system.Driver) {
	s := driver.Scene()
	cam := s.Camera

	d.scene.Label = fmt.Sprintf("%s  frame %d  statics %d", s.Name, driver.Frame(), len(s.Statics))
	d.camera.Label = fmt.Sprintf("camera %v depth %g vel %v", cam.Position().Origin(), cam.Depth(), cam.Velocity())
	d.entity.Label = fmt.Sprintf("entity %v depth %g vel %v", s.Entity.Position().Origin(), s.Entity.Depth(), s.Entity.Velocity())

	st := cam.ShakeState()
	if st.HasSaved {
		d.shake.Label = fmt.Sprintf("shake %d ticks left, rest %v", st.Remaining, st.Saved)
	} else {
		d.shake.Label = "shake idle"
	}
	d.keys.Label = fmt.Sprintf("held keys %d", driver.Held())
}
