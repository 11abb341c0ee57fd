package scenetree

import "fmt"

// RotationSpeedLimit bounds the inspector's rotation speed slider, in
// degrees per second.
const RotationSpeedLimit = 180.0

// inspectorMargin is the gap between the settings window and the viewport edge.
const inspectorMargin = 12.0

var inspectorShapes = [...]ShapeKind{ShapeSquare, ShapeCircle, ShapeTriangle}

// inspector declares the settings window for the selected node. Property
// edits are written straight into the node; structural edits are queued.
func (e *Editor) inspector() {
	if !e.hasSelection {
		return
	}
	n := e.forest.Find(e.selected)
	if n == nil {
		e.ClearSelection()
		return
	}

	ui := e.ui
	vp := e.camera.Viewport
	x := vp.X + vp.Width - ui.Style().PanelWidth - inspectorMargin
	ui.BeginWindow(fmt.Sprintf("settings:%d", n.ID), "Settings: "+n.Name, x, vp.Y+inspectorMargin)

	ui.Label("Name:")
	if res := ui.TextField("name", &n.NameDraft); res.Submitted {
		n.ApplyName()
	}
	if ui.Button("Apply Name") {
		n.ApplyName()
	}

	ui.Separator()
	ui.Label("Shape:")
	for _, k := range inspectorShapes {
		if ui.Radio(k.String(), n.Shape == k) {
			n.Shape = k
		}
	}

	ui.Separator()
	ui.Label("Rotation Speed:")
	ui.Slider("rotation_speed", &n.RotationSpeed, -RotationSpeedLimit, RotationSpeedLimit)

	ui.Separator()
	ui.Label("Color:")
	ui.ColorEdit("color", &n.Color)

	ui.Separator()
	if ui.Button("Add Child") {
		e.edits.Push(AddChildRequest(n.ID))
	}
	ui.SameLine()
	if ui.Button("Delete Node") {
		e.edits.Push(DeleteNodeRequest(n.ID))
		e.ClearSelection()
	}

	ui.EndWindow()
}
