// Package scenetree is an interactive editor for a forest of scene nodes,
// built on [Ebitengine].
//
// Each [SceneNode] carries a name, a shape, a color and a rotation speed.
// The [Editor] lays the forest out left to right by depth, draws it through
// a pannable and zoomable [Camera], and shows a settings window for the
// selected node in which every property can be edited.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window sized by
// the editor's config:
//
//	editor, err := scenetree.NewEditor(scenetree.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := scenetree.Run(editor); err != nil {
//		log.Fatal(err)
//	}
//
// The editor implements [ebiten.Game], so it can also be run directly with
// [ebiten.RunGame].
//
// # Frames
//
// Every Update runs a fixed 1/60 s step in this order: camera input, node
// rotation, layout, drawing, click selection, the settings window, and
// finally the [EditQueue]. Adding and deleting nodes is only ever requested
// during the frame and applied at its end, so the forest never changes while
// it is being walked. Node ids come from a single [IDSource] and are never
// reused.
//
// # Automation
//
// [LoadScript] parses a JSON list of clicks, pans, scrolls, key presses,
// waits and screenshots. Attach it with [Editor.SetScriptRunner] to drive
// the editor without a user.
//
// [Ebitengine]: https://ebitengine.org
package scenetree
