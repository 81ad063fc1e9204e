// Package liquid is a liquid cascading button for [Ebitengine].
//
// A root circle opens a chain of smaller circular cells, one after another,
// along a fixed direction. While a cell travels away from its predecessor the
// two are joined by a liquid membrane that thins into a neck, splits into two
// tails and finally vanishes. Closing runs the chain backwards, from the tail
// cell toward the root.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	src := &liquid.StaticSource{Templates: []liquid.CellTemplate{
//		{Name: "share", Color: liquid.ColorBlue},
//		{Name: "edit", Color: liquid.ColorBlue},
//	}}
//	btn, err := liquid.NewButton(liquid.Vec2{X: 320, Y: 400}, 30, liquid.DefaultConfig(), src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	btn.Controller().OnSelect = func(i int) { fmt.Println("selected", i) }
//	liquid.Run(btn, liquid.RunConfig{Title: "Liquid", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Button.Update] and [Button.Draw] directly.
//
// # Layers
//
// The package is built in layers that can be used on their own:
//
//   - [Kernel] computes connector outlines between two circles as [Path]
//     values. It has no state and draws nothing.
//   - [Cell] is one circle of a chain. A moving cell owns the outline that
//     joins it to its predecessor.
//   - [Controller] is the open/close state machine. It spawns cells from a
//     [DataSource] and advances them on every tick of a [FrameDriver].
//   - [Button] wires a controller to Ebitengine input and rendering.
//
// [Recorder] runs a controller headlessly with a fixed time step and keeps a
// [Frame] per tick, which is what the liquidbutton command uses to trace and
// export animations.
//
// [Ebitengine]: https://ebitengine.org
package liquid
