// Package blossom is a press-and-hold reaction picker for [Ebitengine].
//
// Blossom provides the element tree, input routing, gesture recognition,
// and tween-driven transitions behind a long-press option strip: hold on a
// trigger region, a pill of option icons blooms above it, slide to focus
// one, release to select.
//
// Full documentation, tutorials, and examples are available at:
//
// https://phanxgames.github.io/blossom/
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	surface := blossom.NewSurface(640, 480)
//
//	picker := blossom.NewSelector(blossom.Rect{X: 280, Y: 400, Width: 80, Height: 48}, blossom.DefaultConfig())
//	picker.SetOptions([]blossom.Option{
//		{Image: "like"}, {Image: "love"}, {Image: "laugh"},
//	})
//	picker.SetImageSource(blossom.ImageMap{"like": likeImg, "love": loveImg, "laugh": laughImg})
//	picker.SetDelegate(blossom.DelegateFuncs{
//		Selected: func(s *blossom.Selector, index int) { fmt.Println("picked", index) },
//	})
//	picker.Attach(surface)
//
//	blossom.Run(surface, blossom.RunConfig{
//		Title: "Reactions", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Surface.Update] and [Surface.Draw] directly:
//
//	type Game struct{ surface *blossom.Surface }
//
//	func (g *Game) Update() error         { g.surface.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.surface.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Element tree
//
// Every visual piece of the picker is an [Element]. Elements form a tree
// rooted at [Surface.Root]. Children inherit their parent's transform and
// alpha.
//
// Create elements with typed constructors: [NewGroup], [NewPanel], and
// [NewIcon]. The selector builds its own scrim, strip, and icon elements,
// but the same tree is open for hosts that want extra chrome around it:
//
//	badge := blossom.NewPanel("badge", 12, 12, blossom.Color{R: 1, A: 1})
//	picker.Trigger().AddChild(badge)
//
// # Gesture flow
//
// The selector owns a press recognizer on its trigger region. Holding past
// [Config.PressDuration] opens the strip, moving focuses the option under
// the pointer, releasing resolves the gesture. Exactly one [Delegate]
// callback fires per resolved gesture: SelectedOption with the focused
// index, or CancelledAction when the pointer never settled on an option.
//
// # Key features
//
// Blossom includes staggered grow-in and collapse transitions, focus
// layout with protruding highlight, rounded-corner panels, tweens (via
// [gween]), synthetic pointer injection, JSON gesture scripts, and PNG
// screenshot capture for visual checks.
//
// See the full docs for guides on each feature:
// https://phanxgames.github.io/blossom/
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package blossom
